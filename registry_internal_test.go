package egl

import (
	"slices"
	"testing"
)

func TestSelectionOrder(t *testing.T) {
	nop := func() (Backend, error) { return nil, ErrBackendNotAvailable }
	for _, name := range []string{"zzz", BackendDynamic, "aaa", BackendStatic} {
		RegisterLoader(name, nop)
		t.Cleanup(func() { UnregisterLoader(name) })
	}

	got := selectionOrder()
	want := []string{BackendStatic, BackendDynamic, "aaa", "zzz"}
	if !slices.Equal(got, want) {
		t.Errorf("selectionOrder() = %v, want %v", got, want)
	}
	if best := loaders.BestName(); best != got[0] {
		t.Errorf("BestName() = %q, want %q", best, got[0])
	}

	UnregisterLoader(BackendStatic)
	if got := selectionOrder(); got[0] != BackendDynamic {
		t.Errorf("selectionOrder() without static = %v, want %s first", got, BackendDynamic)
	}
	if best := loaders.BestName(); best != BackendDynamic {
		t.Errorf("BestName() without static = %q, want %q", best, BackendDynamic)
	}
}
