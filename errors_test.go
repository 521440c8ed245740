package egl

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFromNativeRoundTrip(t *testing.T) {
	all := AllErrors()
	if len(all) != 14 {
		t.Fatalf("len(AllErrors()) = %d, want 14", len(all))
	}
	for _, e := range all {
		got, err := ErrorFromNative(e.Native())
		if err != nil || got != e {
			t.Errorf("ErrorFromNative(%s.Native()) = %v, %v, want %v", e, got, err, e)
		}
		if got.Native() != Int(e) {
			t.Errorf("%s.Native() = %#x, want %#x", e, got.Native(), Int(e))
		}
	}
}

func TestErrorFromNativeAllCodes(t *testing.T) {
	for code := Int(0x3000); code <= 0x3010; code++ {
		e, err := ErrorFromNative(code)
		if err != nil {
			var ue *UnknownErrorCodeError
			if !errors.As(err, &ue) || ue.Code != code {
				t.Errorf("ErrorFromNative(%#x) error = %v, want *UnknownErrorCodeError", code, err)
			}
			continue
		}
		if e.Native() != code {
			t.Errorf("ErrorFromNative(%#x).Native() = %#x", code, e.Native())
		}
	}
}

func TestErrorFromNativeUnknown(t *testing.T) {
	for _, code := range []Int{Success, 0, -1, 0x300F, 0x3038} {
		_, err := ErrorFromNative(code)
		var ue *UnknownErrorCodeError
		if !errors.As(err, &ue) {
			t.Errorf("ErrorFromNative(%#x) = %v, want *UnknownErrorCodeError", code, err)
		}
	}
}

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		err  Error
		name string
		msg  string
	}{
		{ErrBadMatch, "EGL_BAD_MATCH", "arguments are inconsistent"},
		{ErrNotInitialized, "EGL_NOT_INITIALIZED", "not initialized"},
		{ErrContextLost, "EGL_CONTEXT_LOST", "power management event"},
		{Error(0x1234), "Error(0x1234)", "unknown error 0x1234"},
	}
	for _, tt := range tests {
		if got := tt.err.String(); got != tt.name {
			t.Errorf("String() = %q, want %q", got, tt.name)
		}
		if got := tt.err.Error(); !strings.HasPrefix(got, "egl: ") || !strings.Contains(got, tt.msg) {
			t.Errorf("Error() = %q, want egl: prefix and %q", got, tt.msg)
		}
	}
}

func TestMalformedAttribListIsBadParameter(t *testing.T) {
	err := fmt.Errorf("wrap: %w", &CallError{Func: "eglCreateContext", Err: ErrMalformedAttribList})
	if !errors.Is(err, ErrMalformedAttribList) {
		t.Error("errors.Is(err, ErrMalformedAttribList) = false")
	}
	if !errors.Is(err, ErrBadParameter) {
		t.Error("errors.Is(err, ErrBadParameter) = false")
	}
	if errors.Is(err, ErrBadAttribute) {
		t.Error("errors.Is(err, ErrBadAttribute) = true")
	}
}

func TestCallError(t *testing.T) {
	err := error(&CallError{Func: "eglMakeCurrent", Err: ErrBadMatch})
	if got, want := err.Error(), "eglMakeCurrent: "+ErrBadMatch.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	var e Error
	if !errors.As(err, &e) || e != ErrBadMatch {
		t.Errorf("errors.As(Error) = %v, want %v", e, ErrBadMatch)
	}
}

func TestLoadErrors(t *testing.T) {
	cause := errors.New("undefined symbol")
	se := &SymbolError{Symbol: "eglCreateSync", Err: cause}
	if !strings.Contains(se.Error(), "eglCreateSync") || !errors.Is(se, cause) {
		t.Errorf("SymbolError = %v, want symbol name and cause", se)
	}
	if got := (&SymbolError{Symbol: "eglWaitSync"}).Error(); got != "egl: symbol eglWaitSync not found" {
		t.Errorf("SymbolError without cause = %q", got)
	}
	le := &LibraryError{Path: "libEGL.so.1", Err: cause}
	if !strings.Contains(le.Error(), "libEGL.so.1") || !errors.Is(le, cause) {
		t.Errorf("LibraryError = %v, want path and cause", le)
	}
}
