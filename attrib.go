package egl

// IntList is an attribute list of the legacy calls (EGL 1.0 to 1.4 entry
// points): key/value pairs of Int terminated by None.
type IntList []Int

// AttribList is an attribute list of the EGL 1.5 generation calls:
// pointer-width key/value pairs terminated by AttribNone.
type AttribList []Attrib

// Ints builds an IntList from key/value pairs and appends the terminator.
//
//	egl.Ints(egl.RedSize, 8, egl.GreenSize, 8, egl.BlueSize, 8)
func Ints(kv ...Int) IntList {
	l := make(IntList, 0, len(kv)+1)
	l = append(l, kv...)
	return append(l, None)
}

// Attribs builds an AttribList from key/value pairs and appends the
// terminator.
func Attribs(kv ...Attrib) AttribList {
	l := make(AttribList, 0, len(kv)+1)
	l = append(l, kv...)
	return append(l, AttribNone)
}

// Validate reports ErrMalformedAttribList unless l is non-empty and ends
// with None.
func (l IntList) Validate() error {
	if len(l) == 0 || l[len(l)-1] != None {
		return ErrMalformedAttribList
	}
	return nil
}

// Validate reports ErrMalformedAttribList unless l is non-empty and ends
// with AttribNone.
func (l AttribList) Validate() error {
	if len(l) == 0 || l[len(l)-1] != AttribNone {
		return ErrMalformedAttribList
	}
	return nil
}

// Lookup returns the value paired with key, scanning pairs up to the
// terminator.
func (l IntList) Lookup(key Int) (Int, bool) {
	for i := 0; i+1 < len(l) && l[i] != None; i += 2 {
		if l[i] == key {
			return l[i+1], true
		}
	}
	return 0, false
}

// Lookup returns the value paired with key, scanning pairs up to the
// terminator.
func (l AttribList) Lookup(key Attrib) (Attrib, bool) {
	for i := 0; i+1 < len(l) && l[i] != AttribNone; i += 2 {
		if l[i] == key {
			return l[i+1], true
		}
	}
	return 0, false
}

// ptr returns the address of the first element. The list must be validated.
func (l IntList) ptr() *Int { return &l[0] }

func (l AttribList) ptr() *Attrib { return &l[0] }
