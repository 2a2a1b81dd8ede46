package bits

//
// Slice
//

// Slice is a zero-copy window over a contiguous bit range of a Vec.
// Put writes through to the owning Vec and is visible there
// immediately. A Slice must not outlive its Vec, and the usual
// shared-read/exclusive-write discipline applies: the type adds no
// synchronization.
type Slice struct {
	vec *Vec
	off uint
	n   uint
}

// Len returns the window length in bits.
func (s Slice) Len() uint {
	return s.n
}

// Get returns the bit at index within the window.
// Panics if index >= Len().
func (s Slice) Get(index uint) bool {
	if index >= s.n {
		panic("bit slice index out of bounds")
	}
	return s.vec.Get(s.off + index)
}

// Put sets the bit at index within the window to value.
// Panics if index >= Len().
func (s Slice) Put(index uint, value bool) {
	if index >= s.n {
		panic("bit slice index out of bounds")
	}
	s.vec.Put(s.off+index, value)
}

// SetAll sets every bit in the window to value.
func (s Slice) SetAll(value bool) {
	for i := uint(0); i < s.n; i++ {
		s.vec.Put(s.off+i, value)
	}
}

// Count returns the number of true bits in the window.
func (s Slice) Count() uint {
	n := uint(0)
	for i := uint(0); i < s.n; i++ {
		if s.vec.Get(s.off + i) {
			n++
		}
	}
	return n
}

// Equal reports whether both windows have the same length and bits.
func (s Slice) Equal(o Slice) bool {
	if s.n != o.n {
		return false
	}
	for i := uint(0); i < s.n; i++ {
		if s.Get(i) != o.Get(i) {
			return false
		}
	}
	return true
}
