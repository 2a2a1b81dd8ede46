package bits

import "iter"

// Bits returns an iterator over all bits in order. Every call starts
// a fresh pass from the first bit.
func (v *Vec) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := uint(0); i < v.len; i++ {
			if !yield(v.Get(i)) {
				return
			}
		}
	}
}

// Bits returns an iterator over the window's bits in order. Every
// call starts a fresh pass from the first bit.
func (s Slice) Bits() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		for i := uint(0); i < s.n; i++ {
			if !yield(s.Get(i)) {
				return
			}
		}
	}
}
