package bitmatrix

import (
	"iter"

	"github.com/pi/bitmatrix/bits"
)

// Bits returns an iterator over all bits in row-major order: row 0
// left to right, then row 1, and so on. Every call starts a fresh
// pass.
func (m *Matrix) Bits() iter.Seq[bool] {
	return m.storage.Bits()
}

// Bit is a mutable handle to one cell, yielded by MutBits. It stands
// in for the pointer-to-bit that packed storage cannot provide.
type Bit struct {
	m   *Matrix
	pos uint
}

// Get returns the current value of the cell.
func (b Bit) Get() bool {
	return b.m.storage.Get(b.pos)
}

// Set writes value to the cell in the owning matrix.
func (b Bit) Set(value bool) {
	b.m.storage.Put(b.pos, value)
}

// Row returns the row coordinate of the cell.
func (b Bit) Row() uint {
	return b.pos / b.m.width
}

// Col returns the column coordinate of the cell.
func (b Bit) Col() uint {
	return b.pos % b.m.width
}

// MutBits returns an iterator over mutable handles to all cells in
// row-major order. Writes through a handle update the matrix in
// place. Every call starts a fresh pass.
func (m *Matrix) MutBits() iter.Seq[Bit] {
	return func(yield func(Bit) bool) {
		for i := uint(0); i < m.storage.Len(); i++ {
			if !yield(Bit{m: m, pos: i}) {
				return
			}
		}
	}
}

// Rows returns an iterator over the Height() rows as zero-copy views,
// row 0 first. The views do not overlap, so writing through each
// yielded view within one pass is safe. Every call starts a fresh
// pass.
func (m *Matrix) Rows() iter.Seq[bits.Slice] {
	return func(yield func(bits.Slice) bool) {
		for i := uint(0); i < m.height; i++ {
			if !yield(m.Row(i)) {
				return
			}
		}
	}
}
