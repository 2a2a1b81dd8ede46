// Package bitmatrix implements a dense two-dimensional bit matrix: a
// fixed-size grid of boolean cells packed row-major into a linear bit
// buffer.
//
// Single-bit reads go through Get. Set is the only single-bit write
// path: packed storage has no addressable reference to one bit, so no
// mutable pair-indexed accessor exists and writes go through a row
// view internally. Rows are exposed as zero-copy views aliasing the
// matrix storage.
package bitmatrix

import (
	"strings"

	"github.com/pi/bitmatrix/bits"
)

// Matrix is a height x width grid of bits stored row-major in a
// packed bit vector. The shape is fixed at construction; only bit
// values mutate. The zero value is not usable, use New.
//
// Matrix carries no synchronization. Concurrent readers are safe;
// any writer (Set, SetAll, MutBits, writes through row views) needs
// exclusive access.
type Matrix struct {
	storage *bits.Vec
	height  uint
	width   uint
}

// New returns a height x width matrix with all bits false.
// height*width must not overflow a uint; that is an unchecked
// precondition, not a reported error.
func New(height, width uint) *Matrix {
	return &Matrix{
		storage: bits.New(height * width),
		height:  height,
		width:   width,
	}
}

// Height returns the number of rows.
func (m *Matrix) Height() uint {
	return m.height
}

// Width returns the number of columns.
func (m *Matrix) Width() uint {
	return m.width
}

// rowOffset returns the bit offset of the first cell of row i. Not
// bounds-checked; Row relies on the storage range check instead.
func (m *Matrix) rowOffset(i uint) uint {
	return i * m.width
}

// Row returns a zero-copy view of row i. Writes through the view are
// visible in the matrix immediately. Panics if the row lies outside
// the storage.
func (m *Matrix) Row(i uint) bits.Slice {
	return m.storage.Slice(m.rowOffset(i), m.rowOffset(i+1))
}

// Get returns the bit at row i, column j.
// Panics if i >= Height() or j >= Width(): an out-of-range i fails
// constructing the row view, an out-of-range j fails indexing it.
func (m *Matrix) Get(i, j uint) bool {
	return m.Row(i).Get(j)
}

// Set sets the bit at row i, column j to value. This is the
// sanctioned single-bit write path; see the package comment.
// Panics under the same conditions as Get.
func (m *Matrix) Set(i, j uint, value bool) {
	m.Row(i).Put(j, value)
}

// SetAll sets every bit in the matrix to value in one pass.
func (m *Matrix) SetAll(value bool) {
	m.storage.SetAll(value)
}

// Count returns the number of true bits.
func (m *Matrix) Count() uint {
	return m.storage.Count()
}

// Clone returns an independent deep copy.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{
		storage: m.storage.Clone(),
		height:  m.height,
		width:   m.width,
	}
}

// Equal reports whether both matrices have the same dimensions and
// every corresponding bit matches.
func (m *Matrix) Equal(o *Matrix) bool {
	return m.height == o.height && m.width == o.width &&
		m.storage.Equal(o.storage)
}

const hashMul = 0xc4ceb9fe1a85ec53

// Hash returns a hash of the dimensions and bit contents, consistent
// with Equal: equal matrices hash identically.
func (m *Matrix) Hash() uint64 {
	h := (uint64(m.height)*hashMul ^ uint64(m.width)) * hashMul
	for _, w := range m.storage.Words() {
		h = (h ^ uint64(w)) * hashMul
	}
	return h
}

// String renders the matrix as Height() lines of Width() '0'/'1'
// characters in row-major order, each line newline-terminated.
// Diagnostic output only, not a serialization format.
func (m *Matrix) String() string {
	var b strings.Builder
	b.Grow(int(m.height * (m.width + 1)))
	for row := range m.Rows() {
		for bit := range row.Bits() {
			if bit {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
