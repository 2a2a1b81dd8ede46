// Package bits implements a fixed-length packed bit vector and
// zero-copy windows over it. Bits are stored least significant bit
// first within uint words.
package bits

//
// Vec
//

import (
	mathbits "math/bits"

	"github.com/pi/bitmatrix/md"
)

// Vec is a fixed-length sequence of individually addressable bits
// packed into uint words. The length never changes after New. Unused
// high bits of the final word are kept zero, so word-wise comparison
// and hashing over Words stay canonical.
type Vec struct {
	len   uint
	words []uint
}

// New returns a Vec of n bits, all false.
func New(n uint) *Vec {
	return &Vec{
		words: make([]uint, (n+md.BitsPerUint-1)>>md.UintSizeShift),
		len:   n,
	}
}

// Len returns the vector length in bits.
func (v *Vec) Len() uint {
	return v.len
}

// tailMask is the mask of in-range bits of the final word.
func (v *Vec) tailMask() uint {
	if r := v.len & md.UintSizeMask; r != 0 {
		return (1 << r) - 1
	}
	return ^uint(0)
}

// Get returns the bit at index. Panics if index >= Len().
func (v *Vec) Get(index uint) bool {
	if index >= v.len {
		panic("bit vector index out of bounds")
	}
	return (v.words[index>>md.UintSizeShift]>>(index&md.UintSizeMask))&1 == 1
}

// Put sets the bit at index to value. Panics if index >= Len().
func (v *Vec) Put(index uint, value bool) {
	if index >= v.len {
		panic("bit vector index out of bounds")
	}
	wi := index >> md.UintSizeShift
	bi := index & md.UintSizeMask
	if value {
		v.words[wi] |= 1 << bi
	} else {
		v.words[wi] &^= 1 << bi
	}
}

// SetAll sets every bit to value in one pass over the words.
func (v *Vec) SetAll(value bool) {
	if len(v.words) == 0 {
		return
	}
	var fill uint
	if value {
		fill = ^uint(0)
	}
	for i := range v.words {
		v.words[i] = fill
	}
	v.words[len(v.words)-1] &= v.tailMask()
}

// Clear resets all bits to false.
func (v *Vec) Clear() {
	v.SetAll(false)
}

// Count returns the number of true bits.
func (v *Vec) Count() uint {
	n := 0
	for _, w := range v.words {
		n += mathbits.OnesCount(w)
	}
	return uint(n)
}

// Words exposes the backing words. Callers must not write through it.
func (v *Vec) Words() []uint {
	return v.words
}

// Clone returns an independent copy.
func (v *Vec) Clone() *Vec {
	c := &Vec{len: v.len, words: make([]uint, len(v.words))}
	copy(c.words, v.words)
	return c
}

// Equal reports whether both vectors have the same length and bits.
func (v *Vec) Equal(o *Vec) bool {
	if v.len != o.len {
		return false
	}
	for i, w := range v.words {
		if w != o.words[i] {
			return false
		}
	}
	return true
}

// Bytes returns the bits packed LSB-first into (Len()+7)/8 bytes,
// little-endian within each word. The encoding is independent of the
// word size and round-trips through VecFromBytes.
func (v *Vec) Bytes() []byte {
	r := make([]byte, (v.len+7)/8)
	for i := range r {
		w := v.words[uint(i)/md.BytesPerUint]
		r[i] = byte(w >> ((uint(i) % md.BytesPerUint) * 8))
	}
	return r
}

// VecFromBytes reconstructs a Vec of n bits from the Bytes encoding.
// Bits of the final byte beyond n are ignored. Panics if data holds
// fewer than (n+7)/8 bytes.
func VecFromBytes(n uint, data []byte) *Vec {
	nb := (n + 7) / 8
	if uint(len(data)) < nb {
		panic("bit vector byte data too short")
	}
	v := New(n)
	for i := uint(0); i < nb; i++ {
		v.words[i/md.BytesPerUint] |= uint(data[i]) << ((i % md.BytesPerUint) * 8)
	}
	if len(v.words) > 0 {
		v.words[len(v.words)-1] &= v.tailMask()
	}
	return v
}

// Slice returns the non-owning window [from, to).
// Panics if from > to or to > Len().
func (v *Vec) Slice(from, to uint) Slice {
	if from > to || to > v.len {
		panic("bit vector range out of bounds")
	}
	return Slice{vec: v, off: from, n: to - from}
}
