package bitmatrix

import (
	"encoding/binary"
	"errors"
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/pi/bitmatrix/bits"
)

var (
	// ErrCorruptRecord reports a serialized record that is truncated
	// or whose payload length disagrees with its own header.
	ErrCorruptRecord = errors.New("bitmatrix: corrupt record")

	// ErrDimensionMismatch reports a serialized record whose storage
	// bit length does not equal height*width. Such records are
	// rejected rather than decoded into an inconsistent matrix.
	ErrDimensionMismatch = errors.New("bitmatrix: storage length does not match dimensions")
)

// Binary record layout, little-endian:
//
//	height u64 | width u64 | bit length u64 | byte-packed bits
//
// The bits are packed LSB-first per bits.Vec.Bytes, so the record is
// independent of the in-memory word size.
const binaryHeaderSize = 24

// MarshalBinary encodes the matrix as a flat record of its
// dimensions and packed storage.
func (m *Matrix) MarshalBinary() ([]byte, error) {
	data := m.storage.Bytes()
	out := make([]byte, binaryHeaderSize+len(data))
	binary.LittleEndian.PutUint64(out[0:8], uint64(m.height))
	binary.LittleEndian.PutUint64(out[8:16], uint64(m.width))
	binary.LittleEndian.PutUint64(out[16:24], uint64(m.storage.Len()))
	copy(out[binaryHeaderSize:], data)
	return out, nil
}

// UnmarshalBinary decodes a MarshalBinary record, validating that the
// stored bit length equals height*width and that the payload holds
// exactly that many bits.
func (m *Matrix) UnmarshalBinary(data []byte) error {
	if len(data) < binaryHeaderSize {
		return ErrCorruptRecord
	}
	height := binary.LittleEndian.Uint64(data[0:8])
	width := binary.LittleEndian.Uint64(data[8:16])
	nbits := binary.LittleEndian.Uint64(data[16:24])
	if nbits != height*width {
		return ErrDimensionMismatch
	}
	payload := data[binaryHeaderSize:]
	if uint64(len(payload)) != (nbits+7)/8 {
		return ErrCorruptRecord
	}
	m.storage = bits.VecFromBytes(uint(nbits), payload)
	m.height = uint(height)
	m.width = uint(width)
	return nil
}

// jsonMatrix is the structured JSON form: dimensions plus the
// byte-packed storage (base64 on the wire) with its explicit bit
// length.
type jsonMatrix struct {
	Height  uint   `json:"height"`
	Width   uint   `json:"width"`
	Bits    uint   `json:"bits"`
	Storage []byte `json:"storage"`
}

// MarshalJSON encodes the matrix as a structured record of height,
// width and packed storage.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return gojson.Marshal(jsonMatrix{
		Height:  m.height,
		Width:   m.width,
		Bits:    m.storage.Len(),
		Storage: m.storage.Bytes(),
	})
}

// UnmarshalJSON decodes a MarshalJSON record with the same validation
// as UnmarshalBinary.
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var rec jsonMatrix
	if err := gojson.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("bitmatrix: decoding record: %w", err)
	}
	if rec.Bits != rec.Height*rec.Width {
		return ErrDimensionMismatch
	}
	if uint(len(rec.Storage)) != (rec.Bits+7)/8 {
		return ErrCorruptRecord
	}
	m.storage = bits.VecFromBytes(rec.Bits, rec.Storage)
	m.height = rec.Height
	m.width = rec.Width
	return nil
}
