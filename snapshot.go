package bitmatrix

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Snapshot layout, little-endian:
//
//	magic u32 | version u32 | compression u8 | pad [3]byte |
//	crc32c(payload) u32 | payload length u64 | payload
//
// The payload is the MarshalBinary record, compressed per the tag.
const (
	snapshotMagic      = 0x424d5830 // "BMX0"
	snapshotVersion    = 1
	snapshotHeaderSize = 24
)

// Compression selects the snapshot payload codec.
type Compression uint8

const (
	CompressionNone Compression = iota
	CompressionZstd
	CompressionLZ4
)

var (
	ErrInvalidMagic       = errors.New("bitmatrix: invalid snapshot magic")
	ErrInvalidVersion     = errors.New("bitmatrix: unsupported snapshot version")
	ErrUnknownCompression = errors.New("bitmatrix: unknown snapshot compression")
	ErrChecksum           = errors.New("bitmatrix: snapshot checksum mismatch")
)

var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// WriteSnapshot writes a framed, checksummed snapshot of m to w. The
// snapshot is the flat record of dimensions plus packed storage; the
// payload is compressed per the compression tag.
func WriteSnapshot(w io.Writer, m *Matrix, compression Compression) error {
	record, err := m.MarshalBinary()
	if err != nil {
		return err
	}
	payload, err := compress(record, compression)
	if err != nil {
		return err
	}
	var hdr [snapshotHeaderSize]byte
	binary.LittleEndian.PutUint32(hdr[0:4], snapshotMagic)
	binary.LittleEndian.PutUint32(hdr[4:8], snapshotVersion)
	hdr[8] = byte(compression)
	binary.LittleEndian.PutUint32(hdr[12:16], crc32.Checksum(payload, crc32cTable))
	binary.LittleEndian.PutUint64(hdr[16:24], uint64(len(payload)))
	if _, err := w.Write(hdr[:]); err != nil {
		return fmt.Errorf("bitmatrix: writing snapshot header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("bitmatrix: writing snapshot payload: %w", err)
	}
	return nil
}

// ReadSnapshot reads a WriteSnapshot frame from r, verifying magic,
// version and checksum, and decodes the matrix with the usual
// dimension validation.
func ReadSnapshot(r io.Reader) (*Matrix, error) {
	var hdr [snapshotHeaderSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("bitmatrix: reading snapshot header: %w", err)
	}
	if binary.LittleEndian.Uint32(hdr[0:4]) != snapshotMagic {
		return nil, ErrInvalidMagic
	}
	if binary.LittleEndian.Uint32(hdr[4:8]) != snapshotVersion {
		return nil, ErrInvalidVersion
	}
	compression := Compression(hdr[8])
	sum := binary.LittleEndian.Uint32(hdr[12:16])
	size := binary.LittleEndian.Uint64(hdr[16:24])
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("bitmatrix: reading snapshot payload: %w", err)
	}
	if crc32.Checksum(payload, crc32cTable) != sum {
		return nil, ErrChecksum
	}
	record, err := decompress(payload, compression)
	if err != nil {
		return nil, err
	}
	m := new(Matrix)
	if err := m.UnmarshalBinary(record); err != nil {
		return nil, err
	}
	return m, nil
}

func compress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, fmt.Errorf("bitmatrix: zstd encoder: %w", err)
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, fmt.Errorf("bitmatrix: lz4 compress: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("bitmatrix: lz4 compress: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, ErrUnknownCompression
	}
}

func decompress(data []byte, c Compression) ([]byte, error) {
	switch c {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("bitmatrix: zstd decoder: %w", err)
		}
		defer dec.Close()
		out, err := dec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("bitmatrix: zstd decompress: %w", err)
		}
		return out, nil
	case CompressionLZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
		if err != nil {
			return nil, fmt.Errorf("bitmatrix: lz4 decompress: %w", err)
		}
		return out, nil
	default:
		return nil, ErrUnknownCompression
	}
}
