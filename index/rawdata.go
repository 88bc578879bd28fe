package index

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/triego/internal/conv"
)

// Columnar string batch wire format, externally owned:
//
//	[uint32 count][for each of count: uint32 length][utf8 bytes]*
//
// All integers little-endian. DecodeStrings preserves batch order, which
// becomes ordinal order when the result feeds a build.

// DecodeStrings decodes a columnar string batch.
func DecodeStrings(data []byte) ([]string, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: buffer of %d bytes has no count", ErrInvalidRawData, len(data))
	}
	count, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRawData, err)
	}
	off := 4

	// Each entry occupies at least its 4-byte length prefix, so a count the
	// remaining bytes cannot hold is rejected before sizing the result.
	if count > (len(data)-4)/4 {
		return nil, fmt.Errorf("%w: declared count %d exceeds capacity of %d-byte buffer", ErrInvalidRawData, count, len(data))
	}

	values := make([]string, 0, count)
	for i := 0; i < count; i++ {
		if off+4 > len(data) {
			return nil, fmt.Errorf("%w: declared count %d, buffer ends inside entry %d", ErrInvalidRawData, count, i)
		}
		length, err := conv.Uint32ToInt(binary.LittleEndian.Uint32(data[off:]))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidRawData, err)
		}
		off += 4
		if off+length > len(data) {
			return nil, fmt.Errorf("%w: entry %d declares %d bytes, %d remain", ErrInvalidRawData, i, length, len(data)-off)
		}
		values = append(values, string(data[off:off+length]))
		off += length
	}
	if off != len(data) {
		return nil, fmt.Errorf("%w: %d trailing bytes after %d entries", ErrInvalidRawData, len(data)-off, count)
	}
	return values, nil
}

// EncodeStrings encodes values into the columnar string batch format. The
// index never produces batches in its build path; this is the test-side
// companion of DecodeStrings.
func EncodeStrings(values []string) []byte {
	size := 4
	for _, v := range values {
		size += 4 + len(v)
	}
	out := make([]byte, 4, size)
	binary.LittleEndian.PutUint32(out, uint32(len(values)))
	for _, v := range values {
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(v)))
		out = append(out, lenBuf[:]...)
		out = append(out, v...)
	}
	return out
}
