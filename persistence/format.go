// Package persistence provides the binary framing for serialized index blobs.
//
// Every blob produced by an index Serialize call is wrapped in a fixed
// 24-byte frame header carrying a magic number, format version, compression
// scheme and a CRC32 of the stored payload. Compression changes only the
// stored bytes, never the decoded payload.
package persistence

import "errors"

const (
	// MagicNumber identifies triego blob frames (ASCII: "TRI0").
	MagicNumber = 0x54524930
	// Version is the current frame format version (v1.0.0).
	Version = 0x00010000

	// headerSize is the fixed size of the frame header in bytes.
	headerSize = 24
)

var (
	ErrInvalidMagic       = errors.New("invalid magic number")
	ErrInvalidVersion     = errors.New("unsupported version")
	ErrInvalidCompression = errors.New("unknown compression scheme")
	ErrChecksumMismatch   = errors.New("payload checksum mismatch")
	ErrTruncated          = errors.New("truncated blob")
)

// Compression selects the payload compression scheme of a blob frame.
type Compression uint8

const (
	// CompressionNone stores the payload verbatim.
	CompressionNone Compression = iota
	// CompressionZstd compresses the payload with zstandard.
	CompressionZstd
	// CompressionLZ4 compresses the payload with lz4 block compression.
	CompressionLZ4
)

// String returns a string representation of the Compression.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// FrameHeader is the fixed-size header at the start of every blob.
type FrameHeader struct {
	Magic       uint32
	Version     uint32
	Compression Compression
	// RawSize is the payload size before compression.
	RawSize uint64
	// Checksum is the CRC32 (IEEE) of the stored (possibly compressed) payload.
	Checksum uint32
}
