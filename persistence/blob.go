package persistence

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

var (
	zstdOnce    sync.Once
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func zstdInit() {
	zstdOnce.Do(func() {
		// Both are stateless in EncodeAll/DecodeAll mode and safe for
		// concurrent use.
		zstdEncoder, _ = zstd.NewWriter(nil)
		zstdDecoder, _ = zstd.NewReader(nil)
	})
}

// EncodeBlob frames payload with a FrameHeader, compressing the stored
// bytes with the given scheme. Payloads that do not shrink under lz4 fall
// back to an uncompressed frame.
func EncodeBlob(payload []byte, c Compression) ([]byte, error) {
	stored := payload
	switch c {
	case CompressionNone:
	case CompressionZstd:
		zstdInit()
		stored = zstdEncoder.EncodeAll(payload, nil)
	case CompressionLZ4:
		var compressor lz4.Compressor
		buf := make([]byte, lz4.CompressBlockBound(len(payload)))
		n, err := compressor.CompressBlock(payload, buf)
		if err != nil {
			return nil, fmt.Errorf("lz4 compression: %w", err)
		}
		if n == 0 || n >= len(payload) {
			// Incompressible.
			c = CompressionNone
		} else {
			stored = buf[:n]
		}
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, c)
	}

	out := make([]byte, headerSize+len(stored))
	binary.LittleEndian.PutUint32(out[0:4], MagicNumber)
	binary.LittleEndian.PutUint32(out[4:8], Version)
	out[8] = byte(c)
	binary.LittleEndian.PutUint64(out[12:20], uint64(len(payload)))
	binary.LittleEndian.PutUint32(out[20:24], crc32.ChecksumIEEE(stored))
	copy(out[headerSize:], stored)
	return out, nil
}

// DecodeBlob validates a frame produced by EncodeBlob and returns the
// decompressed payload.
func DecodeBlob(data []byte) ([]byte, error) {
	header, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	stored := data[headerSize:]
	if crc32.ChecksumIEEE(stored) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	switch header.Compression {
	case CompressionNone:
		if uint64(len(stored)) != header.RawSize {
			return nil, fmt.Errorf("%w: stored %d bytes, header declares %d", ErrTruncated, len(stored), header.RawSize)
		}
		payload := make([]byte, len(stored))
		copy(payload, stored)
		return payload, nil
	case CompressionZstd:
		zstdInit()
		payload, err := zstdDecoder.DecodeAll(stored, nil)
		if err != nil {
			return nil, fmt.Errorf("zstd decompression: %w", err)
		}
		if uint64(len(payload)) != header.RawSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, header declares %d", ErrTruncated, len(payload), header.RawSize)
		}
		return payload, nil
	case CompressionLZ4:
		// An lz4 block cannot expand beyond ~255x its stored size (each
		// match-length extension byte yields at most 255 output bytes), so
		// a larger declared size is corrupt and not worth allocating for.
		const lz4MaxRatio = 255
		if header.RawSize > uint64(len(stored))*lz4MaxRatio {
			return nil, fmt.Errorf("%w: declared %d bytes from %d stored exceeds lz4 expansion bound", ErrTruncated, header.RawSize, len(stored))
		}
		payload := make([]byte, header.RawSize)
		n, err := lz4.UncompressBlock(stored, payload)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompression: %w", err)
		}
		if uint64(n) != header.RawSize {
			return nil, fmt.Errorf("%w: decompressed %d bytes, header declares %d", ErrTruncated, n, header.RawSize)
		}
		return payload, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, header.Compression)
	}
}

func decodeHeader(data []byte) (*FrameHeader, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(data), headerSize)
	}
	header := &FrameHeader{
		Magic:       binary.LittleEndian.Uint32(data[0:4]),
		Version:     binary.LittleEndian.Uint32(data[4:8]),
		Compression: Compression(data[8]),
		RawSize:     binary.LittleEndian.Uint64(data[12:20]),
		Checksum:    binary.LittleEndian.Uint32(data[20:24]),
	}
	if header.Magic != MagicNumber {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidMagic, header.Magic)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w: got 0x%08x", ErrInvalidVersion, header.Version)
	}
	const maxRawSize = 1 << 32
	if header.RawSize > maxRawSize {
		return nil, fmt.Errorf("%w: declared payload size %d exceeds limit", ErrTruncated, header.RawSize)
	}
	return header, nil
}
