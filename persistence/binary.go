package persistence

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Writer builds a blob payload from little-endian primitives.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter creates an empty payload writer.
func NewWriter() *Writer { return &Writer{} }

// WriteUint32 appends a little-endian uint32.
func (w *Writer) WriteUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint64 appends a little-endian uint64.
func (w *Writer) WriteUint64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf.Write(b[:])
}

// WriteUint32Slice appends the slice elements as little-endian uint32s.
func (w *Writer) WriteUint32Slice(s []uint32) {
	for _, v := range s {
		w.WriteUint32(v)
	}
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.Write(b)
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	return w.buf.Write(p)
}

// Bytes returns the accumulated payload.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

// Reader consumes a blob payload of little-endian primitives.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a payload reader over data.
func NewReader(data []byte) *Reader { return &Reader{data: data} }

// ReadUint32 consumes a little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	if r.off+4 > len(r.data) {
		return 0, fmt.Errorf("%w: need 4 bytes at offset %d of %d", ErrTruncated, r.off, len(r.data))
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

// ReadUint64 consumes a little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	if r.off+8 > len(r.data) {
		return 0, fmt.Errorf("%w: need 8 bytes at offset %d of %d", ErrTruncated, r.off, len(r.data))
	}
	v := binary.LittleEndian.Uint64(r.data[r.off:])
	r.off += 8
	return v, nil
}

// ReadUint32Slice consumes count little-endian uint32s.
func (r *Reader) ReadUint32Slice(count int) ([]uint32, error) {
	if count < 0 || r.off+4*count > len(r.data) {
		return nil, fmt.Errorf("%w: need %d uint32s at offset %d of %d", ErrTruncated, count, r.off, len(r.data))
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(r.data[r.off+4*i:])
	}
	r.off += 4 * count
	return out, nil
}

// Read implements io.Reader over the remaining payload.
func (r *Reader) Read(p []byte) (int, error) {
	if r.off >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.off:])
	r.off += n
	return n, nil
}

// Remaining returns the number of unconsumed payload bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.off }
