// Package binary implements the primitive encodings of the WebAssembly
// binary format: fixed-width little-endian integers and LEB128 varints.
package binary

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Writer is a growable byte sink for WASM binary encoding.
// Every write reports how many bytes it appended.
type Writer struct {
	buf *bytes.Buffer
}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{buf: &bytes.Buffer{}}
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

// Len returns the number of bytes written.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Reset discards everything written so far.
func (w *Writer) Reset() {
	w.buf.Reset()
}

// WriteTo copies the written bytes to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	n, err := dst.Write(w.buf.Bytes())
	return int64(n), err
}

// Byte writes a single byte.
func (w *Writer) Byte(b byte) int {
	w.buf.WriteByte(b)
	return 1
}

// WriteBytes writes a byte slice verbatim.
func (w *Writer) WriteBytes(data []byte) int {
	n, _ := w.buf.Write(data)
	return n
}

// WriteU16LE writes a little-endian uint16 (fixed 2 bytes).
func (w *Writer) WriteU16LE(v uint16) int {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	return w.WriteBytes(buf[:])
}

// WriteU32LE writes a little-endian uint32 (fixed 4 bytes).
func (w *Writer) WriteU32LE(v uint32) int {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	return w.WriteBytes(buf[:])
}

// WriteU64LE writes a little-endian uint64 (fixed 8 bytes).
func (w *Writer) WriteU64LE(v uint64) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return w.WriteBytes(buf[:])
}

// WriteU32 writes an unsigned LEB128 encoded uint32 (varuint32).
func (w *Writer) WriteU32(v uint32) int {
	return w.WriteU64(uint64(v))
}

// WriteU64 writes an unsigned LEB128 encoded uint64.
func (w *Writer) WriteU64(v uint64) int {
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		n++
		if v == 0 {
			return n
		}
	}
}

// WriteS32 writes a signed LEB128 encoded int32 (varint32).
func (w *Writer) WriteS32(v int32) int {
	return w.WriteS64(int64(v))
}

// WriteS64 writes a signed LEB128 encoded int64 (varint64).
func (w *Writer) WriteS64(v int64) int {
	n := 0
	for {
		b := byte(v & 0x7f)
		v >>= 7
		done := (v == 0 && b&0x40 == 0) || (v == -1 && b&0x40 != 0)
		if !done {
			b |= 0x80
		}
		w.buf.WriteByte(b)
		n++
		if done {
			return n
		}
	}
}

// WriteVarUint1 writes a one-bit unsigned varint.
func (w *Writer) WriteVarUint1(v bool) int {
	if v {
		return w.Byte(1)
	}
	return w.Byte(0)
}

// WriteVarInt7 writes a seven-bit signed varint as a single byte.
func (w *Writer) WriteVarInt7(v int8) int {
	return w.Byte(byte(v) & 0x7f)
}

// WriteName writes a UTF-8 encoded name (length-prefixed).
func (w *Writer) WriteName(s string) int {
	n := w.WriteU32(uint32(len(s)))
	m, _ := w.buf.WriteString(s)
	return n + m
}
