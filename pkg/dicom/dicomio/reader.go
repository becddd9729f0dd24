// Package dicomio implements the bounds-checked, forward-only primitive
// reads the DICOM element parser builds on: little/big-endian integers
// and raw byte runs from a byte source, plus position tracking.
//
// The byte source itself (io.Reader) is the out-of-scope collaborator
// spec.md §6 calls the "seekable byte source" - this package is the
// adapter that gives it the read shape the parser needs.
package dicomio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrShortRead is wrapped into the error returned whenever a read ends
// before the requested number of bytes is available.
var ErrShortRead = errors.New("dicomio: short read")

// Reader wraps an io.Reader with sequential, bounds-checked primitive
// reads and a running byte offset.
type Reader struct {
	r     io.Reader
	pos   int64
	atEOF bool
}

// NewReader adapts any io.Reader into a Reader.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Tell returns the number of bytes consumed so far.
func (r *Reader) Tell() int64 {
	return r.pos
}

// AtEOF reports whether the last read hit end-of-stream. It only becomes
// true after a read attempt returns io.EOF; it does not probe ahead.
func (r *Reader) AtEOF() bool {
	return r.atEOF
}

// ReadExact reads exactly n bytes, or returns a wrapped ErrShortRead.
func (r *Reader) ReadExact(n int64) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(r.r, buf)
	r.pos += int64(read)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			r.atEOF = true
			return buf[:read], fmt.Errorf("%w: wanted %d bytes, got %d", ErrShortRead, n, read)
		}
		return buf[:read], fmt.Errorf("dicomio: read: %w", err)
	}
	return buf, nil
}

// Skip advances the stream by n bytes without retaining them.
func (r *Reader) Skip(n int64) error {
	if n <= 0 {
		return nil
	}
	copied, err := io.CopyN(io.Discard, r.r, n)
	r.pos += copied
	if err != nil {
		if errors.Is(err, io.EOF) {
			r.atEOF = true
		}
		return fmt.Errorf("dicomio: skip %d bytes: %w", n, err)
	}
	return nil
}

// ReadU16LE reads a little-endian uint16.
func (r *Reader) ReadU16LE() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadU16BE reads a big-endian uint16 - used only for the VR field, which
// the wire format encodes as two ASCII bytes read big-endian so the VR
// constants in package vr line up with their printed form.
func (r *Reader) ReadU16BE() (uint16, error) {
	b, err := r.ReadExact(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadU32LE reads a little-endian uint32.
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadI16LE reads a little-endian int16.
func (r *Reader) ReadI16LE() (int16, error) {
	u, err := r.ReadU16LE()
	return int16(u), err
}

// ReadI32LE reads a little-endian int32.
func (r *Reader) ReadI32LE() (int32, error) {
	u, err := r.ReadU32LE()
	return int32(u), err
}
