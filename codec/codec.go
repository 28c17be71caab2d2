// Package codec implements the bounds-checked binary cursor every wire codec of the
// protocol is built on. All integers are fixed-width little-endian.
package codec

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spacemeshos/go-scale"
)

// ErrUnderflow is returned when a read needs more bytes than remain in the buffer.
var ErrUnderflow = errors.New("codec: buffer underflow")

// Reader is a forward-only cursor over an immutable byte slice.
type Reader struct {
	buf []byte
	rd  *bytes.Reader
	dec *scale.Decoder
}

// NewReader returns a cursor positioned at the start of buf.
func NewReader(buf []byte) *Reader {
	rd := bytes.NewReader(buf)
	return &Reader{buf: buf, rd: rd, dec: scale.NewDecoder(rd)}
}

// Remaining reports how many unread bytes are left.
func (r *Reader) Remaining() int {
	return r.rd.Len()
}

// Offset reports how many bytes were consumed.
func (r *Reader) Offset() int {
	return len(r.buf) - r.rd.Len()
}

func (r *Reader) ensure(n int) error {
	if n < 0 || n > r.rd.Len() {
		return fmt.Errorf("%w: need %d bytes, %d remaining", ErrUnderflow, n, r.rd.Len())
	}
	return nil
}

// First rewinds the cursor to the beginning of the buffer and reads n bytes.
func (r *Reader) First(n int) ([]byte, error) {
	r.rd.Reset(r.buf)
	return r.Next(n)
}

// Next reads exactly n bytes. The returned slice is a copy.
func (r *Reader) Next(n int) ([]byte, error) {
	if err := r.ensure(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if n == 0 {
		return out, nil
	}
	if _, err := scale.DecodeByteArray(r.dec, out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnderflow, err)
	}
	return out, nil
}

// ReadInto fills dst completely.
func (r *Reader) ReadInto(dst []byte) error {
	if err := r.ensure(len(dst)); err != nil {
		return err
	}
	if _, err := scale.DecodeByteArray(r.dec, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrUnderflow, err)
	}
	return nil
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() (uint8, error) {
	if err := r.ensure(1); err != nil {
		return 0, err
	}
	v, _, err := scale.DecodeByte(r.dec)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnderflow, err)
	}
	return v, nil
}

// ReadUint16 reads two bytes as little-endian.
func (r *Reader) ReadUint16() (uint16, error) {
	if err := r.ensure(2); err != nil {
		return 0, err
	}
	v, _, err := scale.DecodeUint16(r.dec)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnderflow, err)
	}
	return v, nil
}

// ReadUint32 reads four bytes as little-endian.
func (r *Reader) ReadUint32() (uint32, error) {
	if err := r.ensure(4); err != nil {
		return 0, err
	}
	v, _, err := scale.DecodeUint32(r.dec)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnderflow, err)
	}
	return v, nil
}

// ReadUint64 reads eight bytes as little-endian.
func (r *Reader) ReadUint64() (uint64, error) {
	if err := r.ensure(8); err != nil {
		return 0, err
	}
	v, _, err := scale.DecodeUint64(r.dec)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnderflow, err)
	}
	return v, nil
}

// Writer appends fixed-width little-endian fields to a growing buffer.
// The first failed write is sticky and reported by Bytes.
type Writer struct {
	buf bytes.Buffer
	enc *scale.Encoder
	err error
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	w := &Writer{}
	w.enc = scale.NewEncoder(&w.buf)
	return w
}

func (w *Writer) record(_ int, err error) {
	if w.err == nil && err != nil {
		w.err = err
	}
}

// WriteUint8 appends a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.record(scale.EncodeByte(w.enc, v))
}

// WriteUint16 appends v as two little-endian bytes.
func (w *Writer) WriteUint16(v uint16) {
	w.record(scale.EncodeUint16(w.enc, v))
}

// WriteUint32 appends v as four little-endian bytes.
func (w *Writer) WriteUint32(v uint32) {
	w.record(scale.EncodeUint32(w.enc, v))
}

// WriteUint64 appends v as eight little-endian bytes.
func (w *Writer) WriteUint64(v uint64) {
	w.record(scale.EncodeUint64(w.enc, v))
}

// WriteBytes appends b verbatim, without a length prefix.
func (w *Writer) WriteBytes(b []byte) {
	if len(b) == 0 {
		return
	}
	w.record(scale.EncodeByteArray(w.enc, b))
}

// Len reports the number of bytes written so far.
func (w *Writer) Len() int {
	return w.buf.Len()
}

// Bytes returns a copy of the written buffer.
func (w *Writer) Bytes() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, w.buf.Len())
	copy(out, w.buf.Bytes())
	return out, nil
}
