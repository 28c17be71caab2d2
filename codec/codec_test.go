package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterLayout(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(0x01)
	w.WriteUint16(0x0302)
	w.WriteUint32(0x07060504)
	w.WriteUint64(0x0f0e0d0c0b0a0908)
	w.WriteBytes([]byte{0xaa, 0xbb})
	w.WriteBytes(nil)
	require.Equal(t, 17, w.Len())

	out, err := w.Bytes()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
		0xaa, 0xbb,
	}, out)
}

func TestReaderRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteUint8(7)
	w.WriteUint16(65535)
	w.WriteUint32(1 << 31)
	w.WriteUint64(1<<64 - 1)
	w.WriteBytes([]byte("tail"))
	buf, err := w.Bytes()
	require.NoError(t, err)

	r := NewReader(buf)
	u8, err := r.ReadUint8()
	require.NoError(t, err)
	require.Equal(t, uint8(7), u8)
	u16, err := r.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(65535), u16)
	u32, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(1<<31), u32)
	u64, err := r.ReadUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(1<<64-1), u64)
	require.Equal(t, 4, r.Remaining())
	require.Equal(t, 15, r.Offset())
	tail, err := r.Next(4)
	require.NoError(t, err)
	require.Equal(t, []byte("tail"), tail)
	require.Zero(t, r.Remaining())
}

func TestReaderUnderflow(t *testing.T) {
	for _, tc := range []struct {
		desc string
		read func(*Reader) error
	}{
		{"uint8", func(r *Reader) error { _, err := r.ReadUint8(); return err }},
		{"uint16", func(r *Reader) error { _, err := r.ReadUint16(); return err }},
		{"uint32", func(r *Reader) error { _, err := r.ReadUint32(); return err }},
		{"uint64", func(r *Reader) error { _, err := r.ReadUint64(); return err }},
		{"next", func(r *Reader) error { _, err := r.Next(2); return err }},
		{"into", func(r *Reader) error { return r.ReadInto(make([]byte, 2)) }},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			r := NewReader(nil)
			require.ErrorIs(t, tc.read(r), ErrUnderflow)
		})
	}
}

func TestReaderUnderflowDoesNotConsume(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	_, err := r.ReadUint32()
	require.ErrorIs(t, err, ErrUnderflow)
	require.Equal(t, 3, r.Remaining())
	v, err := r.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0201), v)
}

func TestReaderFirstRewinds(t *testing.T) {
	r := NewReader([]byte{9, 8, 7})
	_, err := r.Next(2)
	require.NoError(t, err)
	first, err := r.First(1)
	require.NoError(t, err)
	require.Equal(t, []byte{9}, first)
	require.Equal(t, 2, r.Remaining())
}

func TestNextZero(t *testing.T) {
	r := NewReader(nil)
	b, err := r.Next(0)
	require.NoError(t, err)
	require.Empty(t, b)
	_, err = r.Next(-1)
	require.ErrorIs(t, err, ErrUnderflow)
}
