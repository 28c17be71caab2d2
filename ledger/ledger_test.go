package ledger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forwardblock/go-forwardblock/codec"
	"github.com/forwardblock/go-forwardblock/common/types"
)

var (
	debit  = Flag{ID: 1, Name: "debit"}
	credit = Flag{ID: 2, Name: "credit"}
	fee    = Flag{ID: 3, Name: "fee"}
)

func testFlags() *Flags {
	return NewFlags(debit, credit, fee)
}

func account(b byte) types.Address {
	var a types.Address
	for i := range a {
		a[i] = b
	}
	return a
}

func TestNewEntryIsApplicable(t *testing.T) {
	e := NewEntry(debit, account(1), 10, types.NativeAsset)
	require.True(t, e.Applicable)
}

func TestSerializedBatchesLayout(t *testing.T) {
	entries := NewEntries(64)
	require.NoError(t, entries.AddBatch(NewEntry(credit, account(1), 1000, types.NativeAsset)))
	notApplied := NewEntry(fee, account(2), 1, "frwd")
	notApplied.Applicable = false
	require.NoError(t, entries.AddBatch(notApplied))

	raw, err := entries.SerializedBatches()
	require.NoError(t, err)

	var expected bytes.Buffer
	expected.Write([]byte{0x02, 0x01})
	expected.Write(bytes.Repeat([]byte{1}, 20))
	expected.Write([]byte{0x02, 0x00})
	expected.Write([]byte{0xe8, 0x03, 0, 0, 0, 0, 0, 0})
	expected.WriteString("        ")
	expected.WriteByte(0x01)
	expected.WriteByte(0x01)
	expected.Write(bytes.Repeat([]byte{2}, 20))
	expected.Write([]byte{0x03, 0x00})
	expected.Write([]byte{0x01, 0, 0, 0, 0, 0, 0, 0})
	expected.WriteString("frwd    ")
	expected.WriteByte(0x00)
	require.Equal(t, expected.Bytes(), raw)
}

func TestEmptyEntries(t *testing.T) {
	raw, err := NewEntries(64).SerializedBatches()
	require.NoError(t, err)
	require.Equal(t, []byte{0x00}, raw)

	decoded, err := Decode(codec.NewReader(raw), testFlags(), 64)
	require.NoError(t, err)
	require.Zero(t, decoded.Count())
	require.Zero(t, decoded.BatchCount())
}

func TestAddBatchCap(t *testing.T) {
	entries := NewEntries(5)
	batch := func(n int) []Entry {
		out := make([]Entry, n)
		for i := range out {
			out[i] = NewEntry(debit, account(byte(i)), uint64(i), types.NativeAsset)
		}
		return out
	}
	require.NoError(t, entries.AddBatch(batch(2)...))
	require.NoError(t, entries.AddBatch(batch(2)...))
	require.ErrorIs(t, entries.AddBatch(batch(1)...), ErrTooManyEntries)

	// accepted batches are untouched by the rejected one
	require.Equal(t, 2, entries.BatchCount())
	require.Equal(t, 4, entries.Count())

	require.ErrorIs(t, entries.AddBatch(), ErrEmptyBatch)
}

func TestAddBatchCopiesInput(t *testing.T) {
	entries := NewEntries(64)
	batch := []Entry{NewEntry(debit, account(1), 1, types.NativeAsset)}
	require.NoError(t, entries.AddBatch(batch...))
	batch[0].Amount = 99
	require.Equal(t, uint64(1), entries.Batches()[0][0].Amount)
}

func TestDecodeRoundTrip(t *testing.T) {
	entries := NewEntries(64)
	require.NoError(t, entries.AddBatch(
		NewEntry(debit, account(1), 500, types.NativeAsset),
		NewEntry(credit, account(2), 450, types.NativeAsset),
		NewEntry(fee, account(1), 50, types.NativeAsset),
	))
	informational := NewEntry(credit, account(3), 7, "gld-ab1")
	informational.Applicable = false
	require.NoError(t, entries.AddBatch(informational))

	raw, err := entries.SerializedBatches()
	require.NoError(t, err)
	r := codec.NewReader(raw)
	decoded, err := Decode(r, testFlags(), 64)
	require.NoError(t, err)
	require.Zero(t, r.Remaining())
	require.True(t, entries.Equal(decoded))
	require.Equal(t, entries.Batches(), decoded.Batches())
}

func TestDecodeErrors(t *testing.T) {
	valid := NewEntries(64)
	require.NoError(t, valid.AddBatch(NewEntry(debit, account(1), 1, types.NativeAsset)))
	raw, err := valid.SerializedBatches()
	require.NoError(t, err)
	statusOffset := len(raw) - 1
	flagOffset := 2 + types.AddressLength

	for _, tc := range []struct {
		desc   string
		mutate func([]byte) []byte
		limit  int
		err    error
	}{
		{
			desc:   "empty batch",
			mutate: func([]byte) []byte { return []byte{0x01, 0x00} },
			limit:  64,
			err:    ErrDecode,
		},
		{
			desc:   "batch larger than limit",
			mutate: func(b []byte) []byte { return b },
			limit:  0,
			err:    ErrDecode,
		},
		{
			desc: "invalid status byte",
			mutate: func(b []byte) []byte {
				b[statusOffset] = 0x02
				return b
			},
			limit: 64,
			err:   ErrDecode,
		},
		{
			desc: "unknown flag",
			mutate: func(b []byte) []byte {
				b[flagOffset] = 0x7f
				return b
			},
			limit: 64,
			err:   ErrUnknownFlag,
		},
		{
			desc:   "truncated",
			mutate: func(b []byte) []byte { return b[:len(b)-3] },
			limit:  64,
			err:    codec.ErrUnderflow,
		},
		{
			desc:   "missing batch count",
			mutate: func([]byte) []byte { return nil },
			limit:  64,
			err:    codec.ErrUnderflow,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			input := tc.mutate(append([]byte{}, raw...))
			_, err := Decode(codec.NewReader(input), testFlags(), tc.limit)
			require.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDecodeCumulativeCap(t *testing.T) {
	entries := NewEntries(64)
	require.NoError(t, entries.AddBatch(NewEntry(debit, account(1), 1, types.NativeAsset)))
	require.NoError(t, entries.AddBatch(NewEntry(debit, account(2), 1, types.NativeAsset)))
	raw, err := entries.SerializedBatches()
	require.NoError(t, err)

	_, err = Decode(codec.NewReader(raw), testFlags(), 2)
	require.ErrorIs(t, err, ErrDecode)
	require.ErrorIs(t, err, ErrTooManyEntries)
}

func TestEncodeRejectsLongAsset(t *testing.T) {
	entries := NewEntries(64)
	require.NoError(t, entries.AddBatch(NewEntry(debit, account(1), 1, "toolongasset")))
	_, err := entries.SerializedBatches()
	require.Error(t, err)
}

func TestFlags(t *testing.T) {
	flags := testFlags()
	got, err := flags.Get(2)
	require.NoError(t, err)
	require.Equal(t, credit, got)

	_, err = flags.Get(9)
	require.ErrorIs(t, err, ErrUnknownFlag)

	require.NoError(t, flags.Register(credit))
	require.Error(t, flags.Register(Flag{ID: 2, Name: "other"}))
	require.Equal(t, []Flag{debit, credit, fee}, flags.All())
}

func TestDump(t *testing.T) {
	entries := NewEntries(64)
	require.NoError(t, entries.AddBatch(
		NewEntry(debit, account(1), 5, types.NativeAsset),
		NewEntry(credit, account(2), 5, types.NativeAsset),
	))
	d := entries.Dump()
	require.Equal(t, 1, d.BatchCount)
	require.Equal(t, 2, d.TotalCount)
	require.Len(t, d.Batches[0], 2)
	require.Equal(t, "debit", d.Batches[0][0].Flag)
	require.Equal(t, "native", d.Batches[0][0].Asset)
	require.Equal(t, account(2).String(), d.Batches[0][1].Account)
}
