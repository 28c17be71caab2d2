// Package ledger implements the double-entry ledger entries carried by transaction receipts.
package ledger

import (
	"errors"
	"fmt"
	"math"

	"github.com/forwardblock/go-forwardblock/codec"
	"github.com/forwardblock/go-forwardblock/common/types"
)

var (
	// ErrTooManyEntries is returned when a batch would bring the entry count to the maximum.
	ErrTooManyEntries = errors.New("too many ledger entries")
	// ErrEmptyBatch is returned when adding a batch without entries.
	ErrEmptyBatch = errors.New("empty ledger entries batch")
	// ErrDecode is returned for malformed serialized batches.
	ErrDecode = errors.New("malformed ledger entries")
)

const (
	statusNotApplicable byte = 0x00
	statusApplicable    byte = 0x01
)

// Entry is a single accounting movement.
type Entry struct {
	Flag    Flag
	Account types.Address
	Amount  uint64
	Asset   types.AssetID
	// Applicable is false for informational entries that the state layer must not apply.
	Applicable bool
}

// NewEntry returns an applicable entry.
func NewEntry(flag Flag, account types.Address, amount uint64, asset types.AssetID) Entry {
	return Entry{
		Flag:       flag,
		Account:    account,
		Amount:     amount,
		Asset:      asset,
		Applicable: true,
	}
}

func (e *Entry) encode(w *codec.Writer) error {
	asset, err := e.Asset.SpacePadded()
	if err != nil {
		return err
	}
	w.WriteBytes(e.Account[:])
	w.WriteUint16(e.Flag.ID)
	w.WriteUint64(e.Amount)
	w.WriteBytes(asset[:])
	if e.Applicable {
		w.WriteUint8(statusApplicable)
	} else {
		w.WriteUint8(statusNotApplicable)
	}
	return nil
}

// Entries is the ordered list of batches held by a receipt. Batch order and the order of
// entries inside a batch are part of the receipt commitment.
type Entries struct {
	limit   int
	batches [][]Entry
	count   int
}

// NewEntries returns an empty collection capped by limit.
func NewEntries(limit int) *Entries {
	return &Entries{limit: limit}
}

// AddBatch appends one batch. The batch is rejected as a whole if the total count
// would reach the maximum.
func (e *Entries) AddBatch(entries ...Entry) error {
	if len(entries) == 0 {
		return ErrEmptyBatch
	}
	if e.count+len(entries) >= e.limit {
		return fmt.Errorf("%w: receipt cannot contain more than %d ledger entries", ErrTooManyEntries, e.limit)
	}
	if len(e.batches) == math.MaxUint8 || len(entries) > math.MaxUint8 {
		return fmt.Errorf("%w: batch does not fit the 1-byte count", ErrTooManyEntries)
	}
	batch := make([]Entry, len(entries))
	copy(batch, entries)
	e.batches = append(e.batches, batch)
	e.count += len(entries)
	return nil
}

// Batches returns the batches in insertion order. The result must not be modified.
func (e *Entries) Batches() [][]Entry {
	return e.batches
}

// BatchCount returns the number of batches.
func (e *Entries) BatchCount() int {
	return len(e.batches)
}

// Count returns the number of entries across all batches.
func (e *Entries) Count() int {
	return e.count
}

// Max returns the configured cap.
func (e *Entries) Max() int {
	return e.limit
}

// Equal reports whether both collections hold the same batches.
func (e *Entries) Equal(other *Entries) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.count != other.count || len(e.batches) != len(other.batches) {
		return false
	}
	for i := range e.batches {
		if len(e.batches[i]) != len(other.batches[i]) {
			return false
		}
		for j := range e.batches[i] {
			if e.batches[i][j] != other.batches[i][j] {
				return false
			}
		}
	}
	return true
}

// Encode writes the canonical batch encoding into w.
func (e *Entries) Encode(w *codec.Writer) error {
	w.WriteUint8(uint8(len(e.batches)))
	for _, batch := range e.batches {
		w.WriteUint8(uint8(len(batch)))
		for i := range batch {
			if err := batch[i].encode(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// SerializedBatches returns the canonical encoding: batch count, then per batch the
// entry count followed by the entries.
func (e *Entries) SerializedBatches() ([]byte, error) {
	w := codec.NewWriter()
	if err := e.Encode(w); err != nil {
		return nil, err
	}
	return w.Bytes()
}

// Decode reads batches from r into a fresh collection capped by limit.
func Decode(r *codec.Reader, flags FlagSource, limit int) (*Entries, error) {
	entries := NewEntries(limit)
	batches, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	for b := 0; b < int(batches); b++ {
		n, err := r.ReadUint8()
		if err != nil {
			return nil, err
		}
		if n < 1 || int(n) > limit {
			return nil, fmt.Errorf("%w: batch %d contains %d entries, allowed are 1 to %d", ErrDecode, b, n, limit)
		}
		batch := make([]Entry, 0, n)
		for i := 0; i < int(n); i++ {
			entry, err := decodeEntry(r, flags)
			if err != nil {
				return nil, fmt.Errorf("batch %d entry %d: %w", b, i, err)
			}
			batch = append(batch, entry)
		}
		if err := entries.AddBatch(batch...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
	}
	return entries, nil
}

func decodeEntry(r *codec.Reader, flags FlagSource) (Entry, error) {
	var entry Entry
	if err := r.ReadInto(entry.Account[:]); err != nil {
		return entry, err
	}
	id, err := r.ReadUint16()
	if err != nil {
		return entry, err
	}
	if entry.Flag, err = flags.Get(id); err != nil {
		return entry, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if entry.Amount, err = r.ReadUint64(); err != nil {
		return entry, err
	}
	asset, err := r.Next(types.AssetIDLength)
	if err != nil {
		return entry, err
	}
	entry.Asset = types.AssetIDFromPadded(asset)
	status, err := r.ReadUint8()
	if err != nil {
		return entry, err
	}
	switch status {
	case statusApplicable:
		entry.Applicable = true
	case statusNotApplicable:
	default:
		return entry, fmt.Errorf("%w: invalid status byte 0x%02x", ErrDecode, status)
	}
	return entry, nil
}
