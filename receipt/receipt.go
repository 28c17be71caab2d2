// Package receipt implements transaction receipts: the execution outcome of a transaction
// and the ledger entries it produced.
package receipt

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/forwardblock/go-forwardblock/codec"
	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/config"
	"github.com/forwardblock/go-forwardblock/hash"
	"github.com/forwardblock/go-forwardblock/ledger"
	"github.com/forwardblock/go-forwardblock/transaction"
)

var (
	// ErrDecode is returned for malformed receipts and receipts bound to another transaction.
	ErrDecode = errors.New("tx receipt decode")
	// ErrStatusNotSet is returned when serializing or hashing an unfinalised receipt.
	ErrStatusNotSet = fmt.Errorf("%w: tx receipt status not set", transaction.ErrEncode)
)

const statusUnset int32 = -1

// Generator is implemented by transaction flag handlers. GenerateLedgerEntries runs when a
// receipt is constructed. Apply and Undo are invoked by the state layer when the receipt
// is committed or rolled back.
type Generator interface {
	GenerateLedgerEntries(*Receipt) error
	Apply(*Receipt) error
	Undo(*Receipt) error
}

// Receipt is bound to exactly one transaction by its hash.
type Receipt struct {
	tx      *transaction.Transaction
	txHash  types.Hash32
	height  uint64
	status  int32
	data    []byte
	entries *ledger.Entries
	gen     Generator
}

// New builds a receipt for tx and runs the generator to produce its provisional ledger entries.
func New(cfg *config.Config, tx *transaction.Transaction, height uint64, gen Generator) (*Receipt, error) {
	txHash, err := tx.Hash(cfg)
	if err != nil {
		return nil, err
	}
	r := &Receipt{
		tx:      tx,
		txHash:  txHash,
		height:  height,
		status:  statusUnset,
		entries: ledger.NewEntries(cfg.MaxLedgerEntries),
		gen:     gen,
	}
	if err := gen.GenerateLedgerEntries(r); err != nil {
		return nil, fmt.Errorf("generate ledger entries: %w", err)
	}
	return r, nil
}

// Decode parses a receipt for tx. The receipt is first built through New, then its
// provisional ledger entries are replaced by the decoded ones.
func Decode(
	cfg *config.Config,
	flags ledger.FlagSource,
	tx *transaction.Transaction,
	height uint64,
	gen Generator,
	data []byte,
) (*Receipt, error) {
	r, err := New(cfg, tx, height, gen)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	rd := codec.NewReader(data)
	txHash, err := rd.First(types.Hash32Length)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if !bytes.Equal(txHash, r.txHash[:]) {
		return nil, fmt.Errorf("%w: receipt for tx 0x%s does not match transaction hash 0x%s",
			ErrDecode, hex.EncodeToString(txHash), r.txHash.Hex())
	}
	status, err := rd.ReadUint16()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	dataLen, err := rd.ReadUint8()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	payload, err := rd.Next(int(dataLen))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	entries, err := ledger.Decode(rd, flags, cfg.MaxLedgerEntries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if rd.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrDecode, rd.Remaining())
	}

	r.SetStatus(status)
	if dataLen > 0 {
		r.data = payload
	}
	r.entries = entries

	again, err := r.Serialize()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if !bytes.Equal(again, data) {
		return nil, fmt.Errorf("%w: non-canonical encoding", ErrDecode)
	}
	return r, nil
}

// Tx returns the transaction the receipt belongs to.
func (r *Receipt) Tx() *transaction.Transaction { return r.tx }

// TxHash returns the hash of the transaction the receipt belongs to.
func (r *Receipt) TxHash() types.Hash32 { return r.txHash }

// Height returns the block height the receipt was built for.
func (r *Receipt) Height() uint64 { return r.height }

// Status returns the status code, or -1 if it is not set.
func (r *Receipt) Status() int32 { return r.status }

// SetStatus finalises the receipt.
func (r *Receipt) SetStatus(code uint16) { r.status = int32(code) }

// IsFinalised reports whether the status is set.
func (r *Receipt) IsFinalised() bool { return r.status >= 0 }

// Data returns the opaque result data.
func (r *Receipt) Data() []byte { return r.data }

// SetData replaces the opaque result data.
func (r *Receipt) SetData(data []byte) { r.data = data }

// Entries returns the ledger entries.
func (r *Receipt) Entries() *ledger.Entries { return r.entries }

// AddBatch registers a batch of ledger entries.
func (r *Receipt) AddBatch(entries ...ledger.Entry) error {
	return r.entries.AddBatch(entries...)
}

// Apply runs the handler hook that commits the receipt's effects.
func (r *Receipt) Apply() error {
	return r.gen.Apply(r)
}

// Undo runs the handler hook that rolls back the receipt's effects.
func (r *Receipt) Undo() error {
	return r.gen.Undo(r)
}

// header writes txHash || status || dataLen || data.
func (r *Receipt) header(w *codec.Writer) error {
	if !r.IsFinalised() {
		return ErrStatusNotSet
	}
	if len(r.data) > types.MaxReceiptData {
		return fmt.Errorf("%w: tx receipt data cannot exceed %d bytes", transaction.ErrEncode, types.MaxReceiptData)
	}
	w.WriteBytes(r.txHash[:])
	w.WriteUint16(uint16(r.status))
	w.WriteUint8(uint8(len(r.data)))
	w.WriteBytes(r.data)
	return nil
}

// Serialize returns txHash || status || dataLen || data || serialized batches.
func (r *Receipt) Serialize() ([]byte, error) {
	w := codec.NewWriter()
	if err := r.header(w); err != nil {
		return nil, err
	}
	if err := r.entries.Encode(w); err != nil {
		return nil, fmt.Errorf("%w: %w", transaction.ErrEncode, err)
	}
	return w.Bytes()
}

// LedgerEntriesHash returns hash256(txHash || serialized batches).
func (r *Receipt) LedgerEntriesHash() (types.Hash32, error) {
	if !r.IsFinalised() {
		return types.Hash32{}, ErrStatusNotSet
	}
	batches, err := r.entries.SerializedBatches()
	if err != nil {
		return types.Hash32{}, fmt.Errorf("%w: %w", transaction.ErrEncode, err)
	}
	return hash.Hash256(r.txHash[:], batches), nil
}

// Hash returns hash256(txHash || status || dataLen || data || ledgerEntriesHash).
func (r *Receipt) Hash() (types.Hash32, error) {
	w := codec.NewWriter()
	if err := r.header(w); err != nil {
		return types.Hash32{}, err
	}
	entriesHash, err := r.LedgerEntriesHash()
	if err != nil {
		return types.Hash32{}, err
	}
	w.WriteBytes(entriesHash[:])
	raw, err := w.Bytes()
	if err != nil {
		return types.Hash32{}, err
	}
	return hash.Hash256(raw), nil
}

// Equal reports whether both receipts carry the same commitment fields.
func (r *Receipt) Equal(o *Receipt) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.txHash == o.txHash &&
		r.status == o.status &&
		bytes.Equal(r.data, o.data) &&
		r.entries.Equal(o.entries)
}

// Dump is the display form of a receipt.
type Dump struct {
	TxHash        string      `json:"txHash"`
	Status        int32       `json:"status"`
	Data          string      `json:"data"`
	LedgerEntries ledger.Dump `json:"ledgerEntries"`
}

// Dump returns the display form of the receipt.
func (r *Receipt) Dump() Dump {
	return Dump{
		TxHash:        r.txHash.Hex(),
		Status:        r.status,
		Data:          hex.EncodeToString(r.data),
		LedgerEntries: r.entries.Dump(),
	}
}
