// Package transfer is the handler of plain asset transfers between two accounts.
package transfer

import (
	"errors"
	"fmt"

	"github.com/forwardblock/go-forwardblock/config"
	"github.com/forwardblock/go-forwardblock/core"
	"github.com/forwardblock/go-forwardblock/ledger"
	"github.com/forwardblock/go-forwardblock/receipt"
	"github.com/forwardblock/go-forwardblock/registry"
	"github.com/forwardblock/go-forwardblock/transaction"
)

// Flag is the transaction flag of transfers.
var Flag = core.TxFlag{ID: 1, Name: "transfer"}

// Ledger flags produced by transfers.
var (
	Debit  = ledger.Flag{ID: 1, Name: "debit"}
	Credit = ledger.Flag{ID: 2, Name: "credit"}
	Fee    = ledger.Flag{ID: 3, Name: "fee"}
)

// Receipt status codes set by Apply.
const (
	StatusApplied uint16 = 0
	StatusFailed  uint16 = 1
)

var (
	// ErrMissingParty is returned for transfers without sender or recipient.
	ErrMissingParty = errors.New("transfer needs a sender and a recipient")
	// ErrNoTransfers is returned for transactions that move nothing.
	ErrNoTransfers = errors.New("transfer has no asset transfers")
)

// State applies ledger entries to account balances.
type State interface {
	ApplyEntry(height uint64, entry ledger.Entry) error
	RevertEntry(height uint64, entry ledger.Entry) error
}

// Register transfer handler and its ledger flags.
func Register(reg *registry.Registry, h *Handler) error {
	if err := reg.RegisterLedgerFlags(Debit, Credit, Fee); err != nil {
		return err
	}
	return reg.Register(h)
}

// Opt configures Handler.
type Opt func(*Handler)

// WithState sets the state the receipts are applied to.
func WithState(state State) Opt {
	return func(h *Handler) {
		h.state = state
	}
}

// Handler implements core.Handler for Flag.
type Handler struct {
	cfg   *config.Config
	state State
}

// New returns a transfer handler.
func New(cfg *config.Config, opts ...Opt) *Handler {
	h := &Handler{cfg: cfg}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Flag returns the transfer flag.
func (h *Handler) Flag() core.TxFlag {
	return Flag
}

// NewReceipt builds the provisional receipt of tx.
func (h *Handler) NewReceipt(tx *transaction.Transaction, height uint64) (*receipt.Receipt, error) {
	return receipt.New(h.cfg, tx, height, h)
}

// DecodeReceipt parses the receipt of tx.
func (h *Handler) DecodeReceipt(
	flags ledger.FlagSource,
	tx *transaction.Transaction,
	data []byte,
	height uint64,
) (*receipt.Receipt, error) {
	return receipt.Decode(h.cfg, flags, tx, height, h, data)
}

// GenerateLedgerEntries emits a debit/credit batch per transfer, then a fee batch.
func (h *Handler) GenerateLedgerEntries(r *receipt.Receipt) error {
	tx := r.Tx()
	if tx.Sender == nil || tx.Recipient == nil {
		return ErrMissingParty
	}
	if len(tx.Transfers) == 0 {
		return ErrNoTransfers
	}
	for _, tr := range tx.Transfers {
		err := r.AddBatch(
			ledger.NewEntry(Debit, *tx.Sender, tr.Amount, tr.Asset),
			ledger.NewEntry(Credit, *tx.Recipient, tr.Amount, tr.Asset),
		)
		if err != nil {
			return fmt.Errorf("transfer of %s: %w", tr.Asset, err)
		}
	}
	if tx.Fee > 0 {
		if err := r.AddBatch(ledger.NewEntry(Fee, *tx.Sender, tx.Fee, "")); err != nil {
			return fmt.Errorf("fee: %w", err)
		}
	}
	return nil
}

// Apply applies every applicable entry in order and finalises the receipt.
// On failure the entries applied so far are reverted and the receipt is marked failed.
func (h *Handler) Apply(r *receipt.Receipt) error {
	if h.state == nil {
		r.SetStatus(StatusApplied)
		return nil
	}
	var applied []ledger.Entry
	for _, batch := range r.Entries().Batches() {
		for _, entry := range batch {
			if !entry.Applicable {
				continue
			}
			if err := h.state.ApplyEntry(r.Height(), entry); err != nil {
				r.SetStatus(StatusFailed)
				if rerr := h.revert(r.Height(), applied); rerr != nil {
					return errors.Join(err, rerr)
				}
				return err
			}
			applied = append(applied, entry)
		}
	}
	r.SetStatus(StatusApplied)
	return nil
}

// Undo reverts every applicable entry in reverse order.
func (h *Handler) Undo(r *receipt.Receipt) error {
	if h.state == nil {
		return nil
	}
	var entries []ledger.Entry
	for _, batch := range r.Entries().Batches() {
		for _, entry := range batch {
			if entry.Applicable {
				entries = append(entries, entry)
			}
		}
	}
	return h.revert(r.Height(), entries)
}

func (h *Handler) revert(height uint64, entries []ledger.Entry) error {
	for i := len(entries) - 1; i >= 0; i-- {
		if err := h.state.RevertEntry(height, entries[i]); err != nil {
			return fmt.Errorf("revert entry %d: %w", i, err)
		}
	}
	return nil
}

var _ core.Handler = (*Handler)(nil)
