package blocks

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/forwardblock/go-forwardblock/codec"
	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/core"
	"github.com/forwardblock/go-forwardblock/hash"
	"github.com/forwardblock/go-forwardblock/receipt"
	"github.com/forwardblock/go-forwardblock/signing"
	"github.com/forwardblock/go-forwardblock/transaction"
	"github.com/forwardblock/go-forwardblock/txs"
	"github.com/forwardblock/go-forwardblock/validator"
)

// ForgeOpt configures a Forge.
type ForgeOpt func(*Forge)

// WithOnConstruct registers a hook run at the end of NewForge, e.g. to append the
// reward transaction every block starts with.
func WithOnConstruct(fn func(*Forge) error) ForgeOpt {
	return func(f *Forge) {
		f.onConstruct = fn
	}
}

// Forge builds a block. It is open until Serialize(true) or Block is called,
// after which every mutation fails with ErrSealed.
type Forge struct {
	p           *core.Protocol
	header      Header
	forgerKey   *signing.PublicKey
	txs         []*transaction.Transaction
	receipts    []*receipt.Receipt
	sealed      bool
	onConstruct func(*Forge) error
}

// NewForge starts a block on top of prevBlock.
func NewForge(p *core.Protocol, prevBlock []byte, version int, epoch int64, opts ...ForgeOpt) (*Forge, error) {
	if len(prevBlock) != types.Hash32Length {
		return nil, fmt.Errorf("%w: previous block hash must be precisely %d bytes", ErrForge, types.Hash32Length)
	}
	if version < 0 || version > math.MaxUint8 {
		return nil, fmt.Errorf("%w: invalid block version %d", ErrForge, version)
	}
	if !validator.IsValidEpoch(epoch) {
		return nil, fmt.Errorf("%w: invalid timestamp %d", ErrForge, epoch)
	}
	f := &Forge{
		p: p,
		header: Header{
			Version:     uint8(version),
			Timestamp:   uint32(epoch),
			PrevBlockID: types.BytesToHash32(prevBlock),
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.onConstruct != nil {
		if err := f.onConstruct(f); err != nil {
			return nil, fmt.Errorf("%w: on construct: %w", ErrForge, err)
		}
	}
	return f, nil
}

// Forger sets the key whose hash160 is committed as the block forger.
func (f *Forge) Forger(pub *signing.PublicKey) error {
	if f.sealed {
		return ErrSealed
	}
	f.forgerKey = pub
	return nil
}

// AddSignature appends a block signature.
func (f *Forge) AddSignature(sig types.Signature) error {
	if f.sealed {
		return ErrSealed
	}
	if len(f.header.Signatures) >= types.MaxSignatures {
		return fmt.Errorf("%w: cannot add more than %d signatures", ErrForge, types.MaxSignatures)
	}
	f.header.Signatures = append(f.header.Signatures, sig)
	return nil
}

// AppendCheckedTx appends the transaction and its receipt, and adds the
// transaction fee to the block total.
func (f *Forge) AppendCheckedTx(tx *txs.CheckedTx) error {
	if f.sealed {
		return ErrSealed
	}
	if tx == nil || tx.Tx == nil || tx.Receipt == nil {
		return fmt.Errorf("%w: checked transaction without receipt", ErrForge)
	}
	if len(f.txs) >= math.MaxUint16 {
		return fmt.Errorf("%w: block cannot have more than %d transactions", ErrForge, math.MaxUint16)
	}
	fee, carry := bits.Add64(f.header.TotalFee, tx.Tx.Fee, 0)
	if carry != 0 {
		return fmt.Errorf("%w: total fee overflows", ErrForge)
	}
	f.txs = append(f.txs, tx.Tx)
	f.receipts = append(f.receipts, tx.Receipt)
	f.header.TxCount = uint16(len(f.txs))
	f.header.TotalFee = fee
	return nil
}

// SetTotals sets the aggregate amounts moved by the block.
func (f *Forge) SetTotals(totalIn, totalOut uint64) error {
	if f.sealed {
		return ErrSealed
	}
	f.header.TotalIn = totalIn
	f.header.TotalOut = totalOut
	return nil
}

// SetReward sets the forger reward.
func (f *Forge) SetReward(reward uint64) error {
	if f.sealed {
		return ErrSealed
	}
	f.header.Reward = reward
	return nil
}

// TxCount returns the number of appended transactions.
func (f *Forge) TxCount() int { return len(f.txs) }

// Sealed reports whether the forge accepts no more changes.
func (f *Forge) Sealed() bool { return f.sealed }

// Serialize encodes the block. With includeSignatures the forge is sealed; without
// them the result is the pre-image signers commit to.
func (f *Forge) Serialize(includeSignatures bool) ([]byte, error) {
	raw, _, _, err := f.encode(includeSignatures)
	if err != nil {
		return nil, err
	}
	if includeSignatures {
		f.sealed = true
	}
	return raw, nil
}

// SigningHash returns hash256 of the block encoded without signatures.
func (f *Forge) SigningHash() (types.Hash32, error) {
	raw, err := f.Serialize(false)
	if err != nil {
		return types.Hash32{}, err
	}
	return hash.Hash256(raw), nil
}

// Block seals the forge and returns the finished block.
func (f *Forge) Block() (*Block, error) {
	raw, rawTxs, rawReceipts, err := f.encode(true)
	if err != nil {
		return nil, err
	}
	f.sealed = true
	return &Block{
		header:      f.header.clone(),
		hash:        hash.Hash256(raw),
		raw:         raw,
		txs:         append([]*transaction.Transaction(nil), f.txs...),
		receipts:    append([]*receipt.Receipt(nil), f.receipts...),
		rawTxs:      rawTxs,
		rawReceipts: rawReceipts,
	}, nil
}

// encode refreshes the forger and merkle roots from the live containers and
// returns the block with the encodings of its transactions and receipts.
func (f *Forge) encode(includeSignatures bool) ([]byte, [][]byte, [][]byte, error) {
	if f.forgerKey == nil {
		return nil, nil, nil, fmt.Errorf("%w: forger is not set", ErrForge)
	}
	if len(f.txs) != len(f.receipts) || len(f.txs) != int(f.header.TxCount) {
		return nil, nil, nil, fmt.Errorf("%w: %d transactions, %d receipts, count %d",
			ErrForge, len(f.txs), len(f.receipts), f.header.TxCount)
	}

	body := codec.NewWriter()
	rawTxs := make([][]byte, 0, len(f.txs))
	rawReceipts := make([][]byte, 0, len(f.receipts))
	for i, tx := range f.txs {
		rawTx, err := tx.Serialize(f.p.Config, true)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		rawReceipt, err := f.receipts[i].Serialize()
		if err != nil {
			return nil, nil, nil, fmt.Errorf("receipt %d: %w", i, err)
		}
		if err := writeChunk(body, rawTx); err != nil {
			return nil, nil, nil, fmt.Errorf("transaction %d: %w", i, err)
		}
		if err := writeChunk(body, rawReceipt); err != nil {
			return nil, nil, nil, fmt.Errorf("receipt %d: %w", i, err)
		}
		rawTxs = append(rawTxs, rawTx)
		rawReceipts = append(rawReceipts, rawReceipt)
	}
	bodyBytes, err := body.Bytes()
	if err != nil {
		return nil, nil, nil, err
	}

	f.header.Forger = f.forgerKey.Address()
	f.header.MerkleTx, f.header.MerkleTxReceipts, err = merkleRoots(rawTxs, f.receipts)
	if err != nil {
		return nil, nil, nil, err
	}
	f.header.BodySize = uint32(len(bodyBytes))

	w := codec.NewWriter()
	f.header.encode(w, includeSignatures)
	w.WriteBytes(bodyBytes)
	raw, err := w.Bytes()
	if err != nil {
		return nil, nil, nil, err
	}
	if len(raw) > f.p.Config.MaxBlockSize {
		return nil, nil, nil, fmt.Errorf("%w: encoded block of %d bytes exceeds limit of %d bytes",
			ErrForge, len(raw), f.p.Config.MaxBlockSize)
	}
	return raw, rawTxs, rawReceipts, nil
}

func writeChunk(w *codec.Writer, chunk []byte) error {
	if len(chunk) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes do not fit a 2-byte length", ErrForge, len(chunk))
	}
	w.WriteUint16(uint16(len(chunk)))
	w.WriteBytes(chunk)
	return nil
}
