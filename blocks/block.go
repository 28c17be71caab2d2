// Package blocks implements the block wire format: decoding untrusted blocks and
// forging new ones.
package blocks

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/forwardblock/go-forwardblock/codec"
	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/core"
	"github.com/forwardblock/go-forwardblock/hash"
	"github.com/forwardblock/go-forwardblock/merkle"
	"github.com/forwardblock/go-forwardblock/metrics"
	"github.com/forwardblock/go-forwardblock/receipt"
	"github.com/forwardblock/go-forwardblock/transaction"
	"github.com/forwardblock/go-forwardblock/validator"
)

// Block is a decoded block. It is immutable: accessors return copies of mutable state.
type Block struct {
	header      Header
	hash        types.Hash32
	raw         []byte
	txs         []*transaction.Transaction
	receipts    []*receipt.Receipt
	rawTxs      [][]byte
	rawReceipts [][]byte
}

// Hash returns hash256 of the encoded block.
func (b *Block) Hash() types.Hash32 { return b.hash }

// Raw returns the encoded block.
func (b *Block) Raw() []byte { return append([]byte(nil), b.raw...) }

// Header returns a copy of the block header.
func (b *Block) Header() Header { return b.header.clone() }

// Transactions returns the block transactions in order.
func (b *Block) Transactions() []*transaction.Transaction {
	return append([]*transaction.Transaction(nil), b.txs...)
}

// Receipts returns the receipts, index-aligned with Transactions.
func (b *Block) Receipts() []*receipt.Receipt {
	return append([]*receipt.Receipt(nil), b.receipts...)
}

// Decode parses raw as a block at height. Every failure after the size check is an
// *IncompleteError carrying the hash of raw.
func Decode(p *core.Protocol, raw []byte, height uint64) (*Block, error) {
	start := time.Now()
	b, err := decode(p, raw, height)
	switch {
	case err == nil:
		decodeOkCnt.Inc()
		metrics.ObserveSince(decodeLatency, start)
	case errors.Is(err, ErrTooLarge):
		decodeTooLargeCnt.Inc()
	default:
		decodeIncompleteCnt.Inc()
	}
	return b, err
}

type decoder struct {
	p      *core.Protocol
	r      *codec.Reader
	b      *Block
	height uint64
}

func (d *decoder) fail(step, detail string, err error) error {
	return &IncompleteError{Hash: d.b.hash, Step: step, Detail: detail, Err: err}
}

func decode(p *core.Protocol, raw []byte, height uint64) (*Block, error) {
	if len(raw) > p.Config.MaxBlockSize {
		return nil, fmt.Errorf("%w: encoded block of %d bytes exceeds limit of %d bytes",
			ErrTooLarge, len(raw), p.Config.MaxBlockSize)
	}
	d := &decoder{
		p: p,
		r: codec.NewReader(raw),
		b: &Block{
			hash: hash.Hash256(raw),
			raw:  append([]byte(nil), raw...),
		},
		height: height,
	}
	version, err := d.r.ReadUint8()
	if err != nil {
		return nil, d.fail("version", "missing version", err)
	}
	d.b.header.Version = version
	switch version {
	case Version:
		if err := d.decodeV1(); err != nil {
			return nil, err
		}
	default:
		return nil, d.fail("version", fmt.Sprintf("version %d", version), ErrUnsupportedVersion)
	}
	return d.b, nil
}

func (d *decoder) decodeV1() error {
	h := &d.b.header
	var err error

	if h.Timestamp, err = d.r.ReadUint32(); err != nil {
		return d.fail("timestamp", "read", err)
	}
	if !validator.IsValidEpoch(int64(h.Timestamp)) {
		return d.fail("timestamp", "invalid timestamp", nil)
	}
	if err := d.r.ReadInto(h.PrevBlockID[:]); err != nil {
		return d.fail("prevBlockId", "read", err)
	}
	if h.TxCount, err = d.r.ReadUint16(); err != nil {
		return d.fail("txCount", "read", err)
	}
	if h.TotalIn, err = d.r.ReadUint64(); err != nil {
		return d.fail("totalIn", "read", err)
	}
	if h.TotalOut, err = d.r.ReadUint64(); err != nil {
		return d.fail("totalOut", "read", err)
	}
	if h.TotalFee, err = d.r.ReadUint64(); err != nil {
		return d.fail("totalFee", "read", err)
	}
	if err := d.r.ReadInto(h.Forger[:]); err != nil {
		return d.fail("forger", "read", err)
	}
	if err := d.decodeSignatures(); err != nil {
		return err
	}
	if h.Reward, err = d.r.ReadUint64(); err != nil {
		return d.fail("reward", "read", err)
	}
	if err := d.r.ReadInto(h.MerkleTx[:]); err != nil {
		return d.fail("merkleTx", "read", err)
	}
	if err := d.r.ReadInto(h.MerkleTxReceipts[:]); err != nil {
		return d.fail("merkleTxReceipts", "read", err)
	}
	if h.TxCount == 0 {
		if !h.MerkleTx.IsEmpty() {
			return d.fail("merkleTx", "root must be all zero bytes with txCount 0", nil)
		}
		if !h.MerkleTxReceipts.IsEmpty() {
			return d.fail("merkleTxReceipts", "root must be all zero bytes with txCount 0", nil)
		}
	}
	if h.BodySize, err = d.r.ReadUint32(); err != nil {
		return d.fail("bodySize", "read", err)
	}
	sep, err := d.r.ReadUint8()
	if err != nil {
		return d.fail("separator", "read", err)
	}
	if sep != headerSeparator {
		return d.fail("separator", "invalid block headers separator", nil)
	}

	bodyStart := d.r.Offset()
	for i := range int(h.TxCount) {
		if err := d.decodeTx(i); err != nil {
			return err
		}
	}
	if d.r.Remaining() != 0 {
		return d.fail("body", fmt.Sprintf("%d excess bytes", d.r.Remaining()), nil)
	}
	if body := d.r.Offset() - bodyStart; uint64(body) != uint64(h.BodySize) {
		return d.fail("bodySize", fmt.Sprintf("declared %d, got %d", h.BodySize, body), nil)
	}
	if h.TxCount > 0 {
		return d.verifyMerkleRoots()
	}
	return nil
}

func (d *decoder) decodeSignatures() error {
	count, err := d.r.ReadUint8()
	if err != nil {
		return d.fail("signatures", "read count", err)
	}
	if int(count) > types.MaxSignatures {
		return d.fail("signatures", fmt.Sprintf("blocks cannot have more than %d signatures", types.MaxSignatures), nil)
	}
	for i := range int(count) {
		sig, err := transaction.ReadSignature(d.r)
		if err != nil {
			return d.fail("signatures", fmt.Sprintf("signature %d", i), err)
		}
		d.b.header.Signatures = append(d.b.header.Signatures, sig)
	}
	return nil
}

func (d *decoder) decodeTx(i int) error {
	rawTx, err := d.readChunk()
	if err != nil {
		return d.fail("transactions", fmt.Sprintf("transaction length at index %d", i), err)
	}
	tx, err := transaction.Decode(d.p.Config, rawTx)
	if err != nil {
		d.p.Suppressed("decode block transaction", err,
			zap.Stringer("block", d.b.hash),
			zap.Int("index", i),
		)
		return d.fail("transactions", fmt.Sprintf("failed to decode transaction at index %d", i), nil)
	}
	d.b.rawTxs = append(d.b.rawTxs, rawTx)
	d.b.txs = append(d.b.txs, tx)

	rawReceipt, err := d.readChunk()
	if err != nil {
		return d.fail("receipts", fmt.Sprintf("receipt length at index %d", i), err)
	}
	rcpt, err := d.decodeReceipt(tx, rawReceipt)
	if err != nil {
		d.p.Suppressed("decode block receipt", err,
			zap.Stringer("block", d.b.hash),
			zap.Int("index", i),
		)
		return d.fail("receipts", fmt.Sprintf("failed to decode tx receipt at index %d", i), nil)
	}
	d.b.rawReceipts = append(d.b.rawReceipts, rawReceipt)
	d.b.receipts = append(d.b.receipts, rcpt)
	return nil
}

func (d *decoder) readChunk() ([]byte, error) {
	size, err := d.r.ReadUint16()
	if err != nil {
		return nil, err
	}
	return d.r.Next(int(size))
}

func (d *decoder) decodeReceipt(tx *transaction.Transaction, raw []byte) (*receipt.Receipt, error) {
	handler, err := d.p.Flags.Get(tx.Flag)
	if err != nil {
		return nil, err
	}
	return handler.DecodeReceipt(d.p.Flags.LedgerFlags(), tx, raw, d.height)
}

func (d *decoder) verifyMerkleRoots() error {
	txRoot, receiptRoot, err := merkleRoots(d.b.rawTxs, d.b.receipts)
	if err != nil {
		d.p.Suppressed("merkle roots", err, zap.Stringer("block", d.b.hash))
		return d.fail("merkle", "cannot compute merkle roots", nil)
	}
	if txRoot != d.b.header.MerkleTx {
		return d.fail("merkleTx", "root mismatch", nil)
	}
	if receiptRoot != d.b.header.MerkleTxReceipts {
		return d.fail("merkleTxReceipts", "root mismatch", nil)
	}
	return nil
}

// merkleRoots returns the roots over transaction hashes and receipt hashes.
func merkleRoots(rawTxs [][]byte, receipts []*receipt.Receipt) (types.Hash32, types.Hash32, error) {
	txHashes := make([]types.Hash32, len(rawTxs))
	for i, raw := range rawTxs {
		txHashes[i] = hash.Hash256(raw)
	}
	receiptHashes := make([]types.Hash32, len(receipts))
	for i, r := range receipts {
		h, err := r.Hash()
		if err != nil {
			return types.Hash32{}, types.Hash32{}, fmt.Errorf("receipt %d: %w", i, err)
		}
		receiptHashes[i] = h
	}
	txRoot, err := merkle.Root(txHashes)
	if err != nil {
		return types.Hash32{}, types.Hash32{}, err
	}
	receiptRoot, err := merkle.Root(receiptHashes)
	if err != nil {
		return types.Hash32{}, types.Hash32{}, err
	}
	return txRoot, receiptRoot, nil
}
