// Package transaction implements the canonical transaction encoding and its signing pre-image.
package transaction

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/forwardblock/go-forwardblock/codec"
	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/config"
	"github.com/forwardblock/go-forwardblock/hash"
	"github.com/forwardblock/go-forwardblock/validator"
)

var (
	// ErrEncode is returned when a transaction violates a serialization precondition.
	ErrEncode = errors.New("tx encode")
	// ErrDecode is returned for malformed serialized transactions.
	ErrDecode = errors.New("tx decode")
)

const (
	absent  byte = 0x00
	present byte = 0x01
)

// Transfer moves Amount of Asset from the sender to the recipient.
type Transfer struct {
	Asset  types.AssetID
	Amount uint64
}

// Transaction is the protocol transaction. The zero value of optional fields
// (nil sender/recipient, empty memo/data, native asset) encodes as absent.
type Transaction struct {
	Version    uint8
	Flag       uint16
	Sender     *types.Address
	Nonce      uint32
	Recipient  *types.Address
	Memo       string
	Transfers  []Transfer
	Data       []byte
	Signatures []types.Signature
	Fee        uint64
	Timestamp  uint32
}

// Serialize returns the canonical encoding. Signatures are replaced by a zero count
// when includeSignatures is false.
func (t *Transaction) Serialize(cfg *config.Config, includeSignatures bool) ([]byte, error) {
	w := codec.NewWriter()
	if err := t.encode(cfg, w, includeSignatures); err != nil {
		return nil, err
	}
	return w.Bytes()
}

func (t *Transaction) encode(cfg *config.Config, w *codec.Writer, includeSignatures bool) error {
	w.WriteUint8(t.Version)
	w.WriteUint16(t.Flag)
	writeOptionalAddress(w, t.Sender)
	w.WriteUint32(t.Nonce)
	writeOptionalAddress(w, t.Recipient)

	memo, err := validator.ValidatedMemo(t.Memo, cfg.MaxMemoLength)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}
	w.WriteUint8(uint8(len(memo)))
	w.WriteBytes([]byte(memo))

	if len(t.Transfers) > types.MaxTransfers {
		return fmt.Errorf("%w: transaction cannot have more than %d asset transfers", ErrEncode, types.MaxTransfers)
	}
	w.WriteUint8(uint8(len(t.Transfers)))
	if len(t.Transfers) > 0 {
		if t.Recipient == nil {
			return fmt.Errorf("%w: transaction with no recipient cannot have transfers", ErrEncode)
		}
		if err := encodeTransfers(w, t.Transfers); err != nil {
			return err
		}
	}

	if len(t.Data) > cfg.MaxArbitraryData {
		return fmt.Errorf("%w: arbitrary data of size %d bytes exceeds limit of %d bytes",
			ErrEncode, len(t.Data), cfg.MaxArbitraryData)
	}
	w.WriteUint16(uint16(len(t.Data)))
	w.WriteBytes(t.Data)

	if includeSignatures {
		if len(t.Signatures) > types.MaxSignatures {
			return fmt.Errorf("%w: transaction cannot have more than %d signatures", ErrEncode, types.MaxSignatures)
		}
		w.WriteUint8(uint8(len(t.Signatures)))
		for _, sig := range t.Signatures {
			WriteSignature(w, sig)
		}
	} else {
		w.WriteUint8(0)
	}

	w.WriteUint64(t.Fee)
	w.WriteUint32(t.Timestamp)
	return nil
}

func encodeTransfers(w *codec.Writer, transfers []Transfer) error {
	seen := make(map[types.AssetID]struct{}, len(transfers))
	for _, tr := range transfers {
		if _, ok := seen[tr.Asset]; ok {
			return fmt.Errorf("%w: duplicate transfer of asset %s", ErrEncode, tr.Asset)
		}
		seen[tr.Asset] = struct{}{}
		w.WriteUint64(tr.Amount)
		if tr.Asset.IsNative() {
			w.WriteUint8(absent)
			continue
		}
		padded, err := tr.Asset.LeftPadded()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEncode, err)
		}
		w.WriteUint8(present)
		w.WriteBytes(padded[:])
	}
	return nil
}

func writeOptionalAddress(w *codec.Writer, addr *types.Address) {
	if addr == nil {
		w.WriteUint8(absent)
		return
	}
	w.WriteUint8(present)
	w.WriteBytes(addr[:])
}

// WriteSignature appends r, s and v.
func WriteSignature(w *codec.Writer, sig types.Signature) {
	w.WriteBytes(sig.R[:])
	w.WriteBytes(sig.S[:])
	w.WriteUint8(sig.V)
}

// Hash returns hash256 of the full encoding, signatures included.
func (t *Transaction) Hash(cfg *config.Config) (types.Hash32, error) {
	raw, err := t.Serialize(cfg, true)
	if err != nil {
		return types.Hash32{}, err
	}
	return hash.Hash256(raw), nil
}

// TotalAmount returns the sum transferred for an asset.
func (t *Transaction) TotalAmount(asset types.AssetID) uint64 {
	var total uint64
	for _, tr := range t.Transfers {
		if tr.Asset == asset {
			total += tr.Amount
		}
	}
	return total
}

// Decode parses a transaction encoded with signatures. The encoding must be canonical:
// re-serializing the result yields the input bytes.
func Decode(cfg *config.Config, raw []byte) (*Transaction, error) {
	r := codec.NewReader(raw)
	tx, err := decode(cfg, r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if r.Remaining() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrDecode, r.Remaining())
	}
	again, err := tx.Serialize(cfg, true)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if !bytes.Equal(again, raw) {
		return nil, fmt.Errorf("%w: non-canonical encoding", ErrDecode)
	}
	return tx, nil
}

func decode(cfg *config.Config, r *codec.Reader) (*Transaction, error) {
	var (
		tx  Transaction
		err error
	)
	if tx.Version, err = r.ReadUint8(); err != nil {
		return nil, err
	}
	if tx.Flag, err = r.ReadUint16(); err != nil {
		return nil, err
	}
	if tx.Sender, err = readOptionalAddress(r); err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	if tx.Nonce, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	if tx.Recipient, err = readOptionalAddress(r); err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}

	memoLen, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if int(memoLen) > cfg.MaxMemoLength {
		return nil, fmt.Errorf("memo of %d bytes exceeds %d", memoLen, cfg.MaxMemoLength)
	}
	memo, err := r.Next(int(memoLen))
	if err != nil {
		return nil, err
	}
	if tx.Memo, err = validator.ValidatedMemo(string(memo), cfg.MaxMemoLength); err != nil {
		return nil, err
	}

	transfers, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if transfers > types.MaxTransfers {
		return nil, fmt.Errorf("%d transfers exceed %d", transfers, types.MaxTransfers)
	}
	if transfers > 0 && tx.Recipient == nil {
		return nil, errors.New("transfers without recipient")
	}
	for i := 0; i < int(transfers); i++ {
		tr, err := readTransfer(r)
		if err != nil {
			return nil, fmt.Errorf("transfer %d: %w", i, err)
		}
		tx.Transfers = append(tx.Transfers, tr)
	}

	dataLen, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	if int(dataLen) > cfg.MaxArbitraryData {
		return nil, fmt.Errorf("arbitrary data of %d bytes exceeds %d", dataLen, cfg.MaxArbitraryData)
	}
	if dataLen > 0 {
		if tx.Data, err = r.Next(int(dataLen)); err != nil {
			return nil, err
		}
	}

	sigs, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if sigs > types.MaxSignatures {
		return nil, fmt.Errorf("%d signatures exceed %d", sigs, types.MaxSignatures)
	}
	for i := 0; i < int(sigs); i++ {
		sig, err := ReadSignature(r)
		if err != nil {
			return nil, fmt.Errorf("signature %d: %w", i, err)
		}
		tx.Signatures = append(tx.Signatures, sig)
	}

	if tx.Fee, err = r.ReadUint64(); err != nil {
		return nil, err
	}
	if tx.Timestamp, err = r.ReadUint32(); err != nil {
		return nil, err
	}
	return &tx, nil
}

func readOptionalAddress(r *codec.Reader) (*types.Address, error) {
	flag, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	switch flag {
	case absent:
		return nil, nil
	case present:
		var addr types.Address
		if err := r.ReadInto(addr[:]); err != nil {
			return nil, err
		}
		return &addr, nil
	default:
		return nil, fmt.Errorf("invalid presence byte 0x%02x", flag)
	}
}

func readTransfer(r *codec.Reader) (Transfer, error) {
	var (
		tr  Transfer
		err error
	)
	if tr.Amount, err = r.ReadUint64(); err != nil {
		return tr, err
	}
	flag, err := r.ReadUint8()
	if err != nil {
		return tr, err
	}
	switch flag {
	case absent:
	case present:
		asset, err := r.Next(types.AssetIDLength)
		if err != nil {
			return tr, err
		}
		tr.Asset = types.AssetIDFromPadded(asset)
		if tr.Asset.IsNative() {
			return tr, errors.New("empty asset id")
		}
	default:
		return tr, fmt.Errorf("invalid asset presence byte 0x%02x", flag)
	}
	return tr, nil
}

// ReadSignature reads r, s and v.
func ReadSignature(r *codec.Reader) (types.Signature, error) {
	var sig types.Signature
	if err := r.ReadInto(sig.R[:]); err != nil {
		return sig, err
	}
	if err := r.ReadInto(sig.S[:]); err != nil {
		return sig, err
	}
	v, err := r.ReadUint8()
	if err != nil {
		return sig, err
	}
	sig.V = v
	return sig, nil
}
