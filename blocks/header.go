package blocks

import (
	"slices"

	"github.com/forwardblock/go-forwardblock/codec"
	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/transaction"
)

// Version is the only block version Decode supports.
const Version = 1

const headerSeparator byte = 0x00

// Header holds the fixed fields of a block, in wire order.
type Header struct {
	Version          uint8
	Timestamp        uint32
	PrevBlockID      types.Hash32
	TxCount          uint16
	TotalIn          uint64
	TotalOut         uint64
	TotalFee         uint64
	Forger           types.Address
	Signatures       []types.Signature
	Reward           uint64
	MerkleTx         types.Hash32
	MerkleTxReceipts types.Hash32
	// BodySize is the number of bytes following the header separator.
	BodySize uint32
}

func (h *Header) clone() Header {
	out := *h
	out.Signatures = slices.Clone(h.Signatures)
	return out
}

// encode writes the header and its separator. Signatures are replaced by a zero
// count when includeSignatures is false.
func (h *Header) encode(w *codec.Writer, includeSignatures bool) {
	w.WriteUint8(h.Version)
	w.WriteUint32(h.Timestamp)
	w.WriteBytes(h.PrevBlockID[:])
	w.WriteUint16(h.TxCount)
	w.WriteUint64(h.TotalIn)
	w.WriteUint64(h.TotalOut)
	w.WriteUint64(h.TotalFee)
	w.WriteBytes(h.Forger[:])
	if includeSignatures {
		w.WriteUint8(uint8(len(h.Signatures)))
		for _, sig := range h.Signatures {
			transaction.WriteSignature(w, sig)
		}
	} else {
		w.WriteUint8(0)
	}
	w.WriteUint64(h.Reward)
	w.WriteBytes(h.MerkleTx[:])
	w.WriteBytes(h.MerkleTxReceipts[:])
	w.WriteUint32(h.BodySize)
	w.WriteUint8(headerSeparator)
}
