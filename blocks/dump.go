package blocks

import (
	"encoding/hex"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/hash"
)

// TxDump is the display form of a block transaction. Tx and Receipt hold hex
// encodings in raw mode and decoded dumps otherwise.
type TxDump struct {
	Hash    string `json:"hash"`
	Tx      any    `json:"tx"`
	Receipt any    `json:"receipt"`
}

// Dump is the display form of a block.
type Dump struct {
	Hash             string                `json:"hash"`
	Version          uint8                 `json:"version"`
	Timestamp        uint32                `json:"timeStamp"`
	PrevBlockID      string                `json:"prevBlockId"`
	TxCount          uint16                `json:"txCount"`
	TotalIn          uint64                `json:"totalIn"`
	TotalOut         uint64                `json:"totalOut"`
	TotalFee         uint64                `json:"totalFee"`
	Forger           string                `json:"forger"`
	Reward           uint64                `json:"reward"`
	MerkleTx         string                `json:"merkleTx"`
	MerkleTxReceipts string                `json:"merkleTxReceipts"`
	BodySize         uint32                `json:"bodySize"`
	Signatures       []types.SignatureJSON `json:"signs,omitempty"`
	Transactions     []TxDump              `json:"transactions"`
}

// Dump returns the display form of the block. With raw set, transactions and
// receipts are shown as their hex encodings.
func (b *Block) Dump(raw bool) Dump {
	h := &b.header
	d := Dump{
		Hash:             b.hash.Hex(),
		Version:          h.Version,
		Timestamp:        h.Timestamp,
		PrevBlockID:      h.PrevBlockID.Hex(),
		TxCount:          h.TxCount,
		TotalIn:          h.TotalIn,
		TotalOut:         h.TotalOut,
		TotalFee:         h.TotalFee,
		Forger:           h.Forger.Hex(),
		Reward:           h.Reward,
		MerkleTx:         h.MerkleTx.Hex(),
		MerkleTxReceipts: h.MerkleTxReceipts.Hex(),
		BodySize:         h.BodySize,
		Transactions:     make([]TxDump, 0, len(b.txs)),
	}
	for _, sig := range h.Signatures {
		d.Signatures = append(d.Signatures, sig.JSON())
	}
	for i, rawTx := range b.rawTxs {
		txHash := types.Hash32(hash.Hash256(rawTx))
		if raw {
			d.Transactions = append(d.Transactions, TxDump{
				Hash:    txHash.Hex(),
				Tx:      hex.EncodeToString(rawTx),
				Receipt: hex.EncodeToString(b.rawReceipts[i]),
			})
			continue
		}
		d.Transactions = append(d.Transactions, TxDump{
			Hash:    txHash.Hex(),
			Tx:      b.txs[i].Dump(),
			Receipt: b.receipts[i].Dump(),
		})
	}
	return d
}
