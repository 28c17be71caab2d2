package transaction

import (
	"encoding/hex"

	"github.com/forwardblock/go-forwardblock/common/types"
)

// TransferDump is the display form of a transfer.
type TransferDump struct {
	Asset  string `json:"asset"`
	Amount uint64 `json:"amount"`
}

// Dump is the display form of a transaction.
type Dump struct {
	Version    uint8                 `json:"version"`
	Flag       uint16                `json:"flag"`
	Sender     string                `json:"sender,omitempty"`
	Nonce      uint32                `json:"nonce"`
	Recipient  string                `json:"recipient,omitempty"`
	Memo       string                `json:"memo,omitempty"`
	Transfers  []TransferDump        `json:"transfers,omitempty"`
	Data       string                `json:"data,omitempty"`
	Signatures []types.SignatureJSON `json:"signs,omitempty"`
	Fee        uint64                `json:"fee"`
	Timestamp  uint32                `json:"timeStamp"`
}

// Dump returns the display form of the transaction.
func (t *Transaction) Dump() Dump {
	d := Dump{
		Version:   t.Version,
		Flag:      t.Flag,
		Nonce:     t.Nonce,
		Memo:      t.Memo,
		Data:      hex.EncodeToString(t.Data),
		Fee:       t.Fee,
		Timestamp: t.Timestamp,
	}
	if t.Sender != nil {
		d.Sender = t.Sender.String()
	}
	if t.Recipient != nil {
		d.Recipient = t.Recipient.String()
	}
	for _, tr := range t.Transfers {
		d.Transfers = append(d.Transfers, TransferDump{Asset: tr.Asset.String(), Amount: tr.Amount})
	}
	for _, sig := range t.Signatures {
		d.Signatures = append(d.Signatures, sig.JSON())
	}
	return d
}
