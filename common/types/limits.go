package types

// Limits fixed by the wire format. Limits that may change between protocol versions
// live in config.Config instead.
const (
	// MaxTransfers is the maximum number of asset transfers in a transaction.
	MaxTransfers = 10
	// MaxSignatures is the maximum number of signatures on a transaction or a block.
	MaxSignatures = 5
	// MaxReceiptData is the maximum size of a receipt's opaque result data.
	MaxReceiptData = 0xff
	// MaxForkID is the largest fork id that fits the pre-image prefix.
	MaxForkID = 0xff
)
