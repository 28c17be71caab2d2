package core

import (
	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/ledger"
	"github.com/forwardblock/go-forwardblock/receipt"
	"github.com/forwardblock/go-forwardblock/transaction"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./interface.go

// AccountRegistry knows the signing policy of accounts.
type AccountRegistry interface {
	// SigRequiredCount returns how many valid signatures a transaction from account needs.
	SigRequiredCount(account types.Address) (int, error)
	// VerifyAllSignatures returns how many of sigs over digest were produced by keys of account.
	VerifyAllSignatures(account types.Address, digest types.Hash32, sigs ...types.Signature) (int, error)
}

// Handler builds and decodes receipts for one transaction flag.
type Handler interface {
	receipt.Generator
	Flag() TxFlag
	NewReceipt(tx *transaction.Transaction, height uint64) (*receipt.Receipt, error)
	// DecodeReceipt parses data resolving ledger flags through flags.
	DecodeReceipt(flags ledger.FlagSource, tx *transaction.Transaction, data []byte, height uint64) (*receipt.Receipt, error)
}

// FlagRegistry resolves transaction flags to their handlers.
type FlagRegistry interface {
	Get(id uint16) (Handler, error)
	// IsEnabled reports whether flag may be used in a block at height.
	IsEnabled(flag TxFlag, height uint64) bool
	LedgerFlags() ledger.FlagSource
}
