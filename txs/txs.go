// Package txs turns signed transactions into checked transactions ready for a block.
package txs

import (
	"time"

	"go.uber.org/zap"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/core"
	"github.com/forwardblock/go-forwardblock/metrics"
	"github.com/forwardblock/go-forwardblock/receipt"
	"github.com/forwardblock/go-forwardblock/transaction"
)

// CheckedTx pairs a transaction with its provisional receipt.
type CheckedTx struct {
	Tx      *transaction.Transaction
	Receipt *receipt.Receipt
}

// Check verifies the signatures of tx from sender, the activation of its flag at height and
// builds its receipt. Errors are always *CheckTxError.
func Check(p *core.Protocol, sender types.Address, tx *transaction.Transaction, height uint64) (*CheckedTx, error) {
	defer metrics.ObserveSince(checkLatency, time.Now())
	if err := checkSignatures(p, sender, tx, height); err != nil {
		insufficientSigCnt.Inc()
		return nil, err
	}

	handler, err := p.Flags.Get(tx.Flag)
	if err != nil {
		p.Suppressed("unknown transaction flag", err, zap.Uint16("flag", tx.Flag))
		flagDisabledCnt.Inc()
		return nil, ErrFlagDisabled
	}
	if !p.Flags.IsEnabled(handler.Flag(), height) {
		flagDisabledCnt.Inc()
		return nil, ErrFlagDisabled
	}

	rcpt, err := handler.NewReceipt(tx, height)
	if err != nil {
		p.Suppressed("generate receipt", err,
			zap.Stringer("flag", handler.Flag()),
			zap.Uint64("height", height),
		)
		receiptFailedCnt.Inc()
		return nil, ErrReceiptGenerationFailed
	}
	checkOkCnt.Inc()
	return &CheckedTx{Tx: tx, Receipt: rcpt}, nil
}

func checkSignatures(p *core.Protocol, sender types.Address, tx *transaction.Transaction, height uint64) error {
	var opts []transaction.PreImageOpt
	if height == 0 {
		opts = append(opts, transaction.WithChain(types.GenesisChainID))
	}
	digest, err := tx.HashPreImage(p.Config, opts...)
	if err != nil {
		p.Suppressed("signing pre-image", err, zap.String("step", "preimage"))
		return ErrInsufficientSignatures
	}
	required, err := p.Accounts.SigRequiredCount(sender)
	if err != nil {
		p.Suppressed("required signatures", err, zap.Stringer("sender", sender))
		return ErrInsufficientSignatures
	}
	verified, err := p.Accounts.VerifyAllSignatures(sender, digest, tx.Signatures...)
	if err != nil {
		p.Suppressed("verify signatures", err, zap.Stringer("sender", sender))
		return ErrInsufficientSignatures
	}
	if verified < required {
		return ErrInsufficientSignatures
	}
	return nil
}
