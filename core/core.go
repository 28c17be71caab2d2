// Package core defines the protocol context and the collaborators the codecs depend on.
package core

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/forwardblock/go-forwardblock/config"
)

// TxFlag is a transaction type.
type TxFlag struct {
	ID   uint16
	Name string
	// ActivationHeight is the first block height the flag is enabled at.
	ActivationHeight uint64
}

func (f TxFlag) String() string {
	return fmt.Sprintf("%s(%d)", f.Name, f.ID)
}

// Protocol is passed into every operation that needs protocol parameters or collaborators.
type Protocol struct {
	Config   *config.Config
	Accounts AccountRegistry
	Flags    FlagRegistry
	Logger   *zap.Logger
}

// Log returns the protocol logger, or a no-op logger when none is set.
func (p *Protocol) Log() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

// Suppressed logs a collaborator error that is replaced by a protocol error.
// Nothing is logged unless debug mode is enabled.
func (p *Protocol) Suppressed(msg string, err error, fields ...zap.Field) {
	if !p.Config.Debug {
		return
	}
	fields = append(fields, zap.String("type", fmt.Sprintf("%T", err)), zap.Error(err))
	p.Log().Warn(msg, fields...)
}
