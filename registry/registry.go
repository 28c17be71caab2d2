// Package registry maps transaction flags to the handlers that build their receipts.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/forwardblock/go-forwardblock/config"
	"github.com/forwardblock/go-forwardblock/core"
	"github.com/forwardblock/go-forwardblock/ledger"
	"github.com/forwardblock/go-forwardblock/validator"
)

// ErrUnknownFlag is returned by Get for flags without a handler.
var ErrUnknownFlag = errors.New("unknown transaction flag")

// New creates Registry instance. Activation heights in cfg override the handlers' own.
func New(cfg *config.Config) *Registry {
	return &Registry{
		cfg:         cfg,
		handlers:    map[uint16]core.Handler{},
		names:       map[string]uint16{},
		ledgerFlags: ledger.NewFlags(),
	}
}

// Registry stores mapping from flag id to handler. It is safe for concurrent use.
type Registry struct {
	cfg *config.Config

	mu          sync.RWMutex
	handlers    map[uint16]core.Handler
	names       map[string]uint16
	ledgerFlags *ledger.Flags
}

// Register handler for its flag. Flag ids and names must be unique.
func (r *Registry) Register(handler core.Handler) error {
	flag := handler.Flag()
	if !validator.IsValidTxFlagName(flag.Name) {
		return fmt.Errorf("invalid transaction flag name %q", flag.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, exist := r.handlers[flag.ID]; exist {
		return fmt.Errorf("flag %d already registered as %s", flag.ID, existing.Flag().Name)
	}
	if id, exist := r.names[flag.Name]; exist {
		return fmt.Errorf("flag name %s already registered with id %d", flag.Name, id)
	}
	r.handlers[flag.ID] = handler
	r.names[flag.Name] = flag.ID
	return nil
}

// RegisterLedgerFlags adds ledger flags used by the registered handlers.
func (r *Registry) RegisterLedgerFlags(flags ...ledger.Flag) error {
	for _, flag := range flags {
		if err := r.ledgerFlags.Register(flag); err != nil {
			return err
		}
	}
	return nil
}

// Get handler for the flag id.
func (r *Registry) Get(id uint16) (core.Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	handler, exist := r.handlers[id]
	if !exist {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFlag, id)
	}
	return handler, nil
}

// ActivationHeight returns the height a flag becomes enabled at.
func (r *Registry) ActivationHeight(flag core.TxFlag) uint64 {
	if height, ok := r.cfg.ActivationHeight(flag.Name); ok {
		return height
	}
	return flag.ActivationHeight
}

// IsEnabled reports whether flag may be used at height.
func (r *Registry) IsEnabled(flag core.TxFlag, height uint64) bool {
	return height >= r.ActivationHeight(flag)
}

// LedgerFlags returns the ledger flags known to the handlers.
func (r *Registry) LedgerFlags() ledger.FlagSource {
	return r.ledgerFlags
}

// Flags returns the registered transaction flags ordered by id.
func (r *Registry) Flags() []core.TxFlag {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.TxFlag, 0, len(r.handlers))
	for _, handler := range r.handlers {
		out = append(out, handler.Flag())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var _ core.FlagRegistry = (*Registry)(nil)
