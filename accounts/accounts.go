// Package accounts is an in-memory account registry: which keys may sign for an account
// and how many of their signatures a transaction needs.
package accounts

import (
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/core"
	"github.com/forwardblock/go-forwardblock/hash"
	"github.com/forwardblock/go-forwardblock/signing"
	"github.com/forwardblock/go-forwardblock/validator"
)

var (
	// ErrUnknownAccount is returned for accounts that were never registered.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrInvalidThreshold is returned when the threshold cannot be met by the keys.
	ErrInvalidThreshold = errors.New("invalid signature threshold")
)

// Account lists the keys that sign for an address.
type Account struct {
	Address   types.Address
	Keys      []*signing.PublicKey
	Threshold int
}

// Opt configures Registry.
type Opt func(*Registry)

// WithLogger configures logger for the registry.
func WithLogger(logger *zap.Logger) Opt {
	return func(r *Registry) {
		r.logger = logger
	}
}

// Registry implements core.AccountRegistry. It is safe for concurrent use.
type Registry struct {
	logger *zap.Logger

	mu       sync.RWMutex
	accounts map[types.Address]*Account

	// recovered maps blake3(digest || signature) to the compressed key that produced it.
	recovered *lru.Cache[[32]byte, string]
}

// New returns an empty registry remembering up to cacheSize recovered keys.
func New(cacheSize int, opts ...Opt) (*Registry, error) {
	cache, err := lru.New[[32]byte, string](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("create signature cache: %w", err)
	}
	r := &Registry{
		logger:    zap.NewNop(),
		accounts:  map[types.Address]*Account{},
		recovered: cache,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Register adds a single-key account identified by the hash160 of its key.
func (r *Registry) Register(key *signing.PublicKey) types.Address {
	addr := key.Address()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[addr] = &Account{Address: addr, Keys: []*signing.PublicKey{key}, Threshold: 1}
	registeredAccounts.Set(float64(len(r.accounts)))
	return addr
}

// RegisterMultiSig adds an account that needs threshold of the given keys.
func (r *Registry) RegisterMultiSig(addr types.Address, threshold int, keys ...*signing.PublicKey) error {
	if threshold < 1 || threshold > len(keys) || threshold > types.MaxSignatures {
		return fmt.Errorf("%w: %d of %d keys", ErrInvalidThreshold, threshold, len(keys))
	}
	compressed := true
	for i, key := range keys {
		if err := validator.CheckPublicKey(key.Bytes(), &compressed); err != nil {
			return fmt.Errorf("key %d: %w", i, err)
		}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.accounts[addr] = &Account{Address: addr, Keys: keys, Threshold: threshold}
	registeredAccounts.Set(float64(len(r.accounts)))
	return nil
}

// Get returns the account for addr.
func (r *Registry) Get(addr types.Address) (*Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[addr]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAccount, addr)
	}
	return acc, nil
}

// SigRequiredCount returns the signature threshold of the account.
func (r *Registry) SigRequiredCount(addr types.Address) (int, error) {
	acc, err := r.Get(addr)
	if err != nil {
		return 0, err
	}
	return acc.Threshold, nil
}

// VerifyAllSignatures counts the account keys that produced one of sigs over digest.
// Each key is counted at most once.
func (r *Registry) VerifyAllSignatures(addr types.Address, digest types.Hash32, sigs ...types.Signature) (int, error) {
	acc, err := r.Get(addr)
	if err != nil {
		return 0, err
	}
	allowed := make(map[string]struct{}, len(acc.Keys))
	for _, key := range acc.Keys {
		allowed[string(key.Bytes())] = struct{}{}
	}
	verified := 0
	for i, sig := range sigs {
		key, err := r.recover(digest, sig)
		if err != nil {
			r.logger.Debug("signature recovery failed",
				zap.Stringer("account", addr),
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		if _, ok := allowed[key]; ok {
			delete(allowed, key)
			verified++
		}
	}
	return verified, nil
}

func (r *Registry) recover(digest types.Hash32, sig types.Signature) (string, error) {
	cacheKey := hash.Key(digest[:], sig.Compact())
	if key, ok := r.recovered.Get(cacheKey); ok {
		return key, nil
	}
	pub, err := signing.Recover(digest, sig)
	if err != nil {
		return "", err
	}
	key := string(pub.Bytes())
	r.recovered.Add(cacheKey, key)
	return key, nil
}

var _ core.AccountRegistry = (*Registry)(nil)
