package transaction

import (
	"fmt"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/config"
	"github.com/forwardblock/go-forwardblock/hash"
	"github.com/forwardblock/go-forwardblock/validator"
)

type preImageOpts struct {
	chainID string
	forkID  *int
}

// PreImageOpt overrides the protocol defaults of the signing pre-image.
type PreImageOpt func(*preImageOpts)

// WithChainID signs for the given chain id (64 hex characters).
func WithChainID(id string) PreImageOpt {
	return func(o *preImageOpts) {
		o.chainID = id
	}
}

// WithChain signs for the given chain id.
func WithChain(id types.ChainID) PreImageOpt {
	return WithChainID(id.Hex())
}

// WithForkID signs for the given fork id (0 to 255).
func WithForkID(id int) PreImageOpt {
	return func(o *preImageOpts) {
		o.forkID = &id
	}
}

// HashPreImage returns hash256(forkID || chainID || serialize(no signatures)).
// Signatures are made and verified over this digest, which binds them to one chain and fork.
func (t *Transaction) HashPreImage(cfg *config.Config, opts ...PreImageOpt) (types.Hash32, error) {
	var o preImageOpts
	for _, opt := range opts {
		opt(&o)
	}
	if o.chainID != "" && !validator.IsValidChainID(o.chainID) {
		return types.Hash32{}, fmt.Errorf("%w: cannot generate pre-image: invalid chain identifier", ErrEncode)
	}
	if o.chainID == "" {
		o.chainID = cfg.ChainID
	}
	chain, err := types.ParseChainID(o.chainID)
	if err != nil {
		return types.Hash32{}, fmt.Errorf("%w: cannot generate pre-image: %w", ErrEncode, err)
	}

	forkID := cfg.ForkID
	if o.forkID != nil {
		forkID = *o.forkID
	}
	if forkID < 0 || forkID > types.MaxForkID {
		return types.Hash32{}, fmt.Errorf("%w: cannot generate pre-image: invalid fork id %d", ErrEncode, forkID)
	}

	unsigned, err := t.Serialize(cfg, false)
	if err != nil {
		return types.Hash32{}, err
	}
	return hash.Hash256([]byte{uint8(forkID)}, chain[:], unsigned), nil
}
