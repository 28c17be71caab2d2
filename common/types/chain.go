package types

import (
	"encoding/hex"
	"fmt"
)

// ChainID identifies a network. It is part of every signing pre-image.
type ChainID [32]byte

// GenesisChainID is the all-zero chain id used to sign transactions of the genesis block.
var GenesisChainID = ChainID{}

// ParseChainID decodes a chain id from exactly 64 hex characters.
func ParseChainID(s string) (ChainID, error) {
	var id ChainID
	if len(s) != 2*len(id) {
		return id, fmt.Errorf("chain id: expected %d hex characters, got %d", 2*len(id), len(s))
	}
	if _, err := hex.Decode(id[:], []byte(s)); err != nil {
		return id, fmt.Errorf("chain id: %w", err)
	}
	return id, nil
}

// Hex returns the chain id in hex.
func (c ChainID) Hex() string { return hex.EncodeToString(c[:]) }

// String implements fmt.Stringer.
func (c ChainID) String() string { return c.Hex() }
