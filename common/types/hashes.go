package types

import (
	"encoding/hex"
	"fmt"
)

const (
	// Hash32Length is the length of a hash256 digest.
	Hash32Length = 32
	// Hash20Length is the length of a hash160 digest.
	Hash20Length = 20
)

// Hash32 is a 32-byte hash256 digest.
type Hash32 [Hash32Length]byte

// EmptyHash32 is the all-zero hash, used for the merkle roots of empty blocks.
var EmptyHash32 = Hash32{}

// BytesToHash32 copies b into a Hash32. If b is larger than 32 bytes it is cropped from the left.
func BytesToHash32(b []byte) Hash32 {
	var h Hash32
	if len(b) > len(h) {
		b = b[len(b)-Hash32Length:]
	}
	copy(h[Hash32Length-len(b):], b)
	return h
}

// Bytes gets the byte representation of the underlying hash.
func (h Hash32) Bytes() []byte { return h[:] }

// Hex converts a hash to a hex string.
func (h Hash32) Hex() string { return hex.EncodeToString(h[:]) }

// String implements fmt.Stringer.
func (h Hash32) String() string { return h.Hex() }

// ShortString returns the first 10 characters of the hash, for logging purposes.
func (h Hash32) ShortString() string { return h.Hex()[:10] }

// IsEmpty returns true if all bytes are zero.
func (h Hash32) IsEmpty() bool { return h == EmptyHash32 }

// MarshalText returns the hex representation of h.
func (h Hash32) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash32) UnmarshalText(input []byte) error {
	if len(input) != 2*Hash32Length {
		return fmt.Errorf("hash: expected %d hex characters, got %d", 2*Hash32Length, len(input))
	}
	_, err := hex.Decode(h[:], input)
	return err
}
