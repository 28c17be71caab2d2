package signing

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"go.uber.org/zap/zapcore"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/validator"
)

// PrivateKeySize size of the private key in bytes.
const PrivateKeySize = secp256k1.PrivKeyBytesLen

// PublicKey is a secp256k1 public key.
type PublicKey struct {
	key *secp256k1.PublicKey
}

// NewPublicKey parses a compressed or uncompressed public key.
func NewPublicKey(pub []byte) (*PublicKey, error) {
	if err := validator.CheckPublicKey(pub, nil); err != nil {
		return nil, err
	}
	key, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key}, nil
}

// Bytes returns the compressed public key.
func (p *PublicKey) Bytes() []byte {
	// Prevent segfault if unset
	if p == nil || p.key == nil {
		return nil
	}
	return p.key.SerializeCompressed()
}

// Address returns the hash160 identity of the compressed key.
func (p *PublicKey) Address() types.Address {
	return types.GenerateAddress(p.Bytes())
}

// String returns the public key as a hex representation string.
func (p *PublicKey) String() string {
	return hex.EncodeToString(p.Bytes())
}

const shortStringSize = 5

// ShortString returns a representative sub string.
func (p *PublicKey) ShortString() string {
	s := p.String()
	if len(s) < shortStringSize {
		return s
	}
	return s[:shortStringSize]
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (p *PublicKey) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("public_key", p.ShortString())
	return nil
}

// Equals returns true iff the public keys are equal.
func (p *PublicKey) Equals(o *PublicKey) bool {
	if p == nil || o == nil {
		return p == o
	}
	return p.key.IsEqual(o.key)
}
