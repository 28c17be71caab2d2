package signing

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/forwardblock/go-forwardblock/common/types"
)

// Recover extracts the public key that produced sig over digest.
func Recover(digest types.Hash32, sig types.Signature) (*PublicKey, error) {
	key, _, err := ecdsa.RecoverCompact(sig.Compact(), digest[:])
	if err != nil {
		return nil, fmt.Errorf("recover public key: %w", err)
	}
	return &PublicKey{key: key}, nil
}

// Verify reports whether sig over digest was produced by pub.
func Verify(pub *PublicKey, digest types.Hash32, sig types.Signature) bool {
	recovered, err := Recover(digest, sig)
	if err != nil {
		return false
	}
	return recovered.Equals(pub)
}
