package types

import (
	"encoding/hex"
	"fmt"
)

// SignatureSize is the encoded size of a signature: r (32) || s (32) || v (1).
const SignatureSize = 65

// Signature is a recoverable secp256k1 signature.
type Signature struct {
	R [32]byte
	S [32]byte
	// V is the compact recovery header byte.
	V uint8
}

// Compact returns the signature in the [v || r || s] layout used by secp256k1 recovery.
func (s Signature) Compact() []byte {
	out := make([]byte, 0, SignatureSize)
	out = append(out, s.V)
	out = append(out, s.R[:]...)
	return append(out, s.S[:]...)
}

// SignatureFromCompact is the inverse of Signature.Compact.
func SignatureFromCompact(b []byte) (Signature, error) {
	var sig Signature
	if len(b) != SignatureSize {
		return sig, fmt.Errorf("signature: expected %d bytes, got %d", SignatureSize, len(b))
	}
	sig.V = b[0]
	copy(sig.R[:], b[1:33])
	copy(sig.S[:], b[33:])
	return sig, nil
}

// SignatureJSON is the display form of a signature.
type SignatureJSON struct {
	R string `json:"r"`
	S string `json:"s"`
	V uint8  `json:"v"`
}

// JSON returns the display form of the signature.
func (s Signature) JSON() SignatureJSON {
	return SignatureJSON{R: hex.EncodeToString(s.R[:]), S: hex.EncodeToString(s.S[:]), V: s.V}
}
