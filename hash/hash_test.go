package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHash256(t *testing.T) {
	first := sha256.Sum256([]byte("forwardblock"))
	expected := sha256.Sum256(first[:])
	require.Equal(t, expected, Hash256([]byte("forwardblock")))
	require.Equal(t, expected, Hash256([]byte("forward"), []byte("block")))
}

func TestHash256Empty(t *testing.T) {
	// sha256d of the empty string
	require.Equal(t,
		"5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		hex.EncodeToString(func() []byte { h := Hash256(); return h[:] }()),
	)
}

func TestHash160(t *testing.T) {
	// hash160 of the compressed secp256k1 generator point
	pub, err := hex.DecodeString("0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	require.NoError(t, err)
	h := Hash160(pub)
	require.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", hex.EncodeToString(h[:]))
}

func TestKeyIsStable(t *testing.T) {
	require.Equal(t, Key([]byte("a"), []byte("b")), Key([]byte("ab")))
	require.NotEqual(t, Key([]byte("a")), Key([]byte("b")))
}
