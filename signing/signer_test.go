package signing

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/forwardblock/go-forwardblock/common/types"
	"github.com/forwardblock/go-forwardblock/hash"
	"github.com/forwardblock/go-forwardblock/validator"
)

func TestNewSignerFromBuffer(t *testing.T) {
	_, err := NewSigner(WithPrivateKey([]byte{1, 2, 3}))
	require.ErrorContains(t, err, "invalid key length")

	_, err = NewSigner(WithPrivateKey(make([]byte, PrivateKeySize)))
	require.ErrorContains(t, err, "zero private key")
}

func TestSigner_SignAndRecover(t *testing.T) {
	signer, err := NewSigner()
	require.NoError(t, err)

	digest := types.Hash32(hash.Hash256([]byte("message")))
	sig := signer.Sign(digest)
	require.GreaterOrEqual(t, sig.V, uint8(31), "compressed key recovery header")
	require.LessOrEqual(t, sig.V, uint8(34))

	pub, err := Recover(digest, sig)
	require.NoError(t, err)
	require.True(t, pub.Equals(signer.PublicKey()))
	require.True(t, Verify(signer.PublicKey(), digest, sig))

	other := digest
	other[0] ^= 0xff
	require.False(t, Verify(signer.PublicKey(), other, sig))
}

func TestSigner_Deterministic(t *testing.T) {
	seed := bytes.Repeat([]byte{7}, 64)
	first, err := NewSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	second, err := NewSigner(WithKeyFromRand(bytes.NewReader(seed)))
	require.NoError(t, err)
	require.Equal(t, first.PrivateKey(), second.PrivateKey())

	digest := types.Hash32{1}
	require.Equal(t, first.Sign(digest), second.Sign(digest))
}

func TestSigner_WithPrivateKey(t *testing.T) {
	signer, err := NewSigner()
	require.NoError(t, err)

	again, err := NewSigner(WithPrivateKey(signer.PrivateKey()))
	require.NoError(t, err)
	require.True(t, signer.Matches(again))
	require.Equal(t, signer.Address(), again.Address())
}

func TestSigner_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forger.key")
	signer, err := NewSigner(ToFile(path))
	require.NoError(t, err)
	require.Equal(t, "forger.key", signer.Name())

	_, err = NewSigner(ToFile(path))
	require.ErrorIs(t, err, os.ErrExist)

	loaded, err := NewSigner(FromFile(path))
	require.NoError(t, err)
	require.Equal(t, signer.PrivateKey(), loaded.PrivateKey())
}

func TestPublicKey(t *testing.T) {
	signer, err := NewSigner(WithPrivateKey(append(make([]byte, 31), 1)))
	require.NoError(t, err)
	pub := signer.PublicKey()
	require.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", pub.String())
	require.Equal(t, "0279b", pub.ShortString())
	require.Equal(t, "751e76e8199196d454941c45d1b3a323f1433bd6", pub.Address().Hex())

	parsed, err := NewPublicKey(pub.Bytes())
	require.NoError(t, err)
	require.True(t, parsed.Equals(pub))

	_, err = NewPublicKey([]byte{1, 2, 3})
	require.ErrorIs(t, err, validator.ErrPublicKeyLength)

	bad := pub.Bytes()
	bad[0] = 0x05
	_, err = NewPublicKey(bad)
	require.ErrorIs(t, err, validator.ErrPublicKeyPrefix)
}
