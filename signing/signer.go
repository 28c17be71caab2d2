// Package signing produces and verifies recoverable secp256k1 signatures over hash256 digests.
package signing

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/forwardblock/go-forwardblock/common/types"
)

type signerOption struct {
	priv []byte
	rand io.Reader
	file string
}

// SignerOptionFunc modifies Signer.
type SignerOptionFunc func(*signerOption) error

// ToFile writes the private key to a file after creation.
func ToFile(path string) SignerOptionFunc {
	return func(opt *signerOption) error {
		if opt.file != "" {
			return errors.New("invalid option ToFile: file already set")
		}
		opt.file = path
		return nil
	}
}

// FromFile loads the hex encoded private key from a file.
func FromFile(path string) SignerOptionFunc {
	return func(opt *signerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option FromFile: private key already set")
		}
		if opt.file != "" {
			return errors.New("invalid option FromFile: file already set")
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to open key file at %s: %w", path, err)
		}
		data = bytes.TrimSpace(data)
		if n := hex.DecodedLen(len(data)); n != PrivateKeySize {
			return fmt.Errorf("invalid key size %d/%d for %s", n, PrivateKeySize, filepath.Base(path))
		}
		dst := make([]byte, PrivateKeySize)
		if _, err := hex.Decode(dst, data); err != nil {
			return fmt.Errorf("decoding private key in %s: %w", filepath.Base(path), err)
		}
		opt.priv = dst
		opt.file = filepath.Base(path)
		return nil
	}
}

// WithPrivateKey sets the private key used by Signer.
func WithPrivateKey(priv []byte) SignerOptionFunc {
	return func(opt *signerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option WithPrivateKey: private key already set")
		}
		if len(priv) != PrivateKeySize {
			return fmt.Errorf("could not create signer: invalid key length %d", len(priv))
		}
		opt.priv = priv
		return nil
	}
}

// WithKeyFromRand generates the private key from a predictable randomness source.
func WithKeyFromRand(rand io.Reader) SignerOptionFunc {
	return func(opt *signerOption) error {
		opt.rand = rand
		return nil
	}
}

// Signer holds a secp256k1 private key.
type Signer struct {
	priv *secp256k1.PrivateKey
	file string
}

// NewSigner returns a signer, generating a new key unless one is supplied.
func NewSigner(opts ...SignerOptionFunc) (*Signer, error) {
	cfg := &signerOption{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if cfg.priv != nil {
		priv := secp256k1.PrivKeyFromBytes(cfg.priv)
		if priv.Key.IsZero() {
			return nil, errors.New("could not create signer: zero private key")
		}
		return &Signer{priv: priv, file: cfg.file}, nil
	}

	var (
		priv *secp256k1.PrivateKey
		err  error
	)
	if cfg.rand != nil {
		priv, err = secp256k1.GeneratePrivateKeyFromRand(cfg.rand)
	} else {
		priv, err = secp256k1.GeneratePrivateKey()
	}
	if err != nil {
		return nil, fmt.Errorf("could not generate key pair: %w", err)
	}
	if cfg.file != "" {
		_, err := os.Stat(cfg.file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		// continue
		case err != nil:
			return nil, fmt.Errorf("stat key file %s: %w", filepath.Base(cfg.file), err)
		default: // err == nil
			return nil, fmt.Errorf("save key file %s: %w", filepath.Base(cfg.file), fs.ErrExist)
		}
		raw := priv.Serialize()
		dst := make([]byte, hex.EncodedLen(len(raw)))
		hex.Encode(dst, raw)
		if err := os.WriteFile(cfg.file, dst, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write key file: %w", err)
		}
	}
	return &Signer{priv: priv, file: cfg.file}, nil
}

// Sign signs a hash256 digest. The recovery header is stored in V.
func (s *Signer) Sign(digest types.Hash32) types.Signature {
	compact := ecdsa.SignCompact(s.priv, digest[:], true)
	sig, err := types.SignatureFromCompact(compact)
	if err != nil {
		panic(fmt.Sprintf("compact signature of unexpected size %d", len(compact)))
	}
	return sig
}

// PublicKey returns the public key of the signer.
func (s *Signer) PublicKey() *PublicKey {
	return &PublicKey{key: s.priv.PubKey()}
}

// Address returns the hash160 identity of the signer.
func (s *Signer) Address() types.Address {
	return s.PublicKey().Address()
}

// PrivateKey returns the serialized private key.
func (s *Signer) PrivateKey() []byte {
	return s.priv.Serialize()
}

// Name returns the filename of the key file, if any.
func (s *Signer) Name() string {
	if s.file == "" {
		return ""
	}
	return filepath.Base(s.file)
}

// Matches implements the gomock.Matcher interface for testing.
func (s *Signer) Matches(x any) bool {
	if other, ok := x.(*Signer); ok {
		return bytes.Equal(s.PrivateKey(), other.PrivateKey())
	}
	return false
}

func (s *Signer) String() string {
	return s.PublicKey().ShortString()
}
