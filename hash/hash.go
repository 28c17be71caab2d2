// Package hash provides the digests used by the protocol: hash256 for identities,
// pre-images and commitments, and hash160 for account and forger identities.
package hash

import (
	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // hash160 is ripemd160 by definition
)

const (
	// Size is the length of a hash256 digest.
	Size = sha256.Size
	// Size160 is the length of a hash160 digest.
	Size160 = ripemd160.Size
)

var (
	// New is an alias to minio sha256.New.
	New = sha256.New
	// Sum is an alias to minio sha256.Sum256.
	Sum = sha256.Sum256
)

// Hash256 returns sha256(sha256(chunks...)).
func Hash256(chunks ...[]byte) [Size]byte {
	h := sha256.New()
	for _, chunk := range chunks {
		h.Write(chunk)
	}
	var first [Size]byte
	h.Sum(first[:0])
	return sha256.Sum256(first[:])
}

// Hash160 returns ripemd160(sha256(data)).
func Hash160(data []byte) [Size160]byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	var out [Size160]byte
	h.Sum(out[:0])
	return out
}
