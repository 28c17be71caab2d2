package hash

import (
	"sync"

	"github.com/zeebo/blake3"
)

// pool amortizes allocations of blake3 hashers used for non-consensus keys
// (caches, dedup sets). Consensus digests always use Hash256.
var pool = &sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// GetHasher will get a blake3 hasher from the pool.
// Consumers are expected to call Reset() on the hasher before putting it back in
// the pool.
func GetHasher() *blake3.Hasher {
	return pool.Get().(*blake3.Hasher)
}

// PutHasher returns the hasher back to the pool.
func PutHasher(hasher *blake3.Hasher) {
	pool.Put(hasher)
}

// Key computes a 32-byte blake3 digest of the concatenated chunks.
func Key(chunks ...[]byte) (out [32]byte) {
	h := GetHasher()
	defer func() {
		h.Reset()
		PutHasher(h)
	}()
	for _, chunk := range chunks {
		h.Write(chunk)
	}
	h.Sum(out[:0])
	return out
}
