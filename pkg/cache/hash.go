package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Key builds a cache key from a namespace and the content it covers.
// The key format is "namespace:hash", where the hash is the full
// SHA-256 of the content so distinct documents can never collide.
func Key(namespace string, content []byte) string {
	return namespace + ":" + Hash(content)
}

// Hash computes the SHA-256 hash of data as a 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
