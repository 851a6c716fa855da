package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HashJSON hashes the JSON encoding of v. It is used to fingerprint
// option structs; values that fail to encode hash as their error text.
func HashJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return Hash([]byte(err.Error()))
	}
	return Hash(data)
}
