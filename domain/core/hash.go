package core

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// Equals checks if two hashes are equal
func (h Hash) Equals(other Hash) bool {
	return h == other
}

// Fingerprint hashes any value through its canonical JSON encoding.
// Go's encoder emits struct fields in declaration order and sorts map keys,
// which makes this stable across runs for the same input.
func Fingerprint(v interface{}) (Hash, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return NewHash(data), nil
}
