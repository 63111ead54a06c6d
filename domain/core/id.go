package core

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// PublicID is the shareable identifier of a stored reading. It carries no
// authority: knowing a PublicID grants nothing without the matching Secret.
type PublicID ID

// NewPublicID creates a new reading identifier
func NewPublicID() PublicID {
	return PublicID(NewID())
}

func (id PublicID) String() string { return ID(id).String() }

// ParsePublicID parses a string into a PublicID
func ParsePublicID(s string) (PublicID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("public ID cannot be empty")
	}
	return PublicID(s), nil
}

// Secret is the capability token for a stored reading. Possession of the
// secret is the sole authorization mechanism; it is never derivable from
// the PublicID.
type Secret string

const secretBytes = 32 // 256 bits

// NewSecret generates a fresh capability token from crypto/rand.
func NewSecret() (Secret, error) {
	buf := make([]byte, secretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return Secret(hex.EncodeToString(buf)), nil
}

// Matches compares two secrets in constant time.
func (s Secret) Matches(other Secret) bool {
	return subtle.ConstantTimeCompare([]byte(s), []byte(other)) == 1
}

func (s Secret) String() string { return string(s) }

// IsEmpty checks if the secret is empty
func (s Secret) IsEmpty() bool { return s == "" }
