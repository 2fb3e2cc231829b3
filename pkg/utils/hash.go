package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString creates a SHA-256 hash of the input string
func HashString(input string) string {
	h := sha256.New()
	h.Write([]byte(input))
	return hex.EncodeToString(h.Sum(nil))
}

// HashEmail hashes an email address after trimming and lower-casing it, so
// logs and dedup lookups never carry the address itself.
func HashEmail(email string) string {
	return HashString(strings.ToLower(strings.TrimSpace(email)))
}
