package credstore

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the lowercase hex SHA-256 digest of the plaintext
// password. The digest is unsalted and deterministic: hashes stored by
// earlier CareMate clients must keep verifying, which rules out a salted KDF.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
