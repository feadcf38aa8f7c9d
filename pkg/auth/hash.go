package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashPassword returns the hex SHA-256 digest of the plain-text password.
//
// The digest is deliberately deterministic and unsalted: verification
// re-hashes the candidate and compares for equality, so identical inputs must
// always produce identical digests. Changing this format invalidates every
// stored credential, so any strengthening (per-account salt, bcrypt) requires
// a migration of the accounts collection first.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// CheckPassword compares a stored digest against a plain-text candidate.
func CheckPassword(digest, plain string) bool {
	return digest == HashPassword(plain)
}
