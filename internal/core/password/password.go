// Package password wraps bcrypt hashing and verification of user credentials.
package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest of plaintext. bcrypt embeds a fresh
// random salt in every hash, so hashing the same input twice yields different
// outputs.
func Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches the stored hash. Any failure,
// including an empty or malformed stored hash, counts as a mismatch.
func Verify(plaintext, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
