package auth

import "golang.org/x/crypto/bcrypt"

// DefaultBcryptCost mirrors the work factor the service has always used.
const DefaultBcryptCost = 10

// HashPassword applies a salted bcrypt hash to plaintext. The same input
// produces a different hash on every call.
func HashPassword(plaintext string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plaintext matches the stored bcrypt hash.
// The comparison is constant-time with respect to the hash.
func CheckPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
