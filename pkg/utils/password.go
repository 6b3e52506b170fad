package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcrypt cost tuned for roughly 100ms per hash on commodity hardware.
const bcryptCost = 12

// HashPassword returns the salted bcrypt digest of a plaintext password.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares plaintext against a stored digest. Always use
// this, never string equality on digests.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
