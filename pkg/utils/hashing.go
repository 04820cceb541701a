package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// CompareOperatorKey checks a plaintext operator key against the bcrypt
// hash configured for destructive admin endpoints (catalog reload).
func CompareOperatorKey(hashedKey string, plainKey string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedKey), []byte(plainKey))
}

// HashOperatorKey exists for the ops script that provisions the hash.
func HashOperatorKey(plainKey string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plainKey), 10)
	return string(bytes), err
}
