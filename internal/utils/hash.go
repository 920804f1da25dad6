package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashCost matches the work factor the rest of the catalog data was hashed with.
const HashCost = 10

var ErrEmptyPassword = errors.New("password cannot be empty")

// HashPassword generates a salted bcrypt hash of the password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A mismatch or malformed hash is false, never an error.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)) == nil
}
