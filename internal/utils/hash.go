package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a one-way bcrypt hash of the given plaintext password
// using the provided work factor.
//
// The returned hash embeds its own salt and cost, so verification needs no
// additional parameters. Plaintext passwords must never be stored or logged;
// this function is the only place they cross into persistent form.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison is constant-time within bcrypt itself.
func VerifyPassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
