// Package password hashes and verifies credentials with bcrypt.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword    = errors.New("password must not be empty")
	ErrHashingFailed    = errors.New("password hashing failed")
	ErrPasswordMismatch = errors.New("password does not match")
)

// HashPassword returns the bcrypt hash of plain at the default cost.
func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Join(ErrHashingFailed, err)
	}
	return string(hash), nil
}

// ComparePassword reports whether plain matches the stored bcrypt hash.
func ComparePassword(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrPasswordMismatch
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrPasswordMismatch
		}
		return err
	}
	return nil
}
