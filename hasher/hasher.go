// Package hasher wraps bcrypt for password storage.
package hasher

import (
	"github.com/code19m/errx"
	"golang.org/x/crypto/bcrypt"
)

// Hash returns the bcrypt hash of the given password.
func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errx.Wrap(err)
	}
	return string(hash), nil
}

// Compare reports whether password matches the stored bcrypt hash.
func Compare(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
