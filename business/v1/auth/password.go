package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyHash is compared against when there is no stored hash, so a missing
// user costs the same as a wrong password.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// maxPassword is the number of bytes bcrypt reads, the rest is ignored
const maxPassword = 72

func key(password string) []byte {
	if len(password) > maxPassword {
		return []byte(password[:maxPassword])
	}
	return []byte(password)
}

// HashPassword returns the bcrypt hash of password. Only its first 72 bytes count.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword(key(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(h), nil
}

// VerifyPassword reports whether password matches hash. An empty hash always
// fails after doing the same amount of work as a real comparison.
func VerifyPassword(hash, password string) bool {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, key(password))
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), key(password)) == nil
}
