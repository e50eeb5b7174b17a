// Package auth issues and validates access tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType is reported to clients next to every access token
const TokenType = "bearer"

var ErrInvalidToken = errors.New("invalid token")

// Tokens signs and validates HMAC access tokens whose subject is a username
type Tokens struct {
	secret []byte
	method jwt.SigningMethod
	expire time.Duration
	now    func() time.Time
}

func NewTokens(secret, algorithm string, expire time.Duration) (*Tokens, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("unsupported token algorithm %q", algorithm)
	}
	if secret == "" {
		return nil, errors.New("empty token secret")
	}
	return &Tokens{secret: []byte(secret), method: method, expire: expire, now: time.Now}, nil
}

// Issue returns a signed token for subject valid for the configured expiry
func (t *Tokens) Issue(subject string) (string, error) {
	now := t.now()
	token := jwt.NewWithClaims(t.method, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.expire)),
	})

	s, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Subject validates signature and expiry of token and returns its subject
func (t *Tokens) Subject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tk *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{t.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
