// Package token issues and verifies the bearer tokens that carry caller
// identity. Tokens are stateless HS256 JWTs; validity is determined entirely
// by signature and expiry, with no server-side session table.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"socialnet/apperrors"
)

// Claims bind a token to a single user id on top of the registered
// issued-at/expires-at claims.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// Manager signs and verifies tokens with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Generate issues a token bound to userID, valid for the configured TTL.
func (m *Manager) Generate(userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		UserID: userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses raw and returns the user id it is bound to. Missing,
// malformed and expired tokens are distinct internal reasons but all surface
// as an AuthError.
func (m *Manager) Verify(raw string) (string, error) {
	if raw == "" {
		return "", apperrors.Authf("authentication token missing")
	}

	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.Authf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", apperrors.Authf("token expired")
		}
		return "", apperrors.Authf("invalid token")
	}
	if !tok.Valid || claims.UserID == "" {
		return "", apperrors.Authf("invalid token")
	}
	return claims.UserID, nil
}
