// Package token implements the token issuer/verifier on HS256 JWTs.
//
// Verification applies no clock-skew leeway: a token is expired the
// moment its exp claim passes, which is jwt/v5's default behaviour.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/laundrymart/laundry-backend/internal/core/domain"
	"github.com/laundrymart/laundry-backend/internal/core/ports"
)

const defaultTTL = 24 * time.Hour

// JWTManager issues and verifies bearer tokens signed with a single
// process-wide secret loaded once at startup.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTManager(secret string, ttl time.Duration) *JWTManager {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &JWTManager{secret: []byte(secret), ttl: ttl}
}

// Issue encodes {username, role, iat, exp} and signs with HS256.
func (m *JWTManager) Issue(username, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify checks signature integrity and expiry and returns the identity
// carried by the token. Tokens signed with any method other than HS256
// are rejected outright.
func (m *JWTManager) Verify(token string) (ports.Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ports.Identity{}, domain.ErrTokenExpired
		}
		return ports.Identity{}, domain.ErrInvalidToken
	}
	if !parsed.Valid {
		return ports.Identity{}, domain.ErrInvalidToken
	}

	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	if username == "" {
		return ports.Identity{}, domain.ErrInvalidToken
	}
	return ports.Identity{Username: username, Role: role}, nil
}
