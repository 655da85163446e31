// Package token implements the session-token collaborator: HS256-signed JWTs
// whose subject claim is the user identity. The rest of the system only sees
// the ports.TokenIssuer / ports.TokenVerifier contracts.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 30 * 24 * time.Hour

var errMissingSubject = errors.New("token missing subject claim")

type HMAC struct {
	secret []byte
	ttl    time.Duration
}

// NewHMAC builds an HS256 issuer/verifier. A non-positive ttl falls back to
// the 30-day default.
func NewHMAC(secret string, ttl time.Duration) *HMAC {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &HMAC{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token with sub = subject and an expiry ttl from now.
func (h *HMAC) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(h.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
}

// Verify parses and validates a token, returning its subject claim.
func (h *HMAC) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return h.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", jwt.ErrTokenSignatureInvalid
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", errMissingSubject
	}
	return sub, nil
}
