// Package token issues and resolves the signed bearer tokens that prove a
// user's identity. Tokens are HS256-signed JWTs carrying the user id as
// subject; expiry is the only lifecycle bound, there is no revocation.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTTL = 24 * time.Hour

var ErrNoSigningKey = errors.New("token: signing key not configured")
var ErrInvalidToken = errors.New("token: invalid token")

// Issuer mints and verifies identity tokens with a fixed TTL.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token whose subject is userID.
func (i *Issuer) Issue(userID string) (string, error) {
	if len(i.secret) == 0 {
		return "", ErrNoSigningKey
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// Resolve verifies signature and expiry and returns the subject user id.
// Malformed, mis-signed, and expired tokens all report ErrInvalidToken.
func (i *Issuer) Resolve(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
