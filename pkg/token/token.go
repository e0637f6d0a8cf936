// Package token issues and validates the signed bearer tokens exchanged by
// the platform services. Tokens are stateless HS256 JWTs: they become
// invalid only by signature mismatch or expiry, never by server-side
// revocation.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformed = errors.New("token malformed")
var ErrBadSignature = errors.New("token signature invalid")
var ErrExpired = errors.New("token expired")

// Claims binds a subject (the account email) and its role for the token's
// validity window.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer mints and validates tokens against a symmetric secret loaded once
// at startup. The secret and TTL are immutable for the process lifetime.
type Issuer struct {
	secret []byte
	ttl    time.Duration

	// now is the clock used for both issuance and validation windows.
	now func() time.Time
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = 10 * time.Hour
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the configured validity window.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue produces a signed token for subject carrying the role claim. The
// token is valid from now until now+TTL.
func (i *Issuer) Issue(subject, role string) (string, error) {
	now := i.now().UTC()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(i.secret)
}

// ParseClaims decodes and verifies tokenString, returning the claims as
// issued. Failures are reported as ErrMalformed, ErrBadSignature, or
// ErrExpired; the caller decides how much of that distinction to expose.
func (i *Issuer) ParseClaims(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, mapJWTError(err)
	}
	if !parsed.Valid {
		return nil, ErrBadSignature
	}
	return claims, nil
}

// Validate implements ports.TokenIssuer.
func (i *Issuer) Validate(tokenString string) (subject, role string, err error) {
	claims, err := i.ParseClaims(tokenString)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Role, nil
}

// mapJWTError collapses the jwt library's error set into this package's
// taxonomy: temporal failures, signature failures, everything else.
func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenUsedBeforeIssued):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrBadSignature
	default:
		return ErrMalformed
	}
}
