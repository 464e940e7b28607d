// Package token implements the signed, expiring identity token shared by the
// gateway and every downstream service. Tokens are stateless: validity is
// recomputed from the token's own signed claims plus the process-wide secret,
// so no session store is consulted anywhere.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/shoplite/commerce-system/internal/core/domain"
)

// Claims is the decoded claim set of an identity token. Accessors are fixed
// and enumerated — there is no open-ended claim selector.
type Claims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token is past its validity window at now.
func (c Claims) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// Codec issues and verifies HS256-signed identity tokens. The signing secret
// and validity window are fixed at construction; a key rollover means a new
// Codec, not a mutation.
type Codec struct {
	secret   []byte
	validity time.Duration
}

const defaultValidity = 24 * time.Hour

func NewCodec(secret string, validity time.Duration) *Codec {
	if validity <= 0 {
		validity = defaultValidity
	}
	return &Codec{secret: []byte(secret), validity: validity}
}

// Issue mints a token for subject with the configured validity window.
// Deterministic for a fixed secret, subject and clock reading.
func (c *Codec) Issue(subject string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse decodes and verifies a token. Any structural or signature failure
// yields domain.ErrMalformedToken; expiry is NOT checked here so callers can
// distinguish a forged token from a merely stale one.
func (c *Codec) Parse(raw string) (Claims, error) {
	var rc jwt.RegisteredClaims
	t, err := jwt.ParseWithClaims(raw, &rc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !t.Valid {
		return Claims{}, domain.ErrMalformedToken
	}
	if rc.ExpiresAt == nil || rc.IssuedAt == nil {
		return Claims{}, domain.ErrMalformedToken
	}

	return Claims{
		Subject:   rc.Subject,
		IssuedAt:  rc.IssuedAt.Time,
		ExpiresAt: rc.ExpiresAt.Time,
	}, nil
}

// Subject returns the subject claim of raw, or ErrMalformedToken.
func (c *Codec) Subject(raw string) (string, error) {
	claims, err := c.Parse(raw)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExpiresAt returns the expiry claim of raw, or ErrMalformedToken.
func (c *Codec) ExpiresAt(raw string) (time.Time, error) {
	claims, err := c.Parse(raw)
	if err != nil {
		return time.Time{}, err
	}
	return claims.ExpiresAt, nil
}
