package jwtadapter

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies HMAC bearer tokens with a username subject.
type Codec struct {
	Secret    []byte
	Algorithm string
	TTL       time.Duration
}

func (c Codec) method() (jwt.SigningMethod, error) {
	algorithm := c.Algorithm
	if algorithm == "" {
		algorithm = "HS256"
	}
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC", algorithm)
	}
	return method, nil
}

func (c Codec) Issue(username string, now time.Time) (string, error) {
	method, err := c.method()
	if err != nil {
		return "", err
	}
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(c.TTL)),
	}
	return jwt.NewWithClaims(method, claims).SignedString(c.Secret)
}

func (c Codec) Parse(token string) (string, error) {
	method, err := c.method()
	if err != nil {
		return "", err
	}
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != method.Alg() {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return c.Secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}
