// Package token issues and verifies the JWT bearer tokens used by the API.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/code19m/errx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	CodeExpiredToken = "EXPIRED_TOKEN"
	CodeInvalidToken = "INVALID_TOKEN"

	minSecretKeySize = 16
)

// JWTMaker creates and verifies HS256-signed JSON Web Tokens.
type JWTMaker struct {
	secretKey string
}

// NewJWTMaker creates a new JWTMaker. The secret key must be at least
// minSecretKeySize characters long.
func NewJWTMaker(secretKey string) (*JWTMaker, error) {
	if len(secretKey) < minSecretKeySize {
		return nil, errx.New(fmt.Sprintf("invalid key size: must be at least %d characters", minSecretKeySize))
	}
	return &JWTMaker{secretKey: secretKey}, nil
}

// CreateToken issues a signed token for the given subject with the given
// lifetime. It returns the signed token string and its payload.
func (maker *JWTMaker) CreateToken(sub string, duration time.Duration) (string, *Payload, error) {
	payload, err := NewPayload(sub, duration)
	if err != nil {
		return "", nil, errx.Wrap(err)
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := jwtToken.SignedString([]byte(maker.secretKey))
	if err != nil {
		return "", nil, errx.Wrap(err)
	}

	return signed, payload, nil
}

// VerifyToken checks the signature and validity window of a token and
// returns its payload. Expired and malformed tokens yield errors with
// distinct codes.
func (maker *JWTMaker) VerifyToken(token string) (*Payload, error) {
	keyFunc := func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errx.New("unexpected signing method", errx.WithCode(CodeInvalidToken))
		}
		return []byte(maker.secretKey), nil
	}

	jwtToken, err := jwt.ParseWithClaims(token, &Payload{}, keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errx.New("token is expired", errx.WithCode(CodeExpiredToken))
		}
		return nil, errx.Wrap(err, errx.WithCode(CodeInvalidToken))
	}

	payload, ok := jwtToken.Claims.(*Payload)
	if !ok {
		return nil, errx.New("invalid token claims", errx.WithCode(CodeInvalidToken))
	}

	return payload, nil
}

// Payload contains the claims carried by a token.
type Payload struct {
	ID        uuid.UUID        `json:"jti"`
	Subject   string           `json:"sub"`
	IssuedAt  *jwt.NumericDate `json:"iat"`
	ExpiresAt *jwt.NumericDate `json:"exp"`
}

// NewPayload creates a token payload for the given subject and lifetime.
func NewPayload(sub string, duration time.Duration) (*Payload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return nil, errx.Wrap(err)
	}

	now := time.Now()
	return &Payload{
		ID:        tokenID,
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
	}, nil
}

// GetExpirationTime implements jwt.Claims.
func (p *Payload) GetExpirationTime() (*jwt.NumericDate, error) { return p.ExpiresAt, nil }

// GetIssuedAt implements jwt.Claims.
func (p *Payload) GetIssuedAt() (*jwt.NumericDate, error) { return p.IssuedAt, nil }

// GetNotBefore implements jwt.Claims.
func (p *Payload) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

// GetIssuer implements jwt.Claims.
func (p *Payload) GetIssuer() (string, error) { return "", nil }

// GetSubject implements jwt.Claims.
func (p *Payload) GetSubject() (string, error) { return p.Subject, nil }

// GetAudience implements jwt.Claims.
func (p *Payload) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }
