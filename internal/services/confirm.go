package services

import (
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ConfirmClaims is the signed payload that carries a committed response to
// the confirmation step. The session is cleared at commit time, so these
// values travel by value instead of being re-read.
type ConfirmClaims struct {
	Details RespondentIdentity `json:"details"`
	Answers map[string]string  `json:"answers"`
	jwt.RegisteredClaims
}

// ConfirmationSigner signs and verifies short-lived confirmation tokens.
type ConfirmationSigner struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewConfirmationSigner(secret []byte, ttl time.Duration) *ConfirmationSigner {
	return &ConfirmationSigner{
		secret: secret,
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Sign wraps the committed details and answers in an HS256 token.
func (s *ConfirmationSigner) Sign(details RespondentIdentity, answers map[string]string) (string, error) {
	now := s.now()
	claims := ConfirmClaims{
		Details: details,
		Answers: answers,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies a confirmation token and returns its claims. Expired or
// malformed tokens come back as an unauthorized ServiceError.
func (s *ConfirmationSigner) Parse(tok string) (*ConfirmClaims, error) {
	t, err := jwt.ParseWithClaims(tok, &ConfirmClaims{},
		func(token *jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, NewUnauthorizedError("invalid confirmation token")
	}
	if c, ok := t.Claims.(*ConfirmClaims); ok && t.Valid {
		return c, nil
	}
	return nil, NewUnauthorizedError("invalid confirmation token")
}
