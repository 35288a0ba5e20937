package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every way a token can fail verification. Callers
// must not tell the causes apart, a 401 is a 401
var ErrInvalidToken = errors.New("invalid token")

const DefaultTokenTTL = 30 * time.Minute

// TokenService issues and verifies HS256 signed bearer tokens. Built once at
// startup from config and passed around by reference, the secret is never
// read from a global
type TokenService struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenService{
		Secret: secret,
		TTL:    ttl,
	}
}

// Issue creates a token for subject expiring after the service's default TTL
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.TTL)
}

func (s *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})

	return t.SignedString(s.Secret)
}

// Verify checks signature, signing method and expiry and returns the subject.
// Any failure comes back as ErrInvalidToken
func (s *TokenService) Verify(tokenStr string) (subject string, err error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
