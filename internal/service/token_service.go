package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
)

// TokenService issues and verifies stateless HS256 bearer tokens. The
// signing secret and validity window are fixed at construction; tokens
// signed under a previous secret verify as invalid after a restart.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("token secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token carrying the username as subject, expiring after
// the configured validity window.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})

	return token.SignedString(s.secret)
}

// Verify returns the subject username of a valid token. Expired tokens
// yield model.ErrTokenExpired; any other defect (bad signature, wrong
// signing method, missing subject) yields model.ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", model.ErrTokenExpired
		}
		return "", model.ErrTokenInvalid
	}

	if !parsed.Valid || claims.Subject == "" {
		return "", model.ErrTokenInvalid
	}

	return claims.Subject, nil
}
