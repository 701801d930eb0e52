package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
	"github.com/gandhamathanv-guvi/voice-translator/pkg/apierror"
)

const (
	minUsernameLength = 3
	minPasswordLength = 6
	bcryptCost        = 12
)

// UserStore is the credential store contract the auth service depends
// on. Create must fail with model.ErrUserAlreadyExists when the
// username is taken; the storage layer's uniqueness constraint decides
// the winner of concurrent signups.
type UserStore interface {
	Create(ctx context.Context, u model.User) error
	FindByUsername(ctx context.Context, username string) (model.User, error)
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup validates the hard-coded length policy before touching the
// store, hashes the password, and creates the user.
func (s *AuthService) Signup(ctx context.Context, username string, password string) error {
	username = strings.TrimSpace(username)

	if len(username) < minUsernameLength {
		return apierror.BadRequest("Username must be at least 3 characters long")
	}
	if len(password) < minPasswordLength {
		return apierror.BadRequest("Password must be at least 6 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return err
	}

	slog.Info("user created", "username", username)
	return nil
}

// Login verifies credentials and issues an access token. Unknown
// username and wrong password collapse into the same error so callers
// cannot probe which usernames exist.
func (s *AuthService) Login(ctx context.Context, username string, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", model.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.Username)
}

// VerifyToken resolves a bearer token to its username claim.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	return s.tokens.Verify(tokenString)
}
