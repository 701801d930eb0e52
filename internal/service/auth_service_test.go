package service

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
	"github.com/gandhamathanv-guvi/voice-translator/pkg/apierror"
)

// memoryUserStore mimics the credential store contract, including the
// at-most-one-winner guarantee for concurrent creates.
type memoryUserStore struct {
	mu          sync.Mutex
	users       map[string]model.User
	createCalls int
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[string]model.User{}}
}

func (s *memoryUserStore) Create(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createCalls++
	key := strings.ToLower(u.Username)
	if _, exists := s.users[key]; exists {
		return model.ErrUserAlreadyExists
	}
	s.users[key] = u
	return nil
}

func (s *memoryUserStore) FindByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, exists := s.users[strings.ToLower(strings.TrimSpace(username))]
	if !exists {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func newTestAuthService(t *testing.T, store UserStore) *AuthService {
	t.Helper()

	tokens, err := NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	return NewAuthService(store, tokens)
}

func TestAuthService_SignupValidation(t *testing.T) {
	store := newMemoryUserStore()
	svc := newTestAuthService(t, store)

	t.Run("short username rejected before storage", func(t *testing.T) {
		err := svc.Signup(context.Background(), "ab", "password123")
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.HTTPStatus)
		assert.Zero(t, store.createCalls)
	})

	t.Run("short password rejected before storage", func(t *testing.T) {
		err := svc.Signup(context.Background(), "alice", "12345")
		var apiErr *apierror.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, 400, apiErr.HTTPStatus)
		assert.Zero(t, store.createCalls)
	})

	t.Run("valid credentials accepted", func(t *testing.T) {
		require.NoError(t, svc.Signup(context.Background(), "alice", "password123"))
		assert.Equal(t, 1, store.createCalls)
	})
}

func TestAuthService_SignupStoresHashedPassword(t *testing.T) {
	store := newMemoryUserStore()
	svc := newTestAuthService(t, store)

	require.NoError(t, svc.Signup(context.Background(), "alice", "password123"))

	user, err := store.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password123")))
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestAuthService_SignupDuplicateUsername(t *testing.T) {
	store := newMemoryUserStore()
	svc := newTestAuthService(t, store)

	require.NoError(t, svc.Signup(context.Background(), "alice", "password123"))
	err := svc.Signup(context.Background(), "alice", "otherpassword")
	assert.ErrorIs(t, err, model.ErrUserAlreadyExists)
}

func TestAuthService_ConcurrentSignupSingleWinner(t *testing.T) {
	store := newMemoryUserStore()
	svc := newTestAuthService(t, store)

	const attempts = 8
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Signup(context.Background(), "alice", "password123")
		}()
	}
	wg.Wait()
	close(errs)

	var succeeded, conflicted int
	for err := range errs {
		switch {
		case err == nil:
			succeeded++
		default:
			require.ErrorIs(t, err, model.ErrUserAlreadyExists)
			conflicted++
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)
}

func TestAuthService_Login(t *testing.T) {
	store := newMemoryUserStore()
	svc := newTestAuthService(t, store)
	require.NoError(t, svc.Signup(context.Background(), "alice", "password123"))

	t.Run("unknown user yields generic error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "nobody", "password123")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("wrong password yields same generic error", func(t *testing.T) {
		_, err := svc.Login(context.Background(), "alice", "wrongpassword")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("valid credentials yield verifiable token", func(t *testing.T) {
		token, err := svc.Login(context.Background(), "alice", "password123")
		require.NoError(t, err)

		username, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, "alice", username)
	})
}
