//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gandhamathanv-guvi/voice-translator/internal/config"
	"github.com/gandhamathanv-guvi/voice-translator/internal/handler"
	"github.com/gandhamathanv-guvi/voice-translator/internal/middleware"
	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
	"github.com/gandhamathanv-guvi/voice-translator/internal/router"
	"github.com/gandhamathanv-guvi/voice-translator/internal/service"
	"github.com/gandhamathanv-guvi/voice-translator/internal/storage"
	"github.com/gandhamathanv-guvi/voice-translator/internal/synthesis"
	"github.com/gandhamathanv-guvi/voice-translator/internal/translation"
)

// memoryUserStore stands in for the PostgreSQL credential store so the
// API tests run without a database. Uniqueness is enforced under a
// mutex, mirroring the unique-index guarantee.
type memoryUserStore struct {
	mu    sync.Mutex
	users map[string]model.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{users: map[string]model.User{}}
}

func (s *memoryUserStore) Create(_ context.Context, u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

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

// testEnv bundles the app under test with counters for the fake
// external engines so tests can assert adapters were (not) invoked.
type testEnv struct {
	server     *httptest.Server
	staticRoot string
	synthCalls func() int
}

// newTestServer wires the full router against fake speech and
// translation engines. A language of "xx-bad" fails in both engines.
func newTestServer(t *testing.T) *testEnv {
	t.Helper()

	var mu sync.Mutex
	synthCalls := 0

	speechEngine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		synthCalls++
		mu.Unlock()

		var req struct {
			Text     string `json:"text"`
			Language string `json:"language"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		if req.Language == "xx-bad" {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "unsupported language"})
			return
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3:" + req.Language))
	}))
	t.Cleanup(speechEngine.Close)

	translateEngine := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("tl") == "xx-bad" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		out := fmt.Sprintf("[%s] %s", q.Get("tl"), q.Get("q"))
		body, err := json.Marshal([]any{[]any{[]any{out, q.Get("q")}}, nil, "en"})
		require.NoError(t, err)
		_, _ = w.Write(body)
	}))
	t.Cleanup(translateEngine.Close)

	staticRoot := t.TempDir()
	audioStore, err := storage.NewAudioStore(staticRoot)
	require.NoError(t, err)

	tokenService, err := service.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)
	authService := service.NewAuthService(newMemoryUserStore(), tokenService)

	speechService := service.NewSpeechService(
		synthesis.NewEngine(speechEngine.URL, 5*time.Second),
		translation.NewClient(translateEngine.URL, 5*time.Second),
		audioStore,
	)

	cfg := &config.Config{
		ServerPort:       "8000",
		RequestTimeout:   30 * time.Second,
		StaticRoot:       staticRoot,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	appRouter := router.New(cfg, middleware.NewAuthMiddleware(authService), router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Speech:    handler.NewSpeechHandler(speechService),
		Languages: handler.NewLanguageHandler(),
		Pages:     handler.NewPagesHandler(staticRoot),
		Health:    handler.NewHealthHandler(nil),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)

	return &testEnv{
		server:     server,
		staticRoot: staticRoot,
		synthCalls: func() int {
			mu.Lock()
			defer mu.Unlock()
			return synthCalls
		},
	}
}

func postJSON(t *testing.T, url string, payload any, accessToken string) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func getWithToken(t *testing.T, url string, accessToken string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

// signupAndLogin registers a fresh user and returns a valid token.
func signupAndLogin(t *testing.T, env *testEnv, username string, password string) string {
	t.Helper()

	resp := postJSON(t, env.server.URL+"/signup", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = postJSON(t, env.server.URL+"/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var parsed model.TokenResponse
	decodeBody(t, resp, &parsed)
	require.NotEmpty(t, parsed.AccessToken)
	require.Equal(t, "bearer", parsed.TokenType)
	return parsed.AccessToken
}
