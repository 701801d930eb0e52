package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
)

type tokenVerifier interface {
	VerifyToken(tokenString string) (string, error)
}

type contextKey string

const usernameContextKey contextKey = "auth_username"

type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// RequireAuth rejects the request before any handler work when the
// bearer token is missing, invalid, or expired.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if header == "" {
			writeUnauthorized(w, "Authorization header missing")
			return
		}
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			writeUnauthorized(w, "Invalid authorization header")
			return
		}

		token := strings.TrimSpace(header[7:])
		username, err := m.verifier.VerifyToken(token)
		if err != nil {
			if errors.Is(err, model.ErrTokenExpired) {
				writeUnauthorized(w, "Token expired")
			} else {
				writeUnauthorized(w, "Invalid token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), usernameContextKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameContextKey).(string)
	return username, ok
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	_ = json.NewEncoder(w).Encode(model.ErrorResponse{
		Error: &model.APIError{
			Code:    "UNAUTHORIZED",
			Message: message,
		},
	})
}
