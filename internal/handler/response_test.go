package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
	"github.com/gandhamathanv-guvi/voice-translator/pkg/apierror"
)

func recordError(t *testing.T, err error) (int, model.ErrorResponse) {
	t.Helper()

	rec := httptest.NewRecorder()
	writeError(rec, err)

	var body model.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return rec.Code, body
}

func TestWriteError_Mapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"api error", apierror.BadRequest("Username must be at least 3 characters long"), http.StatusBadRequest, "BAD_REQUEST"},
		{"duplicate username is 400", model.ErrUserAlreadyExists, http.StatusBadRequest, "ALREADY_EXISTS"},
		{"invalid credentials", model.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"expired token", model.ErrTokenExpired, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"invalid token", model.ErrTokenInvalid, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"synthesis failure", fmt.Errorf("%w: engine down", model.ErrSynthesisFailed), http.StatusInternalServerError, "SYNTHESIS_FAILED"},
		{"translation failure", fmt.Errorf("%w: engine down", model.ErrTranslationFailed), http.StatusInternalServerError, "TRANSLATION_FAILED"},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, body := recordError(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantCode, body.Error.Code)
		})
	}
}

func TestWriteError_HidesUnderlyingAdapterMessage(t *testing.T) {
	_, body := recordError(t, fmt.Errorf("%w: secret internal detail", model.ErrSynthesisFailed))

	assert.Equal(t, "Failed to generate audio", body.Error.Message)
	assert.NotContains(t, body.Error.Message, "secret internal detail")
	assert.Empty(t, body.Error.Details)
}

func TestLanguageHandler_List(t *testing.T) {
	rec := httptest.NewRecorder()
	NewLanguageHandler().List(rec, httptest.NewRequest(http.MethodGet, "/supported-languages", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body model.LanguagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, model.SupportedLanguages(), body.Languages)
}
