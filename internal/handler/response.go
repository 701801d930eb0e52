package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
	"github.com/gandhamathanv-guvi/voice-translator/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError maps service errors onto client responses. Messages stay
// generic; the underlying error is logged server-side instead.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := &model.APIError{
		Code:    "INTERNAL_ERROR",
		Message: "Unexpected server error",
	}

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		body.Code = apiErr.Code
		body.Message = apiErr.Message
		body.Details = apiErr.Details
	case errors.Is(err, model.ErrUserAlreadyExists):
		// The signup contract fixes 400 for taken usernames.
		status = http.StatusBadRequest
		body.Code = "ALREADY_EXISTS"
		body.Message = "Username already exists"
	case errors.Is(err, model.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid username or password"
	case errors.Is(err, model.ErrTokenExpired):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Token expired"
	case errors.Is(err, model.ErrTokenInvalid):
		status = http.StatusUnauthorized
		body.Code = "UNAUTHORIZED"
		body.Message = "Invalid token"
	case errors.Is(err, model.ErrSynthesisFailed):
		body.Code = "SYNTHESIS_FAILED"
		body.Message = "Failed to generate audio"
		slog.Error("synthesis failed", "error", err.Error())
	case errors.Is(err, model.ErrTranslationFailed):
		body.Code = "TRANSLATION_FAILED"
		body.Message = "Failed to translate text"
		slog.Error("translation failed", "error", err.Error())
	default:
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.ErrorResponse{Error: body})
}
