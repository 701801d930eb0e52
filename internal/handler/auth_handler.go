package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gandhamathanv-guvi/voice-translator/internal/middleware"
	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
	"github.com/gandhamathanv-guvi/voice-translator/internal/service"
	"github.com/gandhamathanv-guvi/voice-translator/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	if err := h.service.Signup(r.Context(), payload.Username, payload.Password); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "User created successfully"})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	token, err := h.service.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	username, ok := middleware.UsernameFromContext(r.Context())
	if !ok {
		writeError(w, apierror.Unauthorized("authentication required"))
		return
	}

	writeJSON(w, http.StatusOK, model.MeResponse{Username: username})
}
