package handler

import (
	"net/http"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
)

type LanguageHandler struct{}

func NewLanguageHandler() *LanguageHandler {
	return &LanguageHandler{}
}

func (h *LanguageHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.LanguagesResponse{Languages: model.SupportedLanguages()})
}
