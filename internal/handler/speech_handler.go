package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
	"github.com/gandhamathanv-guvi/voice-translator/internal/service"
	"github.com/gandhamathanv-guvi/voice-translator/pkg/apierror"
)

type SpeechHandler struct {
	service *service.SpeechService
}

func NewSpeechHandler(service *service.SpeechService) *SpeechHandler {
	return &SpeechHandler{service: service}
}

func (h *SpeechHandler) GenerateAudio(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.GenerateAudioRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	audioURL, err := h.service.GenerateAudio(r.Context(), payload.Text, payload.Language)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AudioResponse{
		Message:  "Audio generated successfully",
		AudioURL: audioURL,
		Language: payload.Language,
		Text:     payload.Text,
	})
}

func (h *SpeechHandler) TextToSpeech(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.TTSRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	audioURL, err := h.service.GenerateAudio(r.Context(), payload.Text, payload.Language)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.AudioResponse{
		AudioURL: audioURL,
		Language: payload.Language,
		Text:     payload.Text,
	})
}

// TranslateAndSpeak always answers 200; item failures are embedded in
// the results list, never raised to request level.
func (h *SpeechHandler) TranslateAndSpeak(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.TranslateAndSpeakRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	results := h.service.TranslateAndSpeak(r.Context(), payload.Text, payload.TargetLanguages, payload.SourceLanguage)
	writeJSON(w, http.StatusOK, model.TranslateAndSpeakResponse{Results: results})
}

func (h *SpeechHandler) MultiLanguageSpeak(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.MultiLanguageSpeakRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.BadRequest("invalid JSON body"))
		return
	}

	results := h.service.MultiLanguageSpeak(r.Context(), payload.Texts)
	writeJSON(w, http.StatusOK, model.MultiLanguageSpeakResponse{Results: results})
}
