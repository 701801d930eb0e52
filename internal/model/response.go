package model

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AudioResponse struct {
	Message  string `json:"message,omitempty"`
	AudioURL string `json:"audio_url"`
	Language string `json:"language"`
	Text     string `json:"text"`
}

// TranslationResult is one entry of a translate-and-speak response.
// AudioURL is nil when the item failed; TranslatedText then carries the
// fixed failure marker instead of engine output.
type TranslationResult struct {
	Language       string  `json:"language"`
	TranslatedText string  `json:"translated_text"`
	AudioURL       *string `json:"audio_url"`
}

type TranslateAndSpeakResponse struct {
	Results []TranslationResult `json:"results"`
}

// SpeechResult is one entry of a multi-language-speak response. Status
// is either "success" or "error"; Message is set only for errors.
type SpeechResult struct {
	Language string `json:"language"`
	Text     string `json:"text,omitempty"`
	AudioURL string `json:"audio_url,omitempty"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
}

type MultiLanguageSpeakResponse struct {
	Results []SpeechResult `json:"results"`
}

type MeResponse struct {
	Username string `json:"username"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database,omitempty"`
}

type LanguagesResponse struct {
	Languages map[string]string `json:"languages"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type ErrorResponse struct {
	Error *APIError `json:"error"`
}
