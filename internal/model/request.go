package model

type SignupRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type GenerateAudioRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type TTSRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type TranslateAndSpeakRequest struct {
	Text            string   `json:"text"`
	TargetLanguages []string `json:"target_languages"`
	SourceLanguage  string   `json:"source_language"`
}

// SpeechItem is one entry of a multi-language-speak request. Language
// defaults to "en" when omitted.
type SpeechItem struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

type MultiLanguageSpeakRequest struct {
	Texts []SpeechItem `json:"texts"`
}
