package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
	"github.com/gandhamathanv-guvi/voice-translator/internal/synthesis"
	"github.com/gandhamathanv-guvi/voice-translator/internal/translation"
)

const (
	defaultLanguage = "en"

	// translationFailedMarker replaces the translated text of a failed
	// translate-and-speak item. The exact string is part of the API.
	translationFailedMarker = "Translation failed"
)

// AudioSaver persists synthesized audio and returns its on-disk path
// and public URL.
type AudioSaver interface {
	Save(audio []byte) (filePath string, url string, err error)
}

// SpeechService sequences calls to the translation and speech engines
// and stores the resulting audio. Batch operations iterate their items
// strictly in order and isolate failures per item.
type SpeechService struct {
	synthesizer synthesis.Synthesizer
	translator  translation.Translator
	audio       AudioSaver
}

func NewSpeechService(synthesizer synthesis.Synthesizer, translator translation.Translator, audio AudioSaver) *SpeechService {
	return &SpeechService{
		synthesizer: synthesizer,
		translator:  translator,
		audio:       audio,
	}
}

// GenerateAudio synthesizes the text and stores the audio file. Any
// engine or storage failure propagates to the caller; there is no
// per-item recovery on the single-item path.
func (s *SpeechService) GenerateAudio(ctx context.Context, text string, language string) (string, error) {
	if language == "" {
		language = defaultLanguage
	}

	audio, err := s.synthesizer.Synthesize(ctx, text, language)
	if err != nil {
		return "", err
	}

	_, audioURL, err := s.audio.Save(audio)
	if err != nil {
		return "", err
	}

	return audioURL, nil
}

// TranslateAndSpeak translates the text into each target language in
// the order given and synthesizes the translation. A failed step marks
// that item with the fixed failure string and a nil audio URL; later
// items still run.
func (s *SpeechService) TranslateAndSpeak(ctx context.Context, text string, targetLanguages []string, sourceLanguage string) []model.TranslationResult {
	results := make([]model.TranslationResult, 0, len(targetLanguages))

	for _, target := range targetLanguages {
		translated, err := s.translator.Translate(ctx, text, sourceLanguage, target)
		if err != nil {
			slog.Error("translation failed", "language", target, "error", err)
			results = append(results, failedTranslation(target))
			continue
		}

		audioURL, err := s.GenerateAudio(ctx, translated, target)
		if err != nil {
			slog.Error("audio generation failed", "language", target, "error", err)
			results = append(results, failedTranslation(target))
			continue
		}

		results = append(results, model.TranslationResult{
			Language:       target,
			TranslatedText: translated,
			AudioURL:       &audioURL,
		})
	}

	return results
}

// MultiLanguageSpeak synthesizes each {text, language} item
// independently. Items with no text are rejected without calling the
// engine; engine failures become per-item error entries.
func (s *SpeechService) MultiLanguageSpeak(ctx context.Context, items []model.SpeechItem) []model.SpeechResult {
	results := make([]model.SpeechResult, 0, len(items))

	for _, item := range items {
		language := item.Language
		if language == "" {
			language = defaultLanguage
		}

		if strings.TrimSpace(item.Text) == "" {
			results = append(results, model.SpeechResult{
				Language: language,
				Status:   "error",
				Message:  "Text is required",
			})
			continue
		}

		audioURL, err := s.GenerateAudio(ctx, item.Text, language)
		if err != nil {
			slog.Error("audio generation failed", "language", language, "error", err)
			results = append(results, model.SpeechResult{
				Language: language,
				Status:   "error",
				Message:  "Failed to generate audio",
			})
			continue
		}

		results = append(results, model.SpeechResult{
			Language: language,
			Text:     item.Text,
			AudioURL: audioURL,
			Status:   "success",
		})
	}

	return results
}

func failedTranslation(language string) model.TranslationResult {
	return model.TranslationResult{
		Language:       language,
		TranslatedText: translationFailedMarker,
		AudioURL:       nil,
	}
}
