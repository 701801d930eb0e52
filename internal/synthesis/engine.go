// Package synthesis wraps the external text-to-speech engine behind a
// narrow call contract. The engine is a black box reached over HTTP;
// language codes are passed through unvalidated and bad codes surface
// as engine errors.
package synthesis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
)

const speechPath = "/api/tts"

// Synthesizer converts text in a given language to audio bytes.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, language string) ([]byte, error)
}

type speechRequest struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// engineError is the JSON error body the speech engine returns on
// non-200 responses.
type engineError struct {
	Detail string `json:"detail"`
}

type Engine struct {
	baseURL    string
	httpClient *http.Client
}

func NewEngine(baseURL string, timeout time.Duration) *Engine {
	return &Engine{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (e *Engine) Synthesize(ctx context.Context, text string, language string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", model.ErrSynthesisFailed)
	}
	if language == "" {
		language = "en"
	}

	payload, err := json.Marshal(speechRequest{Text: text, Language: language})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", model.ErrSynthesisFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+speechPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", model.ErrSynthesisFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: call speech engine at %s: %v", model.ErrSynthesisFailed, e.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", model.ErrSynthesisFailed, readEngineError(resp))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", model.ErrSynthesisFailed, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: engine returned empty audio", model.ErrSynthesisFailed)
	}

	return audio, nil
}

func readEngineError(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return fmt.Sprintf("engine returned status %s", resp.Status)
	}

	var parsed engineError
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		return fmt.Sprintf("engine returned status %s: %s", resp.Status, parsed.Detail)
	}

	return fmt.Sprintf("engine returned status %s: %s", resp.Status, strings.TrimSpace(string(body)))
}
