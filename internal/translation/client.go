// Package translation wraps the external machine-translation engine.
// The wire format follows the public gtx endpoint: a GET with source,
// target, and query parameters, answered by a nested JSON array whose
// first element lists translated segments.
package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
)

const translatePath = "/translate_a/single"

// Translator converts text between languages. An empty source language
// requests auto-detection.
type Translator interface {
	Translate(ctx context.Context, text string, sourceLang string, targetLang string) (string, error)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Translate(ctx context.Context, text string, sourceLang string, targetLang string) (string, error) {
	if sourceLang == "" {
		sourceLang = "auto"
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("dt", "t")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+translatePath+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", model.ErrTranslationFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: call translation engine at %s: %v", model.ErrTranslationFailed, c.baseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: engine returned status %s", model.ErrTranslationFailed, resp.Status)
	}

	translated, err := decodeTranslation(resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrTranslationFailed, err)
	}

	return translated, nil
}

// decodeTranslation extracts the translated text from the engine's
// nested array response: [[["bonjour","hello",...], ...], ...]. Long
// inputs come back split into segments which are concatenated here.
func decodeTranslation(resp *http.Response) (string, error) {
	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response payload")
	}

	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected response shape")
	}

	var out strings.Builder
	for _, raw := range segments {
		segment, ok := raw.([]any)
		if !ok || len(segment) == 0 {
			continue
		}
		if part, ok := segment[0].(string); ok {
			out.WriteString(part)
		}
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("no translated segments in response")
	}

	return out.String(), nil
}
