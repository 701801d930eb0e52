package translation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gandhamathanv-guvi/voice-translator/internal/model"
)

func TestClient_Translate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translate_a/single", r.URL.Path)
		q := r.URL.Query()
		require.Equal(t, "gtx", q.Get("client"))
		require.Equal(t, "auto", q.Get("sl"))
		require.Equal(t, "fr", q.Get("tl"))
		require.Equal(t, "hello world", q.Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[[["bonjour le monde","hello world",null,null,10]],null,"en"]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second)
	translated, err := client.Translate(context.Background(), "hello world", "", "fr")
	require.NoError(t, err)
	assert.Equal(t, "bonjour le monde", translated)
}

func TestClient_TranslateJoinsSegments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[[["premier segment. ","first segment. "],["second segment.","second segment."]],null,"en"]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second)
	translated, err := client.Translate(context.Background(), "first segment. second segment.", "en", "fr")
	require.NoError(t, err)
	assert.Equal(t, "premier segment. second segment.", translated)
}

func TestClient_TranslateExplicitSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "ta", r.URL.Query().Get("sl"))
		_, _ = w.Write([]byte(`[[["hello","வணக்கம்"]],null,"ta"]`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Translate(context.Background(), "வணக்கம்", "ta", "en")
	require.NoError(t, err)
}

func TestClient_TranslateEngineError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Translate(context.Background(), "hello", "", "xx-bad")
	assert.ErrorIs(t, err, model.ErrTranslationFailed)
}

func TestClient_TranslateMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":"shape"}`))
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, 5*time.Second)
	_, err := client.Translate(context.Background(), "hello", "", "fr")
	assert.ErrorIs(t, err, model.ErrTranslationFailed)
}

func TestClient_TranslateUnreachable(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)

	_, err := client.Translate(context.Background(), "hello", "", "fr")
	assert.ErrorIs(t, err, model.ErrTranslationFailed)
}
