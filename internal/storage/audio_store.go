// Package storage persists generated audio artifacts under the static
// root so the file server can expose them. Files accumulate without
// cleanup; nothing in this system deletes or expires them.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	audioSubdir = "audio"
	audioExt    = ".mp3"
	publicBase  = "/static/audio/"
)

type AudioStore struct {
	staticRoot string
}

func NewAudioStore(staticRoot string) (*AudioStore, error) {
	if strings.TrimSpace(staticRoot) == "" {
		return nil, errors.New("static root is required")
	}

	if err := os.MkdirAll(filepath.Join(staticRoot, audioSubdir), 0o755); err != nil {
		return nil, fmt.Errorf("create audio directory: %w", err)
	}

	return &AudioStore{staticRoot: staticRoot}, nil
}

func (s *AudioStore) Root() string {
	return s.staticRoot
}

// Save writes the audio bytes under a random unique name and returns
// the file path on disk and the public retrieval URL.
func (s *AudioStore) Save(audio []byte) (string, string, error) {
	if len(audio) == 0 {
		return "", "", errors.New("audio data is empty")
	}

	name := "voice_" + strings.ReplaceAll(uuid.NewString(), "-", "") + audioExt
	path := filepath.Join(s.staticRoot, audioSubdir, name)

	if err := os.WriteFile(path, audio, 0o644); err != nil {
		return "", "", fmt.Errorf("write audio file: %w", err)
	}

	return path, publicBase + name, nil
}
