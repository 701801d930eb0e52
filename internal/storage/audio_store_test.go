package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioStore_Save(t *testing.T) {
	store, err := NewAudioStore(t.TempDir())
	require.NoError(t, err)

	path, url, err := store.Save([]byte("mp3-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/static/audio/voice_"))
	assert.True(t, strings.HasSuffix(url, ".mp3"))
	assert.Equal(t, filepath.Base(path), strings.TrimPrefix(url, "/static/audio/"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), data)
}

func TestAudioStore_SaveUniqueNames(t *testing.T) {
	store, err := NewAudioStore(t.TempDir())
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		_, url, err := store.Save([]byte("x"))
		require.NoError(t, err)
		require.False(t, seen[url], "duplicate audio name %s", url)
		seen[url] = true
	}
}

func TestAudioStore_SaveEmptyAudio(t *testing.T) {
	store, err := NewAudioStore(t.TempDir())
	require.NoError(t, err)

	_, _, err = store.Save(nil)
	assert.Error(t, err)
}

func TestAudioStore_CreatesAudioDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "static")

	_, err := NewAudioStore(root)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "audio"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAudioStore_EmptyRootRejected(t *testing.T) {
	_, err := NewAudioStore("   ")
	assert.Error(t, err)
}
