package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates storage with valid path", func(t *testing.T) {
		tmpDir := t.TempDir()
		storage, err := New(tmpDir, "https://media.example.com/")

		require.NoError(t, err)
		assert.Equal(t, tmpDir, storage.rootPath)
		assert.Equal(t, "https://media.example.com", storage.baseURL)

		_, err = os.Stat(tmpDir)
		assert.NoError(t, err)
	})

	t.Run("cleans path to prevent traversal", func(t *testing.T) {
		tmpDir := t.TempDir()
		dirtyPath := filepath.Join(tmpDir, "media", "..", "media")

		storage, err := New(dirtyPath, "https://media.example.com")

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "media"), storage.rootPath)
	})
}

func TestSave(t *testing.T) {
	t.Run("saves under owner prefix with generated name", func(t *testing.T) {
		storage, err := New(t.TempDir(), "https://media.example.com")
		require.NoError(t, err)

		relativePath, err := storage.Save(bytes.NewReader([]byte("payload")), 42, "holiday photo.png")
		require.NoError(t, err)

		assert.True(t, strings.HasPrefix(relativePath, "42"+string(filepath.Separator)))
		assert.True(t, strings.HasSuffix(relativePath, ".png"))
		// The original filename must not leak into the stored path.
		assert.NotContains(t, relativePath, "holiday")

		data, err := os.ReadFile(filepath.Join(storage.rootPath, relativePath))
		require.NoError(t, err)
		assert.Equal(t, "payload", string(data))
	})

	t.Run("consecutive saves get distinct names", func(t *testing.T) {
		storage, err := New(t.TempDir(), "https://media.example.com")
		require.NoError(t, err)

		first, err := storage.Save(bytes.NewReader([]byte("a")), 1, "x.jpg")
		require.NoError(t, err)
		second, err := storage.Save(bytes.NewReader([]byte("b")), 1, "x.jpg")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestPublicURL(t *testing.T) {
	storage, err := New(t.TempDir(), "https://media.example.com")
	require.NoError(t, err)

	url := storage.PublicURL(filepath.Join("42", "abc.png"))
	assert.Equal(t, "https://media.example.com/42/abc.png", url)
}

func TestDelete(t *testing.T) {
	storage, err := New(t.TempDir(), "https://media.example.com")
	require.NoError(t, err)

	relativePath, err := storage.Save(bytes.NewReader([]byte("payload")), 42, "x.png")
	require.NoError(t, err)

	require.NoError(t, storage.Delete(relativePath))
	_, err = os.Stat(filepath.Join(storage.rootPath, relativePath))
	assert.True(t, os.IsNotExist(err))

	// Deleting again is not an error.
	assert.NoError(t, storage.Delete(relativePath))
}
