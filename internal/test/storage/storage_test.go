package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"meter-reading-backend/internal/storage"
)

func TestStorage_Store(t *testing.T) {
	store := storage.New(t.TempDir(), "http://localhost:8080")

	data := []byte("fake-png-bytes")
	img, err := store.Store(data)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, img.ID)
	assert.Equal(t, "image/png", img.MimeType)
	assert.Equal(t, img.ID.String()+".png", filepath.Base(img.Path))

	written, err := os.ReadFile(img.Path)
	require.NoError(t, err)
	assert.Equal(t, data, written)
}

func TestStorage_Store_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	store := storage.New(root, "http://localhost:8080")

	img, err := store.Store([]byte("x"))
	require.NoError(t, err)
	assert.FileExists(t, img.Path)
}

func TestStorage_Store_UniqueIDs(t *testing.T) {
	store := storage.New(t.TempDir(), "http://localhost:8080")

	first, err := store.Store([]byte("same-bytes"))
	require.NoError(t, err)
	second, err := store.Store([]byte("same-bytes"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Path, second.Path)
}

func TestStorage_Store_UnwritableRoot(t *testing.T) {
	// A regular file where the root directory should be makes MkdirAll fail.
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	store := storage.New(filepath.Join(blocker, "uploads"), "http://localhost:8080")

	_, err := store.Store([]byte("x"))
	assert.Error(t, err)
}

func TestStorage_PublicURL(t *testing.T) {
	id := uuid.New()

	store := storage.New(t.TempDir(), "http://localhost:8080")
	assert.Equal(t, "http://localhost:8080/uploads/"+id.String()+".png", store.PublicURL(id))

	trailing := storage.New(t.TempDir(), "https://meters.example.com/")
	assert.Equal(t, "https://meters.example.com/uploads/"+id.String()+".png", trailing.PublicURL(id))
}
