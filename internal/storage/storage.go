package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// StoredImage describes a persisted meter photo. The ID is minted per
// request and never reused; the blob itself is never updated or deleted by
// the pipeline.
type StoredImage struct {
	ID       uuid.UUID
	Path     string
	MimeType string
}

// Storage writes decoded images under a local root directory, the same root
// the HTTP server exposes at /uploads.
type Storage struct {
	root    string
	baseURL string
}

func New(root, baseURL string) *Storage {
	return &Storage{root: root, baseURL: baseURL}
}

// Store persists the image bytes under a freshly generated identifier. The
// file is synced to disk before returning so the subsequent provider upload
// never races a partial write.
func (s *Storage) Store(data []byte) (*StoredImage, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", s.root, err)
	}

	id := uuid.New()
	path := filepath.Join(s.root, id.String()+".png")

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to sync %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close %s: %w", path, err)
	}

	return &StoredImage{
		ID:       id,
		Path:     path,
		MimeType: "image/png",
	}, nil
}

// PublicURL returns the address where the static file server exposes the
// stored image.
func (s *Storage) PublicURL(id uuid.UUID) string {
	return strings.TrimSuffix(s.baseURL, "/") + "/uploads/" + id.String() + ".png"
}
