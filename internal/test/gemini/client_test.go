package gemini_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"meter-reading-backend/internal/gemini"
)

func TestClient_Extract_MissingAPIKey(t *testing.T) {
	client := gemini.NewClient("", "gemini-1.5-pro", time.Second)

	_, err := client.Extract(context.Background(), "/tmp/whatever.png")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key is empty")
}

func TestClient_Extract_MissingImage(t *testing.T) {
	client := gemini.NewClient("test-key", "gemini-1.5-pro", time.Second)

	_, err := client.Extract(context.Background(), filepath.Join(t.TempDir(), "missing.png"))

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open image")
}
