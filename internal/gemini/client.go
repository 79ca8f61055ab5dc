package gemini

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// meterPrompt is the fixed instruction sent with every image.
const meterPrompt = "Tell me the measurement of this meter."

// uploadMimeType is the content type declared to the provider's file store.
// It is fixed regardless of the actual image encoding; Gemini accepts the
// mismatch for common raster formats.
const uploadMimeType = "image/jpeg"

// Client extracts meter readings by uploading the stored photo to the
// Gemini file store and asking a vision model to describe it. One attempt
// per request, bounded by the configured timeout.
type Client struct {
	apiKey  string
	model   string
	timeout time.Duration
}

func NewClient(apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		timeout: timeout,
	}
}

// Extract uploads the image at imagePath and returns the first text segment
// of the model's first candidate.
func (c *Client) Extract(ctx context.Context, imagePath string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini: API key is empty")
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	f, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("gemini: failed to open image: %w", err)
	}
	defer f.Close()

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: failed to create client: %w", err)
	}
	defer cl.Close()

	uploaded, err := cl.UploadFile(ctx, "", f, &genai.UploadFileOptions{
		MIMEType:    uploadMimeType,
		DisplayName: "measurement",
	})
	if err != nil {
		return "", fmt.Errorf("gemini: file upload failed: %w", err)
	}

	m := cl.GenerativeModel(c.model)
	resp, err := m.GenerateContent(ctx,
		genai.FileData{MIMEType: uploaded.MIMEType, URI: uploaded.URI},
		genai.Text(meterPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content failed: %w", err)
	}

	txt := firstText(resp)
	if txt == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return txt, nil
}

func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				return string(t)
			}
		}
	}
	return ""
}
