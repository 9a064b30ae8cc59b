// Package tts wraps the external text-to-speech service. The service is an
// opaque dependency: one call in, one audio payload out, no retries.
package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wordnest/internal/model"
)

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type synthesizeRequest struct {
	Text string `json:"text"`
}

// Synthesize sends text to the service and returns the audio bytes with
// their content type.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	if c.endpoint == "" {
		return nil, "", model.NewAppError("TTS_UNCONFIGURED", "Audio pronunciation is not configured.", "", model.ErrInternalServer)
	}

	body, err := json.Marshal(synthesizeRequest{Text: text})
	if err != nil {
		return nil, "", fmt.Errorf("tts: marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, "", fmt.Errorf("tts: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("tts: calling service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("tts: service returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("tts: reading audio payload: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return audio, contentType, nil
}
