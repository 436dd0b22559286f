// Package bridge is the HTTP client for the n8n workflow webhooks. The
// heavy lifting (TTS rendering, the actual YouTube upload, analytics
// collection, cross-posting) lives in n8n workflows; this package just
// speaks their webhook contract with retries and per-capability timeouts.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"faceless-pipeline/config"
	"faceless-pipeline/types"
)

// Per-capability timeouts. TTS renders minutes of audio and uploads move
// hundreds of megabytes, so they get far more slack than the read-only
// calls.
const (
	ttsTimeout        = 60 * time.Second
	uploadTimeout     = 300 * time.Second
	analyticsTimeout  = 10 * time.Second
	distributeTimeout = 30 * time.Second
	shortenTimeout    = 10 * time.Second
	notifyTimeout     = 5 * time.Second
)

// WebhookError is a non-retryable rejection from a webhook: a 4xx status
// or a response whose body reports status "error".
type WebhookError struct {
	Path       string
	StatusCode int
	Message    string
}

func (e *WebhookError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("webhook %s: %s (HTTP %d)", e.Path, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("webhook %s: HTTP %d", e.Path, e.StatusCode)
}

// Client calls the n8n webhook endpoints.
type Client struct {
	baseURL     string
	cfg         config.WebhooksConfig
	httpClient  *http.Client
	maxAttempts int
	backoff     time.Duration // sleep attempt*backoff between retries
}

// New creates a Client from pipeline configuration.
func New(cfg *config.Config) *Client {
	attempts := cfg.Webhooks.MaxAttempts
	if attempts <= 0 {
		attempts = 3
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.Webhooks.BaseURL, "/"),
		cfg:         cfg.Webhooks,
		httpClient:  &http.Client{},
		maxAttempts: attempts,
		backoff:     2 * time.Second,
	}
}

// TTSRequest is the payload for the TTS generation workflow.
type TTSRequest struct {
	Title       string  `json:"title"`
	Text        string  `json:"text"`
	DurationSec float64 `json:"estimated_duration_sec"`
}

// UploadRequest is the payload for the YouTube upload workflow.
type UploadRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	AudioURL    string   `json:"audio_url,omitempty"`
	VideoPath   string   `json:"video_path,omitempty"`
	Visibility  string   `json:"visibility"`
	PublishAt   string   `json:"publish_at,omitempty"` // RFC3339, empty = immediate
}

// DistributeRequest is the payload for cross-platform distribution.
type DistributeRequest struct {
	Title     string   `json:"title"`
	VideoURL  string   `json:"video_url"`
	Platforms []string `json:"platforms,omitempty"` // empty = workflow default set
}

// GenerateTTS sends the script text to the TTS workflow.
func (c *Client) GenerateTTS(ctx context.Context, req TTSRequest) (*types.TTSResult, error) {
	var out types.TTSResult
	if err := c.post(ctx, c.cfg.TTSPath, ttsTimeout, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload hands the finished video (or audio for the workflow to assemble)
// to the upload workflow.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (*types.UploadResult, error) {
	var out types.UploadResult
	if err := c.post(ctx, c.cfg.UploadPath, uploadTimeout, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analytics fetches the current channel snapshot.
func (c *Client) Analytics(ctx context.Context, channelID string) (*types.AnalyticsSnapshot, error) {
	var out types.AnalyticsSnapshot
	payload := map[string]string{"channel_id": channelID}
	if err := c.post(ctx, c.cfg.AnalyticsPath, analyticsTimeout, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Distribute cross-posts an uploaded video.
func (c *Client) Distribute(ctx context.Context, req DistributeRequest) (*types.DistributeResult, error) {
	var out types.DistributeResult
	if err := c.post(ctx, c.cfg.DistributePath, distributeTimeout, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ShortenLink runs an affiliate URL through the shortener workflow.
func (c *Client) ShortenLink(ctx context.Context, longURL, campaign string) (*types.ShortenResult, error) {
	var out types.ShortenResult
	payload := map[string]string{"url": longURL, "campaign": campaign}
	if err := c.post(ctx, c.cfg.ShortenPath, shortenTimeout, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// NotifyError reports a pipeline failure to the error workflow. Best
// effort: a missing error path or a failed notification never masks the
// original failure, so this only logs.
func (c *Client) NotifyError(ctx context.Context, stage string, cause error) {
	if c.cfg.ErrorPath == "" {
		return
	}
	payload := map[string]string{
		"stage": stage,
		"error": cause.Error(),
		"at":    time.Now().UTC().Format(time.RFC3339),
	}
	var out struct {
		Status string `json:"status"`
	}
	if err := c.post(ctx, c.cfg.ErrorPath, notifyTimeout, payload, &out); err != nil {
		log.Printf("[bridge] ⚠️ error notification failed: %v", err)
	}
}

// envelope is the minimal shape every workflow response must carry.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// post sends one JSON payload and decodes the response into out. Transient
// failures (connection errors, 5xx) are retried with linear backoff; 4xx
// and malformed responses fail immediately.
func (c *Client) post(ctx context.Context, path string, timeout time.Duration, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	url := c.baseURL + path

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		respBody, err := c.doOnce(ctx, url, timeout, body)
		if err == nil {
			return decode(path, respBody, out)
		}
		lastErr = err

		var we *WebhookError
		if errors.As(err, &we) {
			return err
		}
		if attempt < c.maxAttempts {
			log.Printf("[bridge] Attempt %d failed for %s: %v — retrying...", attempt, path, err)
			select {
			case <-time.After(time.Duration(attempt) * c.backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("webhook %s failed after %d attempts: %w", path, c.maxAttempts, lastErr)
}

func (c *Client) doOnce(ctx context.Context, url string, timeout time.Duration, body []byte) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	if resp.StatusCode >= 400 {
		return nil, &WebhookError{Path: url, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}
	return respBody, nil
}

// decode enforces the response contract: non-empty body, valid JSON, a
// status field present, and status != "error".
func decode(path string, body []byte, out any) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &WebhookError{Path: path, StatusCode: http.StatusOK, Message: "empty response body"}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("webhook %s: parse response: %w", path, err)
	}
	if env.Status == "" {
		return &WebhookError{Path: path, StatusCode: http.StatusOK, Message: "response missing status field"}
	}
	if env.Status == "error" {
		return &WebhookError{Path: path, StatusCode: http.StatusOK, Message: env.Message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("webhook %s: parse response: %w", path, err)
	}
	return nil
}
