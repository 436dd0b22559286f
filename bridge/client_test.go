package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"faceless-pipeline/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.Default()
	cfg.Webhooks.BaseURL = srv.URL
	c := New(cfg)
	c.backoff = 0 // keep retry tests fast
	return c
}

func TestGenerateTTS(t *testing.T) {
	var gotPath string
	var gotReq TTSRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotReq)
		json.NewEncoder(w).Encode(map[string]any{
			"status":       "success",
			"audio_url":    "http://files/audio.mp3",
			"duration_sec": 346.2,
		})
	}))

	res, err := c.GenerateTTS(context.Background(), TTSRequest{
		Title: "7 Money Rules Nobody Teaches You",
		Text:  "Pay yourself first.",
	})
	if err != nil {
		t.Fatalf("GenerateTTS() error = %v", err)
	}
	if gotPath != "/webhook/tts-generation" {
		t.Errorf("path = %q, want /webhook/tts-generation", gotPath)
	}
	if gotReq.Title == "" || gotReq.Text == "" {
		t.Errorf("request payload incomplete: %+v", gotReq)
	}
	if res.Status != "success" || res.AudioURL == "" {
		t.Errorf("result = %+v", res)
	}
}

func TestUpload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/webhook/youtube-upload" {
			t.Errorf("path = %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "success",
			"video_id":  "abc123",
			"video_url": "https://youtu.be/abc123",
		})
	}))

	res, err := c.Upload(context.Background(), UploadRequest{
		Title:      "7 Money Rules Nobody Teaches You",
		Visibility: "private",
	})
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	if res.VideoID != "abc123" {
		t.Errorf("VideoID = %q, want abc123", res.VideoID)
	}
}

func TestRetriesTransientThenSucceeds(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "success", "channel_id": "ch1"})
	}))

	res, err := c.Analytics(context.Background(), "ch1")
	if err != nil {
		t.Fatalf("Analytics() error = %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server called %d times, want 3", got)
	}
	if res.ChannelID != "ch1" {
		t.Errorf("ChannelID = %q", res.ChannelID)
	}
}

func TestExhaustsRetriesOnPersistent5xx(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Analytics(context.Background(), "ch1")
	if err == nil {
		t.Fatal("Analytics() error = nil, want failure after retries")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("server called %d times, want 3", got)
	}
}

func TestClientErrorDoesNotRetry(t *testing.T) {
	var calls int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "unknown webhook", http.StatusNotFound)
	}))

	_, err := c.ShortenLink(context.Background(), "https://example.com/product", "launch")
	var we *WebhookError
	if !errors.As(err, &we) {
		t.Fatalf("error = %v, want *WebhookError", err)
	}
	if we.StatusCode != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", we.StatusCode)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("server called %d times, want 1 (no retry on 4xx)", got)
	}
}

func TestStatusErrorInBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "error", "message": "quota exceeded"})
	}))

	_, err := c.Upload(context.Background(), UploadRequest{Title: "t"})
	var we *WebhookError
	if !errors.As(err, &we) {
		t.Fatalf("error = %v, want *WebhookError", err)
	}
	if we.Message != "quota exceeded" {
		t.Errorf("Message = %q, want quota exceeded", we.Message)
	}
}

func TestMissingStatusField(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"video_id": "abc"})
	}))

	if _, err := c.Upload(context.Background(), UploadRequest{Title: "t"}); err == nil {
		t.Error("Upload() accepted a response without a status field")
	}
}

func TestEmptyBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	if _, err := c.Analytics(context.Background(), "ch1"); err == nil {
		t.Error("Analytics() accepted an empty response body")
	}
}

func TestDistributePlatforms(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"status": "success",
			"platforms": map[string]string{
				"tiktok":    "https://tiktok.com/v/1",
				"instagram": "https://instagram.com/p/2",
			},
		})
	}))

	res, err := c.Distribute(context.Background(), DistributeRequest{Title: "t", VideoURL: "https://youtu.be/abc"})
	if err != nil {
		t.Fatalf("Distribute() error = %v", err)
	}
	if len(res.Platforms) != 2 {
		t.Errorf("Platforms = %v, want 2 entries", res.Platforms)
	}
}

func TestNotifyErrorIsBestEffort(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		json.NewEncoder(w).Encode(map[string]string{"status": "success"})
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Webhooks.BaseURL = srv.URL
	cfg.Webhooks.ErrorPath = "/webhook/error-notification"
	c := New(cfg)
	c.backoff = 0

	c.NotifyError(context.Background(), "upload", errors.New("boom"))
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("error webhook called %d times, want 1", got)
	}

	// No error path configured: must be a no-op, not a panic.
	cfg.Webhooks.ErrorPath = ""
	New(cfg).NotifyError(context.Background(), "upload", errors.New("boom"))
}
