package upload

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"faceless-pipeline/config"
	"faceless-pipeline/types"
)

func TestLogUpload(t *testing.T) {
	dir := t.TempDir()
	req := Request{
		VideoFile: "output/video.mp4",
		Title:     "7 Money Rules Nobody Teaches You",
		PublishAt: time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	}
	result := &types.UploadResult{Status: "success", VideoID: "abc123", VideoURL: "https://www.youtube.com/watch?v=abc123"}

	if err := LogUpload(dir, req, result); err != nil {
		t.Fatalf("LogUpload() error = %v", err)
	}

	matches, _ := filepath.Glob(filepath.Join(dir, "upload_*.json"))
	if len(matches) != 1 {
		t.Fatalf("found %d upload logs, want 1", len(matches))
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("upload log is not valid JSON: %v", err)
	}
	if entry["video_id"] != "abc123" {
		t.Errorf("video_id = %v, want abc123", entry["video_id"])
	}
	if entry["scheduled_utc"] != "2026-09-01T14:00:00Z" {
		t.Errorf("scheduled_utc = %v", entry["scheduled_utc"])
	}
}

func TestBuildVideo(t *testing.T) {
	cfg := config.Default()
	u := New(cfg)

	v := u.buildVideo(Request{
		Title:       "7 Money Rules Nobody Teaches You",
		Description: "desc",
		Tags:        []string{"money", "finance"},
	})
	if v.Snippet.Title != "7 Money Rules Nobody Teaches You" {
		t.Errorf("Title = %q", v.Snippet.Title)
	}
	if v.Snippet.CategoryId != "27" {
		t.Errorf("CategoryId = %q, want 27", v.Snippet.CategoryId)
	}
	if v.Status.PrivacyStatus != "private" {
		t.Errorf("PrivacyStatus = %q, want private", v.Status.PrivacyStatus)
	}
	if v.Status.PublishAt != "" {
		t.Errorf("PublishAt = %q, want empty without a schedule", v.Status.PublishAt)
	}
}

func TestBuildVideo_SchedulingForcesPrivate(t *testing.T) {
	cfg := config.Default()
	cfg.Upload.Visibility = "public"
	u := New(cfg)

	v := u.buildVideo(Request{
		Title:     "t",
		PublishAt: time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC),
	})
	if v.Status.PrivacyStatus != "private" {
		t.Errorf("PrivacyStatus = %q, scheduled uploads must be private", v.Status.PrivacyStatus)
	}
	if v.Status.PublishAt != "2026-09-01T14:00:00Z" {
		t.Errorf("PublishAt = %q", v.Status.PublishAt)
	}
}

func TestRun_MissingCredentials(t *testing.T) {
	for _, k := range []string{"YOUTUBE_CLIENT_ID", "YOUTUBE_CLIENT_SECRET", "YOUTUBE_REFRESH_TOKEN"} {
		t.Setenv(k, "")
	}

	u := New(config.Default())
	if _, err := u.oauthClient(context.Background()); err == nil {
		t.Error("oauthClient() error = nil, want missing-credentials error")
	}
}
