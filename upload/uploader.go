// Package upload pushes a finished video straight to YouTube via the Data
// API. The normal path goes through the n8n upload webhook; this is the
// fallback for when the workflow engine is down or an upload needs to be
// driven by hand.
package upload

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"faceless-pipeline/config"
	"faceless-pipeline/types"
)

// Uploader handles direct YouTube uploads via Data API v3.
type Uploader struct {
	cfg *config.Config
}

// New creates a new Uploader.
func New(cfg *config.Config) *Uploader {
	return &Uploader{cfg: cfg}
}

// Request describes one upload.
type Request struct {
	VideoFile   string
	Title       string
	Description string
	Tags        []string
	PublishAt   time.Time // zero = publish per configured visibility now
}

// Run uploads the video and returns the result. Scheduling a publish time
// forces the video private until YouTube flips it at the scheduled moment.
func (u *Uploader) Run(ctx context.Context, req Request) (*types.UploadResult, error) {
	log.Println("[upload] Authenticating with YouTube API...")

	client, err := u.oauthClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("youtube auth: %w", err)
	}

	svc, err := youtube.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}

	log.Printf("[upload] Uploading: %q", req.Title)

	video := u.buildVideo(req)
	if video.Status.PublishAt != "" {
		log.Printf("[upload] Scheduled for: %s", video.Status.PublishAt)
	}

	f, err := os.Open(req.VideoFile)
	if err != nil {
		return nil, fmt.Errorf("open video file: %w", err)
	}
	defer f.Close()

	if fi, err := f.Stat(); err == nil {
		log.Printf("[upload] File size: %.1f MB", float64(fi.Size())/1024/1024)
	}

	// NotifySubscribers is a call parameter, not a status field
	call := svc.Videos.Insert([]string{"snippet", "status"}, video).
		NotifySubscribers(u.cfg.Upload.NotifySubscribers)
	call.Media(f)

	uploaded, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("youtube upload: %w", err)
	}

	result := &types.UploadResult{
		Status:   "success",
		VideoID:  uploaded.Id,
		VideoURL: fmt.Sprintf("https://www.youtube.com/watch?v=%s", uploaded.Id),
	}

	log.Printf("[upload] ✅ Uploaded: %s", result.VideoURL)
	return result, nil
}

// buildVideo assembles the API resource. Scheduling a publish time forces
// the video private; YouTube rejects scheduled uploads with any other
// privacy status.
func (u *Uploader) buildVideo(req Request) *youtube.Video {
	status := &youtube.VideoStatus{
		PrivacyStatus:           u.cfg.Upload.Visibility,
		SelfDeclaredMadeForKids: u.cfg.Upload.MadeForKids,
	}
	if !req.PublishAt.IsZero() {
		status.PrivacyStatus = "private"
		status.PublishAt = req.PublishAt.UTC().Format(time.RFC3339)
	}

	return &youtube.Video{
		Snippet: &youtube.VideoSnippet{
			Title:                req.Title,
			Description:          req.Description,
			Tags:                 req.Tags,
			CategoryId:           u.cfg.Upload.CategoryID,
			DefaultLanguage:      u.cfg.Upload.DefaultLanguage,
			DefaultAudioLanguage: u.cfg.Upload.DefaultLanguage,
		},
		Status: status,
	}
}

// oauthClient builds an authenticated HTTP client from env credentials.
// The refresh token comes from a one-time local consent flow.
func (u *Uploader) oauthClient(ctx context.Context) (*http.Client, error) {
	clientID := os.Getenv("YOUTUBE_CLIENT_ID")
	clientSecret := os.Getenv("YOUTUBE_CLIENT_SECRET")
	refreshToken := os.Getenv("YOUTUBE_REFRESH_TOKEN")

	if clientID == "" || clientSecret == "" || refreshToken == "" {
		return nil, fmt.Errorf("YOUTUBE_CLIENT_ID, YOUTUBE_CLIENT_SECRET, or YOUTUBE_REFRESH_TOKEN not set")
	}

	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{youtube.YoutubeUploadScope, youtube.YoutubeScope},
	}
	token := &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Hour), // force refresh
	}

	return oauth2.NewClient(ctx, conf.TokenSource(ctx, token)), nil
}

// LogUpload writes the upload result to the logs directory so there's a
// local record even when the channel dashboard is the source of truth.
func LogUpload(logsDir string, req Request, result *types.UploadResult) error {
	entry := map[string]any{
		"video_id":    result.VideoID,
		"video_url":   result.VideoURL,
		"title":       req.Title,
		"video_file":  req.VideoFile,
		"uploaded_at": time.Now().UTC().Format(time.RFC3339),
	}
	if !req.PublishAt.IsZero() {
		entry["scheduled_utc"] = req.PublishAt.UTC().Format(time.RFC3339)
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(logsDir, fmt.Sprintf("upload_%s.json", time.Now().Format("20060102_150405")))
	data, _ := json.MarshalIndent(entry, "", "  ")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	log.Printf("[upload] Upload log saved: %s", path)
	return nil
}
