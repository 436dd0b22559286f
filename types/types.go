package types

// Idea holds one generated video idea with its heuristic metadata
type Idea struct {
	Title            string   `json:"title"`
	Hook             string   `json:"hook"`
	Keywords         []string `json:"keywords"`
	EstimatedViews   string   `json:"estimated_views"`   // e.g. "25K-500K"
	CompetitionScore int      `json:"competition_score"` // 6..9, lower is easier
	Niche            string   `json:"niche"`
}

// Script is the full narration script for one video
type Script struct {
	Title          string  `json:"title"`
	Hook           string  `json:"hook"`
	Kind           string  `json:"kind"` // template family that produced it
	Text           string  `json:"text"` // includes [SECTION - m:ss] markers
	WordCount      int     `json:"word_count"`
	TargetMinutes  int     `json:"target_minutes"`
	TargetWords    int     `json:"target_words"`
	DurationSec    float64 `json:"duration_sec"`     // at pacing rate
	TTSDurationSec float64 `json:"tts_duration_sec"` // at Google TTS rate
}

// TTSResult is the response from the TTS generation webhook
type TTSResult struct {
	Status    string  `json:"status"`
	AudioURL  string  `json:"audio_url,omitempty"`
	AudioPath string  `json:"audio_path,omitempty"`
	Duration  float64 `json:"duration_sec,omitempty"`
}

// UploadResult is the response from the upload webhook or direct upload
type UploadResult struct {
	Status   string `json:"status"`
	VideoID  string `json:"video_id,omitempty"`
	VideoURL string `json:"video_url,omitempty"`
}

// AnalyticsSnapshot is the response from the analytics webhook
type AnalyticsSnapshot struct {
	Status      string  `json:"status"`
	ChannelID   string  `json:"channel_id,omitempty"`
	Views       int64   `json:"views,omitempty"`
	WatchHours  float64 `json:"watch_hours,omitempty"`
	Subscribers int64   `json:"subscribers,omitempty"`
}

// DistributeResult is the response from the cross-platform distribution webhook
type DistributeResult struct {
	Status    string            `json:"status"`
	Platforms map[string]string `json:"platforms,omitempty"` // platform → post URL
}

// ShortenResult is the response from the affiliate link shortener webhook
type ShortenResult struct {
	Status   string `json:"status"`
	ShortURL string `json:"short_url,omitempty"`
}

// PipelineState tracks the full state of one pipeline run
type PipelineState struct {
	RunID       string        `json:"run_id"`
	StartedAt   string        `json:"started_at"`
	CompletedAt string        `json:"completed_at"`
	Niche       string        `json:"niche"`
	Idea        *Idea         `json:"idea"`
	Script      *Script       `json:"script"`
	TTS         *TTSResult    `json:"tts"`
	Upload      *UploadResult `json:"upload"`
	Error       string        `json:"error,omitempty"`
}
