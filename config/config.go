package config

import (
	"fmt"
	"os"

	"github.com/gorhill/cronexpr"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Ideas    IdeasConfig    `yaml:"ideas"`
	Trends   TrendsConfig   `yaml:"trends"`
	Script   ScriptConfig   `yaml:"script"`
	Webhooks WebhooksConfig `yaml:"webhooks"`
	History  HistoryConfig  `yaml:"history"`
	Upload   UploadConfig   `yaml:"upload"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Paths    PathsConfig    `yaml:"paths"`
}

type IdeasConfig struct {
	MaxIdeas        int    `yaml:"max_ideas"`
	DefaultNiche    string `yaml:"default_niche"`
	IncludeTrends   bool   `yaml:"include_trends"`
	KeywordsPerIdea int    `yaml:"keywords_per_idea"`
}

type TrendsConfig struct {
	Subreddits map[string]string `yaml:"subreddits"` // niche category → subreddit
	MaxPosts   int               `yaml:"max_posts"`
	MinScore   int               `yaml:"min_score"`
	UserAgent  string            `yaml:"user_agent"`
}

type ScriptConfig struct {
	TargetMinutes     int     `yaml:"target_minutes"`
	TargetWords       int     `yaml:"target_words"`
	WordsPerMinute    int     `yaml:"words_per_minute"`     // pacing for section timestamps
	TTSWordsPerMinute int     `yaml:"tts_words_per_minute"` // Google TTS reads slower
	UseLLM            bool    `yaml:"use_llm"`
	LLMModel          string  `yaml:"llm_model"`
	Temperature       float64 `yaml:"temperature"`
}

type WebhooksConfig struct {
	BaseURL        string `yaml:"base_url"`
	TTSPath        string `yaml:"tts_path"`
	UploadPath     string `yaml:"upload_path"`
	AnalyticsPath  string `yaml:"analytics_path"`
	DistributePath string `yaml:"distribute_path"`
	ShortenPath    string `yaml:"shorten_path"`
	ErrorPath      string `yaml:"error_path"`
	MaxAttempts    int    `yaml:"max_attempts"`
}

type HistoryConfig struct {
	File           string `yaml:"file"`
	RetentionLimit int    `yaml:"retention_limit"`
	LockTimeoutSec int    `yaml:"lock_timeout_sec"`
}

type UploadConfig struct {
	Visibility        string `yaml:"visibility"`
	CategoryID        string `yaml:"category_id"`
	NotifySubscribers bool   `yaml:"notify_subscribers"`
	MadeForKids       bool   `yaml:"made_for_kids"`
	DefaultLanguage   string `yaml:"default_language"`
}

type ScheduleConfig struct {
	PublishCrons []string `yaml:"publish_crons"`
	Timezone     string   `yaml:"timezone"`
	FallbackHour int      `yaml:"fallback_hour"`
}

type PathsConfig struct {
	Data   string `yaml:"data"`
	Output string `yaml:"output"`
	Logs   string `yaml:"logs"`
}

// Default returns the configuration used when no config.yaml is present.
func Default() *Config {
	return &Config{
		Ideas: IdeasConfig{
			MaxIdeas:        5,
			DefaultNiche:    "Personal Finance & Investing",
			IncludeTrends:   false,
			KeywordsPerIdea: 5,
		},
		Trends: TrendsConfig{
			Subreddits: map[string]string{
				"finance":     "personalfinance",
				"technology":  "artificial",
				"health":      "selfimprovement",
				"educational": "todayilearned",
			},
			MaxPosts:  25,
			MinScore:  500,
			UserAgent: "faceless-pipeline/1.0",
		},
		Script: ScriptConfig{
			TargetMinutes:     5,
			TargetWords:       750,
			WordsPerMinute:    150,
			TTSWordsPerMinute: 130,
			UseLLM:            false,
			LLMModel:          "gpt-4o-mini",
			Temperature:       0.7,
		},
		Webhooks: WebhooksConfig{
			BaseURL:        "http://localhost:5678",
			TTSPath:        "/webhook/tts-generation",
			UploadPath:     "/webhook/youtube-upload",
			AnalyticsPath:  "/webhook/youtube-analytics",
			DistributePath: "/webhook/cross-platform-distribute",
			ShortenPath:    "/webhook/affiliate-shorten",
			MaxAttempts:    3,
		},
		History: HistoryConfig{
			File:           "data/idea_history.json",
			RetentionLimit: 100,
			LockTimeoutSec: 5,
		},
		Upload: UploadConfig{
			Visibility:        "private",
			CategoryID:        "27", // Education
			NotifySubscribers: false,
			MadeForKids:       false,
			DefaultLanguage:   "en",
		},
		Schedule: ScheduleConfig{
			PublishCrons: []string{"0 14 * * 2", "0 14 * * 5"}, // Tue + Fri 2PM
			Timezone:     "America/New_York",
			FallbackHour: 14,
		},
		Paths: PathsConfig{
			Data:   "data",
			Output: "output",
			Logs:   "logs",
		},
	}
}

// Load reads config.yaml over the defaults. A missing file is not an error —
// this is a local operator tool and the defaults are runnable as-is.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that configuration values are consistent.
func (c *Config) Validate() error {
	if c.Ideas.MaxIdeas <= 0 {
		return fmt.Errorf("ideas.max_ideas must be positive")
	}
	if c.Script.TargetMinutes <= 0 || c.Script.TargetWords <= 0 {
		return fmt.Errorf("script.target_minutes and script.target_words must be positive")
	}
	if c.Script.WordsPerMinute <= 0 || c.Script.TTSWordsPerMinute <= 0 {
		return fmt.Errorf("script words-per-minute rates must be positive")
	}
	if c.History.RetentionLimit <= 0 {
		return fmt.Errorf("history.retention_limit must be positive")
	}
	if c.Webhooks.MaxAttempts <= 0 {
		return fmt.Errorf("webhooks.max_attempts must be positive")
	}
	for _, expr := range c.Schedule.PublishCrons {
		if _, err := cronexpr.Parse(expr); err != nil {
			return fmt.Errorf("schedule.publish_crons %q: %w", expr, err)
		}
	}
	return nil
}
