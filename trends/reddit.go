// Package trends pulls trending topics from Reddit so idea generation can
// ride what people are already talking about. Read-only API access, no
// credentials needed.
package trends

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/vartanbeno/go-reddit/v2/reddit"

	"faceless-pipeline/config"
	"faceless-pipeline/ideas"
)

const maxTopics = 10

// Fetcher retrieves hot post titles from the subreddit mapped to a niche.
type Fetcher struct {
	cfg    config.TrendsConfig
	client *reddit.Client
}

// New creates a Fetcher with a read-only Reddit client.
func New(cfg *config.Config) (*Fetcher, error) {
	client, err := reddit.NewReadonlyClient()
	if err != nil {
		return nil, fmt.Errorf("reddit client: %w", err)
	}
	return &Fetcher{cfg: cfg.Trends, client: client}, nil
}

// TopicsFor returns up to maxTopics cleaned topic phrases for the niche,
// filtered by the configured minimum score. An unmapped niche falls back
// to the educational subreddit rather than failing the run.
func (f *Fetcher) TopicsFor(ctx context.Context, niche string) ([]string, error) {
	sub := f.subredditFor(niche)

	limit := f.cfg.MaxPosts
	if limit <= 0 {
		limit = 25
	}
	posts, _, err := f.client.Subreddit.HotPosts(ctx, sub, &reddit.ListOptions{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("hot posts from r/%s: %w", sub, err)
	}

	topics := topicsFromPosts(posts, f.cfg.MinScore)
	log.Printf("[trends] r/%s: %d posts → %d usable topics", sub, len(posts), len(topics))
	return topics, nil
}

func (f *Fetcher) subredditFor(niche string) string {
	cat := string(ideas.CategoryForNiche(niche))
	if sub, ok := f.cfg.Subreddits[cat]; ok && sub != "" {
		return sub
	}
	if sub, ok := f.cfg.Subreddits["educational"]; ok && sub != "" {
		return sub
	}
	return "todayilearned"
}

// topicsFromPosts filters by score, cleans each title into a topic phrase
// and deduplicates, preserving post order.
func topicsFromPosts(posts []*reddit.Post, minScore int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range posts {
		if p == nil || p.Score < minScore {
			continue
		}
		topic := cleanTitle(p.Title)
		if topic == "" || seen[strings.ToLower(topic)] {
			continue
		}
		seen[strings.ToLower(topic)] = true
		out = append(out, topic)
		if len(out) >= maxTopics {
			break
		}
	}
	return out
}

// cleanTitle turns a Reddit post title into a phrase usable inside a video
// title: flair brackets and subreddit prefixes stripped, whitespace
// collapsed, overlong titles dropped.
func cleanTitle(title string) string {
	t := strings.TrimSpace(title)

	// Leading flair like "[Serious]" or "(OC)".
	for {
		switch {
		case strings.HasPrefix(t, "["):
			if i := strings.Index(t, "]"); i >= 0 {
				t = strings.TrimSpace(t[i+1:])
				continue
			}
		case strings.HasPrefix(t, "("):
			if i := strings.Index(t, ")"); i >= 0 {
				t = strings.TrimSpace(t[i+1:])
				continue
			}
		}
		break
	}

	// Subreddit idioms that read badly inside a video title.
	for _, prefix := range []string{"TIL that ", "TIL: ", "TIL ", "LPT: ", "LPT - ", "ELI5: ", "ELI5 "} {
		if strings.HasPrefix(t, prefix) {
			t = strings.TrimSpace(strings.TrimPrefix(t, prefix))
			break
		}
	}

	t = strings.Join(strings.Fields(t), " ")
	t = strings.TrimRight(t, ".!?")

	// Too short to mean anything, or too long to fit a title template.
	if len(t) < 10 || len(t) > 80 {
		return ""
	}
	return t
}
