// Package ideas generates candidate video titles for a niche, deduplicated
// against the idea history so no title is emitted twice.
package ideas

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"faceless-pipeline/config"
	"faceless-pipeline/history"
	"faceless-pipeline/types"
)

// Generator produces deduplicated ideas from per-niche title templates.
type Generator struct {
	store    history.Store
	maxIdeas int
	keywords int // keywords attached per idea
	rng      *rand.Rand
	now      func() time.Time
	trending []string // extra templates derived from trending topics
}

// New creates a Generator backed by the given history store.
func New(store history.Store, cfg config.IdeasConfig) *Generator {
	maxIdeas := cfg.MaxIdeas
	if maxIdeas <= 0 {
		maxIdeas = 5
	}
	keywords := cfg.KeywordsPerIdea
	if keywords <= 0 {
		keywords = 5
	}
	return &Generator{
		store:    store,
		maxIdeas: maxIdeas,
		keywords: keywords,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
	}
}

// SetTrending folds trending topic titles into the next Generate call as
// extra templates, e.g. "Why Everyone Is Talking About <topic>".
func (g *Generator) SetTrending(topics []string) {
	g.trending = g.trending[:0]
	for _, topic := range topics {
		if topic == "" {
			continue
		}
		g.trending = append(g.trending, fmt.Sprintf("Why Everyone Is Talking About %s", topic))
	}
}

// Generate returns up to maxIdeas fresh ideas for the niche. Titles already
// present in the history store are skipped; running out of unused templates
// is not an error, the caller just gets fewer ideas. Returned titles are
// recorded to history before the call returns.
func (g *Generator) Generate(niche string) ([]types.Idea, error) {
	cat := CategoryForNiche(niche)
	v := variationsAt(g.now())

	templates := titleTemplates(cat, v)
	templates = append(templates, g.trending...)
	g.rng.Shuffle(len(templates), func(i, j int) {
		templates[i], templates[j] = templates[j], templates[i]
	})

	var out []types.Idea
	for _, title := range templates {
		if len(out) >= g.maxIdeas {
			break
		}

		seen, err := g.store.Contains(title)
		if err != nil {
			return nil, fmt.Errorf("check history: %w", err)
		}
		if seen {
			continue
		}

		out = append(out, types.Idea{
			Title:            title,
			Hook:             hookFor(title, v),
			Keywords:         keywordsFor(cat, g.keywords),
			EstimatedViews:   fmt.Sprintf("%dK-%dK", v.Medium, v.Large),
			CompetitionScore: 6 + g.rng.Intn(4), // 6..9
			Niche:            niche,
		})
	}

	if len(out) < g.maxIdeas {
		log.Printf("[ideas] Only %d unused templates left for %q — returning what we have", len(out), niche)
	}

	titles := make([]string, len(out))
	for i, idea := range out {
		titles[i] = idea.Title
	}
	if err := g.store.Record(titles); err != nil {
		return nil, fmt.Errorf("record history: %w", err)
	}

	return out, nil
}

// keywordsFor returns up to n keywords from the category pool, copied so
// callers can append without mutating the shared slice.
func keywordsFor(cat Category, n int) []string {
	pool := categoryKeywords[cat]
	if n > len(pool) {
		n = len(pool)
	}
	out := make([]string, n)
	copy(out, pool[:n])
	return out
}
