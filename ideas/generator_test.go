package ideas

import (
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"faceless-pipeline/config"
	"faceless-pipeline/history"
)

func newTestGenerator(t *testing.T) (*Generator, history.Store) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "idea_history.json")
	store, err := history.NewJSONStore(path, history.JSONStoreOptions{})
	if err != nil {
		t.Fatalf("NewJSONStore() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return New(store, config.Default().Ideas), store
}

func TestGenerate_FinanceNiche(t *testing.T) {
	gen, _ := newTestGenerator(t)

	got, err := gen.Generate("Personal Finance & Investing")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("Generate() returned %d ideas, want 1..5", len(got))
	}

	viewsRe := regexp.MustCompile(`^\d+K-\d+K$`)
	for _, idea := range got {
		if idea.Title == "" {
			t.Error("idea has empty title")
		}
		if idea.Hook == "" {
			t.Errorf("idea %q has empty hook", idea.Title)
		}
		if len(idea.Keywords) != 5 {
			t.Errorf("idea %q has %d keywords, want 5", idea.Title, len(idea.Keywords))
		}
		if !viewsRe.MatchString(idea.EstimatedViews) {
			t.Errorf("idea %q estimated_views = %q, want <n>K-<n>K", idea.Title, idea.EstimatedViews)
		}
		if idea.CompetitionScore < 6 || idea.CompetitionScore > 9 {
			t.Errorf("idea %q competition_score = %d, want 6..9", idea.Title, idea.CompetitionScore)
		}
	}
}

func TestGenerate_KeywordsPerIdea(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idea_history.json")
	store, err := history.NewJSONStore(path, history.JSONStoreOptions{})
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	gen := New(store, config.IdeasConfig{MaxIdeas: 3, KeywordsPerIdea: 2})
	got, err := gen.Generate("Personal Finance & Investing")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("Generate() returned %d ideas, want 1..3", len(got))
	}
	for _, idea := range got {
		if len(idea.Keywords) != 2 {
			t.Errorf("idea %q has %d keywords, want 2", idea.Title, len(idea.Keywords))
		}
	}
}

func TestGenerate_NoDuplicateTitlesWithinBatch(t *testing.T) {
	gen, _ := newTestGenerator(t)

	got, err := gen.Generate("Technology & AI")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	seen := make(map[string]bool)
	for _, idea := range got {
		if seen[idea.Title] {
			t.Errorf("duplicate title in one batch: %q", idea.Title)
		}
		seen[idea.Title] = true
	}
}

func TestGenerate_DeduplicatesAgainstHistory(t *testing.T) {
	gen, store := newTestGenerator(t)

	first, err := gen.Generate("Health & Wellness")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	for _, idea := range first {
		ok, _ := store.Contains(idea.Title)
		if !ok {
			t.Errorf("title %q not recorded to history", idea.Title)
		}
	}

	second, err := gen.Generate("Health & Wellness")
	if err != nil {
		t.Fatalf("Generate() second call error = %v", err)
	}

	firstTitles := make(map[string]bool)
	for _, idea := range first {
		firstTitles[idea.Title] = true
	}
	for _, idea := range second {
		if firstTitles[idea.Title] {
			t.Errorf("title %q returned twice across runs", idea.Title)
		}
	}
}

func TestGenerate_ExhaustionDegradesGracefully(t *testing.T) {
	gen, _ := newTestGenerator(t)

	// Drain the template pool; each call must succeed even when few or
	// no unused templates remain.
	total := 0
	for i := 0; i < 8; i++ {
		got, err := gen.Generate("Personal Finance & Investing")
		if err != nil {
			t.Fatalf("Generate() call %d error = %v", i, err)
		}
		if len(got) > 5 {
			t.Fatalf("Generate() returned %d ideas, want ≤5", len(got))
		}
		total += len(got)
	}
	if total == 0 {
		t.Fatal("no ideas generated across all calls")
	}
}

func TestGenerate_RoundTripAcrossReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idea_history.json")

	store, err := history.NewJSONStore(path, history.JSONStoreOptions{})
	if err != nil {
		t.Fatal(err)
	}
	first, err := New(store, config.Default().Ideas).Generate("Personal Finance & Investing")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	store.Close()

	reopened, err := history.NewJSONStore(path, history.JSONStoreOptions{})
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	second, err := New(reopened, config.Default().Ideas).Generate("Personal Finance & Investing")
	if err != nil {
		t.Fatalf("Generate() after reload error = %v", err)
	}

	firstTitles := make(map[string]bool)
	for _, idea := range first {
		firstTitles[idea.Title] = true
	}
	for _, idea := range second {
		if firstTitles[idea.Title] {
			t.Errorf("title %q regenerated after history reload", idea.Title)
		}
	}
}

func TestSetTrending(t *testing.T) {
	gen, store := newTestGenerator(t)
	gen.SetTrending([]string{"the 4-day work week"})

	// Exhaust until the trend-derived template shows up or pools drain
	found := false
	for i := 0; i < 8 && !found; i++ {
		got, err := gen.Generate("Technology & AI")
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		for _, idea := range got {
			if strings.Contains(idea.Title, "the 4-day work week") {
				found = true
			}
		}
		gen.SetTrending([]string{"the 4-day work week"})
	}
	if !found {
		t.Error("trend-derived template never surfaced")
	}

	ok, _ := store.Contains("Why Everyone Is Talking About the 4-day work week")
	if !ok {
		t.Error("trend-derived title not recorded to history")
	}
}

func TestCategoryForNiche(t *testing.T) {
	tests := []struct {
		niche string
		want  Category
	}{
		{"Personal Finance & Investing", CategoryFinance},
		{"Technology & AI", CategoryTechnology},
		{"Health & Wellness", CategoryHealth},
		{"Educational Content", CategoryEducation},
		{"Something Else Entirely", CategoryEducation},
	}
	for _, tt := range tests {
		if got := CategoryForNiche(tt.niche); got != tt.want {
			t.Errorf("CategoryForNiche(%q) = %q, want %q", tt.niche, got, tt.want)
		}
	}
}

func TestVariationsAt_Stable(t *testing.T) {
	at := time.Date(2026, 8, 25, 14, 0, 0, 0, time.UTC)
	a := variationsAt(at)
	b := variationsAt(at)
	if a != b {
		t.Error("variationsAt() is not deterministic for a fixed time")
	}
	if a.Year != 2026 || a.NextYear != 2027 {
		t.Errorf("variationsAt() year = %d next = %d", a.Year, a.NextYear)
	}
	if a.TimeFrame == "" {
		t.Error("variationsAt() empty time frame")
	}
}
