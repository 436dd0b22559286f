// Package pipeline runs the full idea → script → TTS → upload flow,
// snapshotting state after every stage so a crashed run leaves a usable
// record on disk.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"faceless-pipeline/bridge"
	"faceless-pipeline/config"
	"faceless-pipeline/history"
	"faceless-pipeline/ideas"
	"faceless-pipeline/metadata"
	"faceless-pipeline/schedule"
	"faceless-pipeline/script"
	"faceless-pipeline/trends"
	"faceless-pipeline/types"
)

// Options tweak a single run.
type Options struct {
	Niche      string // empty = configured default
	UseTrends  bool
	UseLLM     bool
	Distribute bool
}

// Runner owns one pipeline execution.
type Runner struct {
	cfg    *config.Config
	client *bridge.Client
}

// New creates a pipeline Runner.
func New(cfg *config.Config) *Runner {
	return &Runner{cfg: cfg, client: bridge.New(cfg)}
}

// Run executes the pipeline end to end and returns the final state. The
// state is also written to <output>/<runID>/pipeline_state.json, updated
// after each stage.
func (r *Runner) Run(ctx context.Context, opts Options) (*types.PipelineState, error) {
	niche := opts.Niche
	if niche == "" {
		niche = r.cfg.Ideas.DefaultNiche
	}

	runID := uuid.NewString()[:8]
	runDir := filepath.Join(r.cfg.Paths.Output, runID)
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return nil, fmt.Errorf("create run dir: %w", err)
	}

	log.Printf("🎬 Pipeline starting — Run ID: %s", runID)
	log.Printf("📁 Output dir: %s", runDir)

	state := &types.PipelineState{
		RunID:     runID,
		StartedAt: time.Now().UTC().Format(time.RFC3339),
		Niche:     niche,
	}
	defer func() {
		state.CompletedAt = time.Now().UTC().Format(time.RFC3339)
		saveJSON(filepath.Join(runDir, "pipeline_state.json"), state)
	}()

	fail := func(stage string, err error) (*types.PipelineState, error) {
		state.Error = fmt.Sprintf("%s: %v", stage, err)
		log.Printf("❌ Pipeline failed at %s: %v", stage, err)
		r.client.NotifyError(ctx, stage, err)
		return state, fmt.Errorf("%s: %w", stage, err)
	}

	// ─────────────────────────────────────────────
	// STAGE 1: Idea
	// ─────────────────────────────────────────────
	log.Println("\n━━━ STAGE 1: Idea Generation ━━━")
	idea, err := r.pickIdea(ctx, niche, opts.UseTrends)
	if err != nil {
		return fail("Stage 1 Ideas", err)
	}
	state.Idea = idea
	saveJSON(filepath.Join(runDir, "idea.json"), idea)
	log.Printf("[pipeline] Idea: %q", idea.Title)

	// ─────────────────────────────────────────────
	// STAGE 2: Script
	// ─────────────────────────────────────────────
	log.Println("\n━━━ STAGE 2: Script Writing ━━━")
	scriptData, err := r.writeScript(ctx, idea, opts.UseLLM)
	if err != nil {
		return fail("Stage 2 Script", err)
	}
	state.Script = scriptData
	saveJSON(filepath.Join(runDir, "script.json"), scriptData)

	// ─────────────────────────────────────────────
	// STAGE 3: TTS via n8n
	// ─────────────────────────────────────────────
	log.Println("\n━━━ STAGE 3: TTS Generation ━━━")
	tts, err := r.client.GenerateTTS(ctx, bridge.TTSRequest{
		Title:       scriptData.Title,
		Text:        script.CleanForTTS(scriptData.Text),
		DurationSec: scriptData.TTSDurationSec,
	})
	if err != nil {
		return fail("Stage 3 TTS", err)
	}
	state.TTS = tts
	saveJSON(filepath.Join(runDir, "tts.json"), tts)

	// ─────────────────────────────────────────────
	// STAGE 4: Metadata + Upload via n8n
	// ─────────────────────────────────────────────
	log.Println("\n━━━ STAGE 4: Upload ━━━")
	meta := metadata.New(r.cfg).Build(idea, scriptData)
	saveJSON(filepath.Join(runDir, "metadata.json"), meta)

	publishAt, err := r.nextSlot()
	if err != nil {
		return fail("Stage 4 Schedule", err)
	}

	uploadReq := bridge.UploadRequest{
		Title:       meta.Title,
		Description: meta.Description,
		Tags:        meta.Tags,
		AudioURL:    tts.AudioURL,
		Visibility:  r.cfg.Upload.Visibility,
	}
	if !publishAt.IsZero() {
		uploadReq.PublishAt = publishAt.UTC().Format(time.RFC3339)
		log.Printf("[pipeline] Publish slot: %s", publishAt.Format(time.RFC1123))
	}

	uploaded, err := r.client.Upload(ctx, uploadReq)
	if err != nil {
		return fail("Stage 4 Upload", err)
	}
	state.Upload = uploaded

	// ─────────────────────────────────────────────
	// STAGE 5: Distribution (optional)
	// ─────────────────────────────────────────────
	if opts.Distribute && uploaded.VideoURL != "" {
		log.Println("\n━━━ STAGE 5: Cross-Platform Distribution ━━━")
		dist, err := r.client.Distribute(ctx, bridge.DistributeRequest{
			Title:    meta.Title,
			VideoURL: uploaded.VideoURL,
		})
		if err != nil {
			// Distribution is a bonus, not a gate
			log.Printf("⚠️  Distribution failed: %v — video is still live", err)
		} else {
			saveJSON(filepath.Join(runDir, "distribution.json"), dist)
		}
	}

	log.Printf("✅ Pipeline complete! Video: %s", uploaded.VideoURL)
	return state, nil
}

// pickIdea opens the history store, optionally mixes in trending topics,
// and returns the first fresh idea for the niche. A corrupt history file is
// downgraded to an empty one inside history.Open, so a bad file never kills
// the run.
func (r *Runner) pickIdea(ctx context.Context, niche string, useTrends bool) (*types.Idea, error) {
	store, err := history.Open(r.cfg.History.File, history.JSONStoreOptions{
		RetentionLimit: r.cfg.History.RetentionLimit,
		LockTimeout:    time.Duration(r.cfg.History.LockTimeoutSec) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer store.Close()

	gen := ideas.New(store, r.cfg.Ideas)

	if useTrends || r.cfg.Ideas.IncludeTrends {
		fetcher, err := trends.New(r.cfg)
		if err != nil {
			log.Printf("⚠️  Trends unavailable: %v — continuing without", err)
		} else if topics, err := fetcher.TopicsFor(ctx, niche); err != nil {
			log.Printf("⚠️  Trend fetch failed: %v — continuing without", err)
		} else {
			gen.SetTrending(topics)
		}
	}

	list, err := gen.Generate(niche)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("no fresh ideas left for %q", niche)
	}
	return &list[0], nil
}

func (r *Runner) writeScript(ctx context.Context, idea *types.Idea, useLLM bool) (*types.Script, error) {
	if useLLM || r.cfg.Script.UseLLM {
		writer, err := script.NewLLMWriter(r.cfg)
		if err == nil {
			s, err := writer.Generate(ctx, idea.Title, idea.Hook, r.cfg.Script.TargetMinutes)
			if err == nil {
				return s, nil
			}
			log.Printf("⚠️  LLM script failed: %v — falling back to templates", err)
		} else {
			log.Printf("⚠️  LLM writer unavailable: %v — falling back to templates", err)
		}
	}
	return script.New(r.cfg).Generate(idea.Title, idea.Hook, r.cfg.Script.TargetMinutes)
}

func (r *Runner) nextSlot() (time.Time, error) {
	planner, err := schedule.New(r.cfg)
	if err != nil {
		return time.Time{}, err
	}
	return planner.NextPublishTime(time.Now()), nil
}

func saveJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("Warning: could not marshal JSON for %s: %v", path, err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Printf("Warning: could not save %s: %v", path, err)
	}
}
