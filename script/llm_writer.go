package script

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"faceless-pipeline/config"
	"faceless-pipeline/types"
)

const llmSystemPrompt = `You are a scriptwriter for faceless YouTube channels. You write tight, conversational narration scripts.

Your scripts MUST follow this exact structure:
1. A [HOOK - 0:00] section that opens with the most compelling claim. No throat-clearing.
2. Numbered or named body sections, each headed with a marker like [RULE 1 - 0:45] using m:ss timestamps at ~150 words per minute of preceding text.
3. An [OUTRO - m:ss] section with one concrete call to action.
4. A final [END - m:ss] line, timestamped at ~130 words per minute (the TTS engine reads slower).

Write plain spoken prose under each marker. No markdown, no stage directions, no emoji. Hit the requested word count within about ten percent.`

// LLMWriter generates scripts with a chat model instead of the template
// families. It produces the same marker format so Validate and CleanForTTS
// apply unchanged.
type LLMWriter struct {
	model       string
	temperature float64
	wpm         int
	ttsWPM      int

	defaultMinutes int
	defaultWords   int

	opts []option.RequestOption
}

// NewLLMWriter builds a writer from config. The API key comes from the
// OPENAI_API_KEY environment variable, same place the rest of the pipeline
// keeps its secrets.
func NewLLMWriter(cfg *config.Config) (*LLMWriter, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY not set")
	}
	w := &LLMWriter{
		model:          cfg.Script.LLMModel,
		temperature:    cfg.Script.Temperature,
		wpm:            cfg.Script.WordsPerMinute,
		ttsWPM:         cfg.Script.TTSWordsPerMinute,
		defaultMinutes: cfg.Script.TargetMinutes,
		defaultWords:   cfg.Script.TargetWords,
		opts:           []option.RequestOption{option.WithAPIKey(apiKey)},
	}
	if w.model == "" {
		w.model = "gpt-4o-mini"
	}
	if w.wpm <= 0 {
		w.wpm = 150
	}
	if w.ttsWPM <= 0 {
		w.ttsWPM = 130
	}
	return w, nil
}

// Generate asks the model for a script and validates the result against
// the same rules the template path uses.
func (w *LLMWriter) Generate(ctx context.Context, title, hook string, targetMinutes int) (*types.Script, error) {
	if targetMinutes <= 0 {
		targetMinutes = 5
	}
	target := targetMinutes * w.wpm
	if targetMinutes == w.defaultMinutes && w.defaultWords > 0 {
		target = w.defaultWords
	}

	log.Printf("[script] Generating %q via %s...", title, w.model)

	user := fmt.Sprintf(
		"Write a %d-minute script (about %d words) for a video titled %q.\nOpening hook to build on: %q\nRespond with the script only.",
		targetMinutes, target, title, hook,
	)

	client := openai.NewClient(w.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(w.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(llmSystemPrompt),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(w.temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("model returned no choices")
	}

	text := stripFences(resp.Choices[0].Message.Content)
	total := wordCount(CleanForTTS(text))

	out := &types.Script{
		Title:          title,
		Hook:           hook,
		Kind:           string(Classify(title)),
		Text:           text,
		WordCount:      total,
		TargetMinutes:  targetMinutes,
		TargetWords:    target,
		DurationSec:    float64(total) * 60.0 / float64(w.wpm),
		TTSDurationSec: float64(total) * 60.0 / float64(w.ttsWPM),
	}
	if err := Validate(out); err != nil {
		return nil, fmt.Errorf("model output failed validation: %w", err)
	}

	log.Printf("[script] ✅ %d words from %s", total, w.model)
	return out, nil
}

// stripFences removes markdown code fences if the model wraps its output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```text")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
