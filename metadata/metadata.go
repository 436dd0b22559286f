// Package metadata builds the YouTube title, description and tags for an
// upload from the idea and the finished script.
package metadata

import (
	"fmt"
	"regexp"
	"strings"

	"faceless-pipeline/config"
	"faceless-pipeline/types"
)

const maxTags = 15

// Video is the upload-ready metadata bundle.
type Video struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Generator builds metadata.
type Generator struct {
	cfg *config.Config
}

// New creates a metadata Generator.
func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg}
}

var sectionRe = regexp.MustCompile(`\[([A-Z][A-Z0-9 '&-]*?) - (\d+:\d{2})\]`)

// Build assembles the metadata. The description carries a hook line, a
// chapter list derived from the script's section markers (YouTube picks
// these up as chapters), and the idea keywords as hashtags.
func (g *Generator) Build(idea *types.Idea, script *types.Script) *Video {
	var b strings.Builder

	if idea.Hook != "" {
		b.WriteString(idea.Hook + ".\n\n")
	}

	b.WriteString("⏱ Chapters:\n")
	for _, m := range sectionRe.FindAllStringSubmatch(script.Text, -1) {
		name, at := m[1], m[2]
		if name == "END" {
			continue
		}
		b.WriteString(fmt.Sprintf("%s %s\n", at, titleCase(name)))
	}

	b.WriteString("\n")
	for _, kw := range idea.Keywords {
		b.WriteString("#" + strings.ReplaceAll(strings.ToLower(kw), " ", "") + " ")
	}
	b.WriteString("\n")

	return &Video{
		Title:       script.Title,
		Description: strings.TrimSpace(b.String()) + "\n",
		Tags:        buildTags(idea, script),
	}
}

// buildTags merges idea keywords with title words, deduplicated and capped
// at maxTags. YouTube ignores tags past ~500 characters anyway.
func buildTags(idea *types.Idea, script *types.Script) []string {
	seen := make(map[string]bool)
	var tags []string
	add := func(t string) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || len(t) < 3 || seen[t] || len(tags) >= maxTags {
			return
		}
		seen[t] = true
		tags = append(tags, t)
	}

	for _, kw := range idea.Keywords {
		add(kw)
	}
	for _, w := range strings.Fields(script.Title) {
		add(strings.Trim(w, "()[]$%:,.!?"))
	}
	add(idea.Niche)
	return tags
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
