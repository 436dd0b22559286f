// Package script turns a video title into a full timestamped narration
// script. Titles route to one of a fixed set of template families, each
// with its own section structure; every family lands within tolerance of
// the word target so downstream TTS duration stays predictable.
package script

import (
	"fmt"
	"log"
	"strings"

	"faceless-pipeline/config"
	"faceless-pipeline/ideas"
	"faceless-pipeline/types"
)

// Generator builds narration scripts from titles.
type Generator struct {
	wpm    int // pacing rate for section timestamps
	ttsWPM int // narration rate, Google TTS reads slower than humans

	// target_words overrides minutes×wpm when generating at the configured
	// default length, so the operator can tune word count directly.
	defaultMinutes int
	defaultWords   int
}

// New creates a Generator from pipeline configuration.
func New(cfg *config.Config) *Generator {
	g := &Generator{
		wpm:            cfg.Script.WordsPerMinute,
		ttsWPM:         cfg.Script.TTSWordsPerMinute,
		defaultMinutes: cfg.Script.TargetMinutes,
		defaultWords:   cfg.Script.TargetWords,
	}
	if g.wpm <= 0 {
		g.wpm = 150
	}
	if g.ttsWPM <= 0 {
		g.ttsWPM = 130
	}
	return g
}

// section is one assembled block of the script. Unit sections (RULE 1,
// STEP 3, ...) are paddable; framing sections are not.
type section struct {
	name      string
	sentences []string
	paddable  bool
}

func (s *section) words() int {
	n := 0
	for _, sent := range s.sentences {
		n += wordCount(sent)
	}
	return n
}

// Generate builds the script for a title. The hook may be empty, in which
// case a generic one is synthesized. Word count lands within tolerance of
// targetMinutes * words-per-minute.
func (g *Generator) Generate(title, hook string, targetMinutes int) (*types.Script, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("empty title")
	}
	if targetMinutes <= 0 {
		targetMinutes = 5
	}

	target := targetMinutes * g.wpm
	if targetMinutes == g.defaultMinutes && g.defaultWords > 0 {
		target = g.defaultWords
	}
	tol := tolerance(target)
	kind := Classify(title)

	log.Printf("[script] Building %q as %s, target %d words (±%d)", title, kind, target, tol)

	secs := g.buildSections(kind, title, hook, target)
	fitToTarget(secs, title, target, tol)

	text := g.render(secs)
	total := 0
	for _, s := range secs {
		total += s.words()
	}

	out := &types.Script{
		Title:          title,
		Hook:           hook,
		Kind:           string(kind),
		Text:           text,
		WordCount:      total,
		TargetMinutes:  targetMinutes,
		TargetWords:    target,
		DurationSec:    float64(total) * 60.0 / float64(g.wpm),
		TTSDurationSec: float64(total) * 60.0 / float64(g.ttsWPM),
	}
	if err := Validate(out); err != nil {
		return nil, fmt.Errorf("generated script failed validation: %w", err)
	}

	log.Printf("[script] ✅ %d words, ~%.1f min narration", total, out.TTSDurationSec/60)
	return out, nil
}

// tolerance is the allowed deviation from the word target, proportional to
// the target with a floor so short scripts keep some slack.
func tolerance(target int) int {
	tol := target / 7
	if tol < 60 {
		tol = 60
	}
	return tol
}

// buildSections assembles the family-specific section list. Unit families
// share one machinery with different pools and labels; narrative families
// have fixed beat lists.
func (g *Generator) buildSections(kind Kind, title, hook string, target int) []*section {
	secs := []*section{openingSection(title, hook)}

	switch kind {
	case KindListicle:
		secs = append(secs, unitSections(listPools[ideas.CategoryForNiche(categoryHint(title))], unitNoun(title), ExtractCount(title), title, target)...)
	case KindLessons:
		secs = append(secs, unitSections(lessonPool, "LESSON", leadingCountOr(title, 5), title, target)...)
	case KindPassiveIncome:
		secs = append(secs, unitSections(incomePool, "STREAM", leadingCountOr(title, 5), title, target)...)
	case KindSelfHelp:
		secs = append(secs, unitSections(techniquePool, "TECHNIQUE", leadingCountOr(title, 5), title, target)...)
	case KindHowTo:
		secs = append(secs, unitSections(stepPool, "STEP", leadingCountOr(title, 5), title, target)...)
	case KindChallenge:
		secs = append(secs, narrativeSections(challengeBeats, title)...)
	case KindHistorical:
		secs = append(secs, narrativeSections(historicalBeats, title)...)
	default:
		secs = append(secs, narrativeSections(educationalBeats, title)...)
	}

	secs = append(secs, closingSection(title))
	return secs
}

// openingSection is the HOOK plus a short framing of what's coming.
func openingSection(title, hook string) *section {
	if strings.TrimSpace(hook) == "" {
		hook = fmt.Sprintf("Here's the truth about %s that nobody puts in the thumbnail", strings.ToLower(firstWords(title, 6)))
	}
	return &section{
		name: "HOOK",
		sentences: []string{
			hook + ".",
			"Stick around, because the last one on this list is the one most people get wrong.",
			"Let's get into it.",
		},
	}
}

// closingSection is the payoff plus call to action.
func closingSection(title string) *section {
	return &section{
		name: "OUTRO",
		sentences: []string{
			"So that's the full picture, and you now know more about this than the vast majority of people ever will.",
			"Pick one thing from this video and actually do it this week, knowing beats doing exactly never.",
			"If this was useful, subscribe for more like it, and drop a comment with the one you're starting with.",
			"See you in the next one.",
		},
	}
}

// unitSections builds count numbered sections from a pool, each sized to a
// per-section word budget so the assembled script starts near the target.
func unitSections(pool []entry, noun string, count int, title string, target int) []*section {
	// Framing overhead (hook + outro) is roughly fixed; split the rest.
	const overhead = 110
	budget := (target - overhead) / count
	if budget < 20 {
		budget = 20
	}

	secs := make([]*section, 0, count)
	for i := 0; i < count; i++ {
		e := pool[i%len(pool)]
		s := &section{
			name:     fmt.Sprintf("%s %d", noun, i+1),
			paddable: true,
		}
		s.sentences = append(s.sentences, e.lead)
		used := wordCount(e.lead)
		for _, sent := range e.sentences {
			if used >= budget {
				break
			}
			s.sentences = append(s.sentences, sent)
			used += wordCount(sent)
		}
		secs = append(secs, s)
	}
	return secs
}

// narrativeSections builds the fixed beat list for story-shaped families.
func narrativeSections(beats []struct {
	name      string
	sentences []string
}, title string) []*section {
	topic := strings.ToLower(firstWords(title, 6))
	secs := make([]*section, 0, len(beats))
	for _, b := range beats {
		s := &section{name: b.name, paddable: true}
		for _, sent := range b.sentences {
			s.sentences = append(s.sentences, strings.ReplaceAll(sent, "%TOPIC%", topic))
		}
		secs = append(secs, s)
	}
	return secs
}

// fitToTarget pads underweight scripts with elaboration beats spread over
// the paddable sections, and trims overweight ones sentence by sentence.
// Padding stops just under the target so a full beat never overshoots the
// upper tolerance bound.
func fitToTarget(secs []*section, title string, target, tol int) {
	topic := strings.ToLower(firstWords(title, 6))

	paddable := make([]*section, 0, len(secs))
	for _, s := range secs {
		if s.paddable {
			paddable = append(paddable, s)
		}
	}
	if len(paddable) == 0 {
		paddable = secs
	}

	total := 0
	for _, s := range secs {
		total += s.words()
	}

	// Pad up. Each beat is well under the tolerance, so stopping once we
	// cross (target - 50) keeps the final count inside the band.
	pi, ei := 0, 0
	for total < target-50 {
		beat := strings.ReplaceAll(elaborations[ei%len(elaborations)], "%TOPIC%", topic)
		sec := paddable[pi%len(paddable)]
		sec.sentences = append(sec.sentences, beat)
		total += wordCount(beat)
		pi++
		ei++
	}

	// Trim down in widening passes: drop trailing sentences from the longest
	// sections, first sparing two sentences per paddable section, then down
	// to the lead sentence, then from every section. A later pass only runs
	// when the earlier ones run dry, which happens with many short sections
	// against a small target.
	trim := func(pool []*section, minSentences int) {
		for total > target+tol/2 {
			var longest *section
			for _, s := range pool {
				if len(s.sentences) <= minSentences {
					continue
				}
				if longest == nil || s.words() > longest.words() {
					longest = s
				}
			}
			if longest == nil {
				return
			}
			last := longest.sentences[len(longest.sentences)-1]
			longest.sentences = longest.sentences[:len(longest.sentences)-1]
			total -= wordCount(last)
		}
	}
	trim(paddable, 2)
	trim(paddable, 1)
	trim(secs, 1)
}

// render joins the sections with [NAME - m:ss] markers. Timestamps assume
// the pacing rate; the END marker uses the slower TTS rate so it reflects
// the real narration length.
func (g *Generator) render(secs []*section) string {
	var b strings.Builder
	elapsed := 0
	for i, s := range secs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[%s - %s]\n", s.name, stamp(elapsed, g.wpm))
		b.WriteString(strings.Join(s.sentences, " "))
		elapsed += s.words()
	}
	fmt.Fprintf(&b, "\n\n[END - %s]", stamp(elapsed, g.ttsWPM))
	return b.String()
}

// stamp formats the elapsed word count as m:ss at the given rate.
func stamp(words, wpm int) string {
	sec := words * 60 / wpm
	return fmt.Sprintf("%d:%02d", sec/60, sec%60)
}

// categoryHint maps a title back to an idea category for pool selection.
// Titles don't carry their niche, so this keys off vocabulary.
func categoryHint(title string) string {
	lower := strings.ToLower(title)
	switch {
	case containsAny(lower, "money", "$", "invest", "budget", "wealth", "financ", "stock", "passive"):
		return "Finance"
	case strings.Contains(title, "AI") || containsAny(lower, "app", "tech", "phone", "computer", "website"):
		return "Technology"
	case containsAny(lower, "sleep", "health", "workout", "food", "morning", "anxiety", "burnout", "fasting"):
		return "Health"
	default:
		return "Educational"
	}
}

func wordCount(s string) int {
	return len(strings.Fields(s))
}

// firstWords returns up to n leading words of s, used to derive a short
// topic phrase from a title.
func firstWords(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
