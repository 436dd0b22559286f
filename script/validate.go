package script

import (
	"fmt"
	"regexp"
	"strings"

	"faceless-pipeline/types"
)

var markerRe = regexp.MustCompile(`\[[A-Z][A-Z0-9 '&-]*? - \d+:\d{2}\]`)

// Validate checks a script for the properties downstream stages rely on:
// word count inside the tolerance band, section and END markers present,
// and no unexpanded placeholders left in the text.
func Validate(s *types.Script) error {
	if s.Text == "" {
		return fmt.Errorf("empty script text")
	}
	if strings.Contains(s.Text, "%TOPIC%") {
		return fmt.Errorf("unexpanded placeholder in script")
	}

	tol := tolerance(s.TargetWords)
	if s.WordCount < s.TargetWords-tol || s.WordCount > s.TargetWords+tol {
		return fmt.Errorf("word count %d outside %d±%d", s.WordCount, s.TargetWords, tol)
	}

	markers := markerRe.FindAllString(s.Text, -1)
	if len(markers) < 3 {
		return fmt.Errorf("only %d section markers, want at least hook, one body section and end", len(markers))
	}
	if !strings.Contains(markers[len(markers)-1], "[END - ") {
		return fmt.Errorf("script does not end with an END marker")
	}
	return nil
}

// CleanForTTS strips the section markers and collapses whitespace, leaving
// only the prose the TTS engine should read.
func CleanForTTS(text string) string {
	out := markerRe.ReplaceAllString(text, "")
	lines := strings.Split(out, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, strings.TrimSpace(l))
		}
	}
	return strings.Join(kept, "\n\n")
}
