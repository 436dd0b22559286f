package script

import (
	"regexp"
	"strings"
)

// Kind is the closed set of template families a title can route to.
// Classification is explicit so every family has exactly one builder;
// adding a family means adding a Kind and a case, not another substring
// buried in an if-chain.
type Kind string

const (
	KindListicle      Kind = "listicle"       // "7 Money Rules ...", "10 Apps That ..."
	KindChallenge     Kind = "challenge"      // "I Tried X for 30 Days"
	KindLessons       Kind = "lessons"        // "Things I Wish I Knew ...", "Lessons From ..."
	KindHistorical    Kind = "historical"     // biographical / history deep dives
	KindPassiveIncome Kind = "passive_income" // "$X Per Month While I Sleep"
	KindSelfHelp      Kind = "self_help"      // anxiety, sleep, burnout, routines
	KindHowTo         Kind = "how_to"         // "How to ..."
	KindEducational   Kind = "educational"    // fallback
)

// listNouns are the plural nouns that mark a leading-count list title.
var listNouns = []string{
	"rules", "mistakes", "habits", "tips", "ways", "tools", "apps",
	"foods", "signs", "skills", "facts", "tricks", "stocks", "ideas",
	"features", "websites", "technologies", "hacks", "events", "discoveries",
}

var countRe = regexp.MustCompile(`\d+`)

// Classify routes a title to its template family. Order matters: the most
// specific signals win, the educational family catches everything else.
func Classify(title string) Kind {
	lower := strings.ToLower(title)

	switch {
	case strings.Contains(title, "$") && containsAny(lower, "passive", "while i sleep", "per month", "per day"):
		return KindPassiveIncome

	case containsAny(lower, "i tried", "i tested", "i did", "i ate", "challenge"):
		return KindChallenge

	case containsAny(lower, "histor", "da vinci", "newton", "einstein", "changed everything", "ancient"):
		return KindHistorical

	case hasLeadingCount(lower) && hasListNoun(lower):
		return KindListicle

	case containsAny(lower, "anxiety", "stress", "mental health", "insomnia", "burnout", "sleep", "meditation", "morning routine", "workout"):
		return KindSelfHelp

	case containsAny(lower, "lesson", "wish i knew", "learned the hard way"):
		return KindLessons

	case strings.Contains(lower, "how to"):
		return KindHowTo

	default:
		return KindEducational
	}
}

// ExtractCount pulls the first integer out of the title, clamped to a range
// that keeps section counts sane. Titles without a number default to 5.
func ExtractCount(title string) int {
	m := countRe.FindString(title)
	if m == "" {
		return 5
	}
	n := 0
	for _, r := range m {
		n = n*10 + int(r-'0')
	}
	if n < 3 {
		return 3
	}
	if n > 20 {
		return 20
	}
	return n
}

// leadingCountOr is ExtractCount restricted to counts at the start of the
// title. Non-list families often carry incidental numbers ("at Age 25",
// "$2500 Per Month") that must not drive the section count.
func leadingCountOr(title string, fallback int) int {
	if hasLeadingCount(strings.ToLower(title)) {
		return ExtractCount(title)
	}
	return fallback
}

// unitNoun picks the section label for a list-family title, e.g. RULE for
// "7 Money Rules" and MISTAKE for "5 Money Mistakes".
func unitNoun(title string) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "rule"):
		return "RULE"
	case strings.Contains(lower, "mistake"):
		return "MISTAKE"
	case strings.Contains(lower, "habit"):
		return "HABIT"
	case strings.Contains(lower, "lesson"):
		return "LESSON"
	case strings.Contains(lower, "skill"):
		return "SKILL"
	case strings.Contains(lower, "app") || strings.Contains(lower, "tool") || strings.Contains(lower, "website"):
		return "TOOL"
	case strings.Contains(lower, "step"):
		return "STEP"
	default:
		return "POINT"
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func hasLeadingCount(lower string) bool {
	loc := countRe.FindStringIndex(lower)
	return loc != nil && loc[0] <= 4
}

func hasListNoun(lower string) bool {
	for _, noun := range listNouns {
		if strings.Contains(lower, noun) {
			return true
		}
	}
	return false
}
