package ideas

import (
	"fmt"
	"strings"
)

// Category is the internal bucket a niche label maps to. It drives which
// title templates and keyword pools are eligible.
type Category string

const (
	CategoryFinance    Category = "finance"
	CategoryTechnology Category = "technology"
	CategoryHealth     Category = "health"
	CategoryEducation  Category = "educational"
)

// CategoryForNiche maps a free-form niche label to a template category.
func CategoryForNiche(niche string) Category {
	switch {
	case strings.Contains(niche, "Finance"):
		return CategoryFinance
	case strings.Contains(niche, "Technology"), strings.Contains(niche, "Tech"):
		return CategoryTechnology
	case strings.Contains(niche, "Health"), strings.Contains(niche, "Wellness"):
		return CategoryHealth
	default:
		return CategoryEducation
	}
}

// categoryKeywords are the fixed keyword pools attached to ideas.
var categoryKeywords = map[Category][]string{
	CategoryFinance:    {"money", "finance", "investing", "wealth", "savings"},
	CategoryTechnology: {"tech", "AI", "apps", "productivity", "future"},
	CategoryHealth:     {"health", "wellness", "fitness", "lifestyle", "habits"},
	CategoryEducation:  {"education", "learning", "facts", "knowledge", "skills"},
}

// titleTemplates expands a category into concrete candidate titles using the
// current date-derived fillers.
func titleTemplates(cat Category, v variations) []string {
	switch cat {
	case CategoryFinance:
		return []string{
			// Money mistakes series
			fmt.Sprintf("%d Money Mistakes That Keep You Poor (Fix Them %s)", v.Small, v.TimeFrame),
			fmt.Sprintf("The $%d Mistake %d%% of People Make", v.Money, v.Percentage),
			fmt.Sprintf("%d Financial Habits of Millionaires %s", v.TipsCount, v.TimeFrame),
			fmt.Sprintf("Why %d%% of People Never Build Wealth (Harsh Truth)", v.Percentage),
			fmt.Sprintf("The Money Rule That Changed My Life at Age %d", v.Medium+5),

			// Budgeting variations
			fmt.Sprintf("The %d-Minute Budget System That Works", v.TimeMinutes),
			fmt.Sprintf("How to Save $%d in %d Days (Proven Method)", v.Money, v.TimeDays),
			fmt.Sprintf("The Lazy Person's Guide to Saving $%d %s", v.Large*10, v.TimeFrame),
			fmt.Sprintf("Budget Like a Millionaire With Only $%d", v.Money),

			// Investment topics
			fmt.Sprintf("%d Stocks That Pay You Every Month %s", v.Small, v.TimeFrame),
			fmt.Sprintf("How to Turn $%d into $%d (No BS)", v.Money, v.Money*10),
			fmt.Sprintf("The %d-Minute Investment Strategy Beating Wall Street", v.TimeMinutes),

			// Passive income variations
			fmt.Sprintf("%d Passive Income Ideas That Actually Work %s", v.TipsCount, v.TimeFrame),
			fmt.Sprintf("How I Make $%d Per Month While I Sleep", v.Money),
			fmt.Sprintf("The $%d Per Day Method Nobody Talks About", v.Medium),
			fmt.Sprintf("Passive Income: Expectation vs Reality %s", v.TimeFrame),
		}

	case CategoryTechnology:
		return []string{
			// AI tools
			fmt.Sprintf("%d AI Tools That Will Change Everything %s", v.TipsCount, v.TimeFrame),
			fmt.Sprintf("The AI Tool That Saves Me %d Hours Per Week", v.TimeMinutes),
			fmt.Sprintf("%d%% of People Don't Know These AI Features", v.Percentage),

			// Productivity tech
			fmt.Sprintf("%d Apps That 10x Your Productivity %s", v.Small, v.TimeFrame),
			fmt.Sprintf("The %d-Minute Tech Setup That Changed My Life", v.TimeMinutes),
			fmt.Sprintf("Why I Deleted %d Popular Apps (And What I Use Instead)", v.TipsCount),

			// Tips and tricks
			fmt.Sprintf("%d Hidden Features in Your Phone %s", v.TipsCount, v.TimeFrame),
			fmt.Sprintf("The Computer Trick That Saves $%d Per Year", v.Money),
			fmt.Sprintf("%d Websites That Feel Illegal to Know", v.Small),

			// Future tech
			"The Next Big Thing After AI (It's Already Here)",
			fmt.Sprintf("%d Technologies That Will Define %d", v.Small, v.NextYear),
			fmt.Sprintf("Why %d%% of Tech Jobs Will Disappear by %d", v.Percentage, v.NextYear+1),
		}

	case CategoryHealth:
		return []string{
			// Morning routines
			fmt.Sprintf("The %d-Minute Morning Routine That Changed Everything", v.TimeMinutes),
			fmt.Sprintf("%d Morning Habits of Highly Successful People", v.Small),

			// Sleep optimization
			fmt.Sprintf("How to Fall Asleep in %d Minutes (Military Method)", v.TimeMinutes),
			fmt.Sprintf("%d Sleep Mistakes That Ruin Your Day", v.Small),
			fmt.Sprintf("The %d PM Rule That Fixed My Insomnia", v.TimeMinutes),

			// Fitness and diet
			fmt.Sprintf("%d Foods That Boost Brain Power %s", v.TipsCount, v.TimeFrame),
			fmt.Sprintf("The %d-Minute Workout Better Than Running", v.TimeMinutes),
			fmt.Sprintf("I Tried Intermittent Fasting for %d Days (Results)", v.TimeDays),

			// Mental health
			fmt.Sprintf("%d Signs Your Mental Health Needs Attention", v.Small),
			fmt.Sprintf("The %d-Minute Anxiety Fix That Actually Works", v.TimeMinutes),
			fmt.Sprintf("How I Beat Burnout in %d Days", v.TimeDays),
		}

	default:
		return []string{
			// Historical
			fmt.Sprintf("%d Historical Facts That Will Blow Your Mind", v.TipsCount),
			fmt.Sprintf("The %d Events That Changed Everything %s", v.Small, v.TimeFrame),

			// Science
			fmt.Sprintf("%d Scientific Discoveries That Change Everything %s", v.Small, v.TimeFrame),
			fmt.Sprintf("Why %d%% of What You Learned in School is Wrong", v.Percentage),

			// Psychology
			fmt.Sprintf("%d Psychology Tricks That Always Work", v.TipsCount),
			fmt.Sprintf("The %d-Second Rule That Changes Your Brain", v.TimeMinutes),
			"How Your Mind Tricks You Every Day (And How to Stop It)",

			// Self-improvement
			fmt.Sprintf("%d Skills Everyone Should Learn %s", v.Small, v.TimeFrame),
			fmt.Sprintf("The %d-Day Challenge That Will Transform You", v.TimeDays),
			fmt.Sprintf("How to Learn Anything %dx Faster (Science-Based)", v.Small),

			// Life hacks
			fmt.Sprintf("%d Life Hacks That Actually Work %s", v.TipsCount, v.TimeFrame),
			fmt.Sprintf("The %d-Minute Habit That Solves %d%% of Problems", v.TimeMinutes, v.Percentage),
			fmt.Sprintf("Things I Wish I Knew at Age %d", v.Medium),
		}
	}
}

// hookFor picks the opening hook by keyword matching on the produced title.
func hookFor(title string, v variations) string {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(title, "AI") || strings.Contains(lower, "tech"):
		return "This changes everything about how we work"
	case strings.Contains(title, "$") || strings.Contains(lower, "money"):
		return "The math behind this will shock you"
	case strings.Contains(lower, "minute") || strings.Contains(lower, "hour"):
		return fmt.Sprintf("Saves %d hours per week minimum", v.TimeMinutes)
	case strings.Contains(lower, "mistake"):
		return fmt.Sprintf("%d%% of people make this exact mistake", v.Percentage)
	case strings.Contains(lower, "hack") || strings.Contains(lower, "trick"):
		return "Once you know this, you can't unknow it"
	case strings.Contains(lower, "scien"):
		return "The research on this is mind-blowing"
	case strings.Contains(lower, "histor"):
		return "This fact changes how you see everything"
	default:
		return "What happens next will surprise you"
	}
}
