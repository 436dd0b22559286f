package ideas

import (
	"fmt"
	"time"
)

// variations holds the date-derived fillers substituted into title templates.
// Deriving them from the current day/hour keeps output fresh across days
// without producing a new random title set on every invocation.
type variations struct {
	Small       int // list sizes: 3..17
	Medium      int // ages, K-views low bound
	Large       int // K-views high bound
	Percentage  int
	Money       int
	TimeDays    int
	TimeMinutes int
	TipsCount   int

	TimeFrame string // rotating phrase, e.g. "in 2026" or "This Week"
	Year      int
	NextYear  int
	Month     string
}

func variationsAt(now time.Time) variations {
	daySeed := now.Day()
	hourSeed := now.Hour()
	year := now.Year()
	month := now.Month().String()

	pick := func(pool []int, seed int) int { return pool[seed%len(pool)] }

	v := variations{
		Small:       pick([]int{3, 5, 7, 10, 11, 13, 15, 17}, daySeed),
		Medium:      pick([]int{20, 25, 30, 40, 50, 60, 75}, daySeed),
		Large:       pick([]int{100, 365, 500, 1000, 2024}, daySeed),
		Percentage:  pick([]int{67, 73, 81, 87, 92, 96, 99}, daySeed),
		Money:       pick([]int{100, 250, 500, 1000, 2500, 5000, 10000}, hourSeed),
		TimeDays:    pick([]int{3, 7, 14, 21, 30, 60, 90}, daySeed),
		TimeMinutes: pick([]int{2, 5, 10, 15, 30, 60}, hourSeed),
		TipsCount:   pick([]int{5, 7, 9, 10, 12, 15, 20}, daySeed),
		Year:        year,
		NextYear:    year + 1,
		Month:       month,
	}

	timeFrames := []string{
		fmt.Sprintf("in %d", year),
		fmt.Sprintf("(%s %d)", month, year),
		"Right Now",
		"This Week",
		fmt.Sprintf("Before %d", year+1),
		"Starting Today",
	}
	v.TimeFrame = timeFrames[daySeed%len(timeFrames)]

	return v
}
