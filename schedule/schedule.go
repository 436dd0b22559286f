// Package schedule computes publish times from the configured cron
// expressions, so uploads land on the channel's posting slots instead of
// whenever the pipeline happened to finish.
package schedule

import (
	"fmt"
	"time"

	"github.com/gorhill/cronexpr"

	"faceless-pipeline/config"
)

// Planner picks the next publish slot.
type Planner struct {
	exprs        []*cronexpr.Expression
	loc          *time.Location
	fallbackHour int
}

// New parses the configured cron expressions and timezone.
func New(cfg *config.Config) (*Planner, error) {
	loc, err := time.LoadLocation(cfg.Schedule.Timezone)
	if err != nil {
		return nil, fmt.Errorf("schedule timezone %q: %w", cfg.Schedule.Timezone, err)
	}

	p := &Planner{loc: loc, fallbackHour: cfg.Schedule.FallbackHour}
	for _, raw := range cfg.Schedule.PublishCrons {
		expr, err := cronexpr.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("publish cron %q: %w", raw, err)
		}
		p.exprs = append(p.exprs, expr)
	}
	return p, nil
}

// NextPublishTime returns the earliest upcoming slot across all configured
// expressions, strictly after the given time. With no expressions it falls
// back to the configured hour tomorrow.
func (p *Planner) NextPublishTime(after time.Time) time.Time {
	local := after.In(p.loc)

	var next time.Time
	for _, expr := range p.exprs {
		t := expr.Next(local)
		if t.IsZero() {
			continue
		}
		if next.IsZero() || t.Before(next) {
			next = t
		}
	}
	if !next.IsZero() {
		return next
	}

	// No usable expressions: same hour tomorrow.
	fallback := time.Date(local.Year(), local.Month(), local.Day(), p.fallbackHour, 0, 0, 0, p.loc)
	if !fallback.After(local) {
		fallback = fallback.AddDate(0, 0, 1)
	}
	return fallback
}

// UpcomingSlots returns the next n publish times in order, useful for
// showing the queue.
func (p *Planner) UpcomingSlots(after time.Time, n int) []time.Time {
	out := make([]time.Time, 0, n)
	t := after
	for i := 0; i < n; i++ {
		t = p.NextPublishTime(t)
		out = append(out, t)
	}
	return out
}
