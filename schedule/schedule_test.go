package schedule

import (
	"testing"
	"time"

	"faceless-pipeline/config"
)

func mustPlanner(t *testing.T, cfg *config.Config) *Planner {
	t.Helper()
	p, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestNextPublishTime_PicksEarliestSlot(t *testing.T) {
	cfg := config.Default() // Tue + Fri 14:00 America/New_York
	p := mustPlanner(t, cfg)

	loc, _ := time.LoadLocation("America/New_York")
	// Wednesday noon → next slot is Friday 14:00.
	after := time.Date(2026, 8, 26, 12, 0, 0, 0, loc)

	got := p.NextPublishTime(after)
	want := time.Date(2026, 8, 28, 14, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("NextPublishTime() = %v, want %v", got, want)
	}
}

func TestNextPublishTime_StrictlyAfter(t *testing.T) {
	cfg := config.Default()
	p := mustPlanner(t, cfg)

	loc, _ := time.LoadLocation("America/New_York")
	// Exactly at a slot → next slot, not this one.
	at := time.Date(2026, 8, 28, 14, 0, 0, 0, loc) // Friday 14:00

	got := p.NextPublishTime(at)
	if !got.After(at) {
		t.Errorf("NextPublishTime() = %v, not after %v", got, at)
	}
}

func TestNextPublishTime_FallbackWithoutCrons(t *testing.T) {
	cfg := config.Default()
	cfg.Schedule.PublishCrons = nil
	p := mustPlanner(t, cfg)

	loc, _ := time.LoadLocation("America/New_York")
	after := time.Date(2026, 8, 26, 16, 0, 0, 0, loc) // past 14:00 today

	got := p.NextPublishTime(after)
	want := time.Date(2026, 8, 27, 14, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("NextPublishTime() fallback = %v, want %v", got, want)
	}
}

func TestUpcomingSlots_Ordered(t *testing.T) {
	p := mustPlanner(t, config.Default())

	slots := p.UpcomingSlots(time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC), 4)
	if len(slots) != 4 {
		t.Fatalf("UpcomingSlots() returned %d slots, want 4", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if !slots[i].After(slots[i-1]) {
			t.Errorf("slot %d (%v) not after slot %d (%v)", i, slots[i], i-1, slots[i-1])
		}
	}
}

func TestNew_BadTimezone(t *testing.T) {
	cfg := config.Default()
	cfg.Schedule.Timezone = "Not/AZone"
	if _, err := New(cfg); err == nil {
		t.Error("New() error = nil, want bad timezone error")
	}
}

func TestNew_BadCron(t *testing.T) {
	cfg := config.Default()
	cfg.Schedule.PublishCrons = []string{"not a cron"}
	if _, err := New(cfg); err == nil {
		t.Error("New() error = nil, want parse error")
	}
}
