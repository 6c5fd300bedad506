package aggregate

import (
	"time"

	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/timeutil"
)

// Upcoming is the next event on the team's calendar with its countdown
// label ("Today", "Tomorrow", "In {n} days").
type Upcoming struct {
	Event     domain.EventRef `json:"event"`
	Countdown string          `json:"countdown"`
	Days      int             `json:"days"`
}

// NextUpcomingEvent picks the earliest event whose start date parses
// and falls on or after ref's calendar day. Events with missing or
// malformed dates never qualify; returns false when nothing does.
func NextUpcomingEvent(events []domain.EventRef, ref time.Time) (Upcoming, bool) {
	cutoff := ref.AddDate(0, 0, -1)

	var best domain.EventRef
	var bestDate time.Time
	found := false

	for _, ev := range events {
		if ev.Start == "" {
			continue
		}
		date, err := timeutil.ParseEventDate(ev.Start)
		if err != nil {
			continue
		}
		if timeutil.DaysUntil(cutoff, date) <= 0 {
			continue
		}
		if !found || date.Before(bestDate) {
			best = ev
			bestDate = date
			found = true
		}
	}

	if !found {
		return Upcoming{}, false
	}

	days := timeutil.DaysUntil(ref, bestDate)
	return Upcoming{
		Event:     best,
		Countdown: timeutil.CountdownLabel(days),
		Days:      days,
	}, true
}
