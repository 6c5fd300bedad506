package aggregate

import (
	"testing"
	"time"

	"github.com/jayala/vex-stats-service/internal/domain"
)

func refDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad reference date %q: %v", value, err)
	}
	return parsed
}

func TestNextUpcomingEventSkipsPastPicksEarliest(t *testing.T) {
	ref := refDate(t, "2024-03-10")
	events := []domain.EventRef{
		{ID: 1, Name: "Yesterday Open", Start: "2024-03-09T00:00:00Z"},
		{ID: 2, Name: "Spring Regional", Start: "2024-03-15T00:00:00-04:00"},
		{ID: 3, Name: "State Champs", Start: "2024-04-01T00:00:00Z"},
	}

	got, ok := NextUpcomingEvent(events, ref)
	if !ok {
		t.Fatal("expected an upcoming event")
	}
	if got.Event.ID != 2 {
		t.Fatalf("expected event 2, got %d", got.Event.ID)
	}
	if got.Countdown != "In 5 days" {
		t.Fatalf("expected countdown 'In 5 days', got %q", got.Countdown)
	}
}

func TestNextUpcomingEventTodayAndTomorrow(t *testing.T) {
	ref := refDate(t, "2024-03-10")

	today, ok := NextUpcomingEvent([]domain.EventRef{{ID: 1, Start: "2024-03-10T09:00:00Z"}}, ref)
	if !ok || today.Countdown != "Today" {
		t.Fatalf("expected Today, got %+v ok=%v", today, ok)
	}

	tomorrow, ok := NextUpcomingEvent([]domain.EventRef{{ID: 1, Start: "2024-03-11T09:00:00Z"}}, ref)
	if !ok || tomorrow.Countdown != "Tomorrow" {
		t.Fatalf("expected Tomorrow, got %+v ok=%v", tomorrow, ok)
	}
}

func TestNextUpcomingEventNoQualifiers(t *testing.T) {
	ref := refDate(t, "2024-03-10")
	events := []domain.EventRef{
		{ID: 1, Start: "2023-01-01T00:00:00Z"},
		{ID: 2, Start: "not-a-date"},
		{ID: 3},
	}
	if _, ok := NextUpcomingEvent(events, ref); ok {
		t.Fatal("expected no upcoming event")
	}
	if _, ok := NextUpcomingEvent(nil, ref); ok {
		t.Fatal("expected no upcoming event on empty input")
	}
}
