package aggregate

import (
	"reflect"
	"testing"

	"github.com/jayala/vex-stats-service/internal/domain"
)

func TestCleanTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Excellence Award (WC)", "Excellence Award"},
		{"Design Award (Middle School) (VRC)", "Design Award"},
		{"Judges Award", "Judges Award"},
		{" (only qualifier)", " (only qualifier)"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := CleanTitle(tc.in); got != tc.want {
			t.Fatalf("CleanTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanTitleIdempotent(t *testing.T) {
	inputs := []string{
		"Excellence Award (WC)",
		"Design Award",
		"  padded  ",
		" (x)",
		"",
	}
	for _, in := range inputs {
		once := CleanTitle(in)
		if twice := CleanTitle(once); twice != once {
			t.Fatalf("CleanTitle not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestAwardsByTitleFirstOccurrenceOrder(t *testing.T) {
	awards := []domain.AwardRecord{
		{Title: "Judges Award"},
		{Title: "Excellence Award (MS)"},
		{Title: "Judges Award (VRC)"},
		{Title: "Amaze Award"},
		{Title: "Excellence Award"},
	}

	got := AwardsByTitle(awards)
	want := []TitleCount{
		{Title: "Judges Award", Count: 2},
		{Title: "Excellence Award", Count: 2},
		{Title: "Amaze Award", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AwardsByTitle = %+v, want %+v", got, want)
	}
}

// Identical cleaned titles merge into one bucket even when the wins
// came from different events. Long-standing dashboard behavior.
func TestAwardsByTitleMergesAcrossEvents(t *testing.T) {
	awards := []domain.AwardRecord{
		{Title: "Excellence Award", EventID: 1, HasEvent: true},
		{Title: "Excellence Award", EventID: 2, HasEvent: true},
	}
	got := AwardsByTitle(awards)
	if len(got) != 1 || got[0].Count != 2 {
		t.Fatalf("expected a single merged bucket, got %+v", got)
	}
}
