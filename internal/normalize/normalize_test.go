package normalize

import (
	"reflect"
	"testing"

	"github.com/jayala/vex-stats-service/internal/domain"
)

func TestSummariesJoinsOnEventID(t *testing.T) {
	events := []domain.EventRef{
		{ID: 1, Name: "Regional Qualifier", Start: "2024-02-10T00:00:00-05:00"},
		{ID: 2, Name: "State Championship", Start: "2024-03-01T00:00:00-05:00"},
	}
	skills := []domain.SkillRun{
		{EventID: 1, EventName: "Regional Qualifier", Type: domain.SkillDriver, Score: 40, Rank: 12},
		{EventID: 1, EventName: "Regional Qualifier", Type: domain.SkillProgramming, Score: 35, Rank: 9},
	}
	rankings := []domain.RankingRecord{
		{EventID: 1, Rank: 4, Wins: 6, Losses: 2, Ties: 0},
	}
	awards := []domain.AwardRecord{
		{Title: "Excellence Award", EventID: 2, EventName: "State Championship", HasEvent: true},
	}

	got := Summaries(events, skills, rankings, awards)

	if len(got) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(got))
	}

	first := got[1]
	if first.EventName != "Regional Qualifier" {
		t.Fatalf("unexpected event name %q", first.EventName)
	}
	if first.Start != "2024-02-10T00:00:00-05:00" {
		t.Fatalf("expected date from events page, got %q", first.Start)
	}
	want := domain.BestRun{Driver: 40, Programming: 35, Total: 75, Rank: 12}
	if first.Skills != want {
		t.Fatalf("unexpected best run %+v", first.Skills)
	}
	if first.Ranking == nil || first.Ranking.Rank != 4 {
		t.Fatalf("expected ranking rank 4, got %+v", first.Ranking)
	}

	second := got[2]
	if len(second.Awards) != 1 || second.Awards[0].Title != "Excellence Award" {
		t.Fatalf("unexpected awards %+v", second.Awards)
	}
}

func TestSummariesEventsPageWinsOverEmbeddedDate(t *testing.T) {
	events := []domain.EventRef{{ID: 7, Name: "Worlds", Start: "2024-04-25T00:00:00Z"}}
	skills := []domain.SkillRun{
		// Embedded event payload carries a stale date; the events page is canonical.
		{EventID: 7, EventName: "Worlds", EventStart: "2023-04-20T00:00:00Z", Type: domain.SkillDriver, Score: 10},
	}

	got := Summaries(events, skills, nil, nil)
	if got[7].Start != "2024-04-25T00:00:00Z" {
		t.Fatalf("expected canonical date, got %q", got[7].Start)
	}
}

func TestSummariesDropsEventlessSkillsAndRankings(t *testing.T) {
	skills := []domain.SkillRun{{EventID: 0, Type: domain.SkillDriver, Score: 50}}
	rankings := []domain.RankingRecord{{EventID: 0, Rank: 1}}

	got := Summaries(nil, skills, rankings, nil)
	if len(got) != 0 {
		t.Fatalf("expected no summaries, got %+v", got)
	}
}

func TestSummariesKeepsFirstRankingPerEvent(t *testing.T) {
	rankings := []domain.RankingRecord{
		{EventID: 3, Rank: 5, Wins: 4},
		{EventID: 3, Rank: 9, Wins: 1},
	}
	got := Summaries(nil, nil, rankings, nil)
	if got[3].Ranking.Rank != 5 {
		t.Fatalf("expected first ranking to win, got rank %d", got[3].Ranking.Rank)
	}
}

func TestBestByTypeDuplicateRunsMaxWinsTiesFirstSeen(t *testing.T) {
	runs := []domain.SkillRun{
		{EventID: 1, Type: domain.SkillDriver, Score: 30, Rank: 8},
		{EventID: 1, Type: domain.SkillDriver, Score: 45, Rank: 3},
		{EventID: 1, Type: domain.SkillDriver, Score: 45, Rank: 99},
		{EventID: 1, Type: domain.SkillProgramming, Score: 20, Rank: 11},
		{EventID: 1, Type: domain.SkillUnknown, Score: 70, Rank: 1},
	}

	got := bestByType(runs)
	if got.Driver != 45 || got.Programming != 20 {
		t.Fatalf("unexpected scores %+v", got)
	}
	// Unknown-typed runs never contribute a score but the top raw score
	// still decides the rank, matching the dashboard's rank pick.
	if got.Rank != 1 {
		t.Fatalf("expected rank from highest-scoring run, got %d", got.Rank)
	}
	if got.Total != 65 {
		t.Fatalf("expected total 65, got %d", got.Total)
	}
}

func TestResolveAwardsFillsDatesAndUnknownEvent(t *testing.T) {
	events := []domain.EventRef{{ID: 4, Name: "League Finale", Start: "2024-01-20T00:00:00Z"}}
	awards := []domain.AwardRecord{
		{Title: "Design Award (MS)", EventID: 4, EventName: "League Finale", HasEvent: true},
		{Title: "Volunteer of the Year", HasEvent: false},
		{Title: "Judges Award", EventID: 9, HasEvent: true}, // id not on events page
	}

	got := ResolveAwards(events, awards)
	if len(got) != 3 {
		t.Fatalf("expected all awards kept, got %d", len(got))
	}
	if got[0].EventStart != "2024-01-20T00:00:00Z" {
		t.Fatalf("expected date resolved from events page, got %q", got[0].EventStart)
	}
	if got[1].EventName != domain.UnknownEventName {
		t.Fatalf("expected unknown event label, got %q", got[1].EventName)
	}
	if got[2].EventName != domain.UnknownEventName || got[2].EventStart != "" {
		t.Fatalf("expected unresolvable event to degrade, got %+v", got[2])
	}
}

func TestResolveAwardsPreservesInputOrder(t *testing.T) {
	awards := []domain.AwardRecord{
		{Title: "B", HasEvent: false},
		{Title: "A", HasEvent: false},
		{Title: "C", HasEvent: false},
	}
	got := ResolveAwards(nil, awards)
	titles := []string{got[0].Title, got[1].Title, got[2].Title}
	if !reflect.DeepEqual(titles, []string{"B", "A", "C"}) {
		t.Fatalf("order changed: %v", titles)
	}
}
