package robotevents

import (
	"testing"

	"github.com/jayala/vex-stats-service/internal/domain"
)

func TestMapSkillType(t *testing.T) {
	cases := []struct {
		in   string
		want domain.SkillType
	}{
		{"driver", domain.SkillDriver},
		{"Driver Skills", domain.SkillDriver},
		{"programming", domain.SkillProgramming},
		{"Programming Skills", domain.SkillProgramming},
		{"PROGRAM", domain.SkillProgramming},
		{"autonomous", domain.SkillUnknown},
		{"", domain.SkillUnknown},
	}
	for _, tc := range cases {
		if got := mapSkillType(tc.in); got != tc.want {
			t.Fatalf("mapSkillType(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestMapSkillNilEmbeds(t *testing.T) {
	run := mapSkill(skillData{Rank: 3, Score: 50, Attempts: 2, Type: "driver"})
	if run.EventID != 0 || run.SeasonID != 0 {
		t.Fatalf("expected zero event/season ids, got %+v", run)
	}
	if run.Score != 50 || run.Type != domain.SkillDriver {
		t.Fatalf("unexpected run %+v", run)
	}
}

func TestMapAwardMissingEvent(t *testing.T) {
	aw := mapAward(awardData{Title: "Sportsmanship Award"})
	if aw.HasEvent {
		t.Fatalf("expected HasEvent false, got %+v", aw)
	}

	withEvent := mapAward(awardData{
		Title:  "Excellence Award (MS)",
		Event:  &eventRef{ID: 5, Name: "State", Start: "2024-03-02T00:00:00Z"},
		Season: &seasonRef{ID: 190, Name: "High Stakes"},
	})
	if !withEvent.HasEvent || withEvent.EventID != 5 || withEvent.SeasonName != "High Stakes" {
		t.Fatalf("unexpected award %+v", withEvent)
	}
}

func TestMapRankingMissingEvent(t *testing.T) {
	rec := mapRanking(rankingData{Rank: 4, Wins: 6, Losses: 2, Ties: 1})
	if rec.EventID != 0 {
		t.Fatalf("expected zero event id, got %+v", rec)
	}
	if rec.Wins != 6 || rec.Ties != 1 {
		t.Fatalf("unexpected record %+v", rec)
	}
}
