package robotevents

import (
	"strings"

	"github.com/jayala/vex-stats-service/internal/domain"
)

func mapTeam(t teamData) domain.Team {
	return domain.Team{
		ID:           t.ID,
		Number:       t.Number,
		Name:         t.TeamName,
		Organization: t.Organization,
		Location: domain.Location{
			City:    t.Location.City,
			Region:  t.Location.Region,
			Country: t.Location.Country,
		},
		Program: domain.Program{
			Code: t.Program.Code,
			Name: t.Program.Name,
		},
	}
}

func mapSeason(s seasonData) domain.Season {
	return domain.Season{ID: s.ID, Name: s.Name}
}

func mapEvent(e eventData) domain.EventRef {
	return domain.EventRef{ID: e.ID, Name: e.Name, Start: e.Start}
}

func mapSkill(s skillData) domain.SkillRun {
	run := domain.SkillRun{
		Type:     mapSkillType(s.Type),
		Score:    s.Score,
		Rank:     s.Rank,
		Attempts: s.Attempts,
	}
	if s.Event != nil {
		run.EventID = s.Event.ID
		run.EventName = s.Event.Name
		run.EventStart = s.Event.Start
	}
	if s.Season != nil {
		run.SeasonID = s.Season.ID
		run.SeasonName = s.Season.Name
	}
	return run
}

// mapSkillType matches loosely: the upstream type field has been seen
// as "driver", "Driver Skills", "programming", "Programming Skills".
func mapSkillType(raw string) domain.SkillType {
	lowered := strings.ToLower(raw)
	switch {
	case strings.Contains(lowered, "driver"):
		return domain.SkillDriver
	case strings.Contains(lowered, "program"):
		return domain.SkillProgramming
	default:
		return domain.SkillUnknown
	}
}

func mapRanking(r rankingData) domain.RankingRecord {
	rec := domain.RankingRecord{
		Rank:   r.Rank,
		Wins:   r.Wins,
		Losses: r.Losses,
		Ties:   r.Ties,
	}
	if r.Event != nil {
		rec.EventID = r.Event.ID
	}
	return rec
}

func mapAward(a awardData) domain.AwardRecord {
	rec := domain.AwardRecord{Title: a.Title}
	if a.Event != nil {
		rec.HasEvent = true
		rec.EventID = a.Event.ID
		rec.EventName = a.Event.Name
		rec.EventStart = a.Event.Start
	}
	if a.Season != nil {
		rec.SeasonName = a.Season.Name
	}
	return rec
}
