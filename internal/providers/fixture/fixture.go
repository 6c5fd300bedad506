// Package fixture serves a deterministic data set useful for local
// development and bootstrapping without an API token.
package fixture

import (
	"context"
	"time"

	"github.com/jayala/vex-stats-service/internal/domain"
)

const seasonName = "VEX V5 Robotics Competition 2024-2025: High Stakes"

// Provider returns a static team with two events of history.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// GetTeamsByNumber returns the fixture team for any number queried.
func (p *Provider) GetTeamsByNumber(ctx context.Context, number string) ([]domain.Team, error) {
	_ = ctx
	return []domain.Team{
		{
			ID:           42,
			Number:       number,
			Name:         "Cyber Hawks",
			Organization: "Hawk Robotics Club",
			Location:     domain.Location{City: "Austin", Region: "Texas", Country: "United States"},
			Program:      domain.Program{Code: "V5RC", Name: "VEX V5 Robotics Competition"},
		},
	}, nil
}

// GetSeasons returns a single active season.
func (p *Provider) GetSeasons(ctx context.Context, activeOnly bool) ([]domain.Season, error) {
	_ = ctx
	_ = activeOnly
	return []domain.Season{{ID: 190, Name: seasonName}}, nil
}

// GetTeamEvents returns one past and one upcoming event.
func (p *Provider) GetTeamEvents(ctx context.Context, teamID int, startAfter string) ([]domain.EventRef, error) {
	_ = ctx
	_ = teamID
	_ = startAfter
	day := p.now().UTC().Truncate(24 * time.Hour)
	return []domain.EventRef{
		{ID: 101, Name: "Fall Kickoff", Start: day.AddDate(0, 0, -30).Format(time.RFC3339)},
		{ID: 102, Name: "Winter Regional", Start: day.AddDate(0, 0, 12).Format(time.RFC3339)},
	}, nil
}

// GetTeamSkills returns driver and programming runs at the past event.
func (p *Provider) GetTeamSkills(ctx context.Context, teamID int, seasonIDs []int) ([]domain.SkillRun, error) {
	_ = ctx
	_ = teamID
	_ = seasonIDs
	return []domain.SkillRun{
		{EventID: 101, EventName: "Fall Kickoff", SeasonID: 190, SeasonName: seasonName, Type: domain.SkillDriver, Score: 42, Rank: 15, Attempts: 3},
		{EventID: 101, EventName: "Fall Kickoff", SeasonID: 190, SeasonName: seasonName, Type: domain.SkillProgramming, Score: 33, Rank: 11, Attempts: 2},
	}, nil
}

// GetTeamRankings returns the qualification record at the past event.
func (p *Provider) GetTeamRankings(ctx context.Context, teamID int, seasonIDs []int) ([]domain.RankingRecord, error) {
	_ = ctx
	_ = teamID
	_ = seasonIDs
	return []domain.RankingRecord{
		{EventID: 101, Rank: 7, Wins: 5, Losses: 3, Ties: 0},
	}, nil
}

// GetTeamAwards returns one award with an event and one without.
func (p *Provider) GetTeamAwards(ctx context.Context, teamID int, seasonIDs []int) ([]domain.AwardRecord, error) {
	_ = ctx
	_ = teamID
	_ = seasonIDs
	return []domain.AwardRecord{
		{Title: "Judges Award (VRC)", EventID: 101, EventName: "Fall Kickoff", SeasonName: seasonName, HasEvent: true},
		{Title: "Volunteer Appreciation", SeasonName: seasonName},
	}, nil
}
