// Package testutil holds shared test doubles for the service layer.
package testutil

import (
	"context"

	"github.com/jayala/vex-stats-service/internal/domain"
)

// StubProvider implements the full stats provider with per-method hooks.
// Unset hooks return empty pages so tests only wire what they assert on.
type StubProvider struct {
	TeamsFn    func(ctx context.Context, number string) ([]domain.Team, error)
	SeasonsFn  func(ctx context.Context, activeOnly bool) ([]domain.Season, error)
	EventsFn   func(ctx context.Context, teamID int, startAfter string) ([]domain.EventRef, error)
	SkillsFn   func(ctx context.Context, teamID int, seasonIDs []int) ([]domain.SkillRun, error)
	RankingsFn func(ctx context.Context, teamID int, seasonIDs []int) ([]domain.RankingRecord, error)
	AwardsFn   func(ctx context.Context, teamID int, seasonIDs []int) ([]domain.AwardRecord, error)
}

func (s *StubProvider) GetTeamsByNumber(ctx context.Context, number string) ([]domain.Team, error) {
	if s.TeamsFn == nil {
		return nil, nil
	}
	return s.TeamsFn(ctx, number)
}

func (s *StubProvider) GetSeasons(ctx context.Context, activeOnly bool) ([]domain.Season, error) {
	if s.SeasonsFn == nil {
		return nil, nil
	}
	return s.SeasonsFn(ctx, activeOnly)
}

func (s *StubProvider) GetTeamEvents(ctx context.Context, teamID int, startAfter string) ([]domain.EventRef, error) {
	if s.EventsFn == nil {
		return nil, nil
	}
	return s.EventsFn(ctx, teamID, startAfter)
}

func (s *StubProvider) GetTeamSkills(ctx context.Context, teamID int, seasonIDs []int) ([]domain.SkillRun, error) {
	if s.SkillsFn == nil {
		return nil, nil
	}
	return s.SkillsFn(ctx, teamID, seasonIDs)
}

func (s *StubProvider) GetTeamRankings(ctx context.Context, teamID int, seasonIDs []int) ([]domain.RankingRecord, error) {
	if s.RankingsFn == nil {
		return nil, nil
	}
	return s.RankingsFn(ctx, teamID, seasonIDs)
}

func (s *StubProvider) GetTeamAwards(ctx context.Context, teamID int, seasonIDs []int) ([]domain.AwardRecord, error) {
	if s.AwardsFn == nil {
		return nil, nil
	}
	return s.AwardsFn(ctx, teamID, seasonIDs)
}
