// Package providers defines how upstream competition data is fetched
// and the error taxonomy transport failures collapse into.
package providers

import (
	"context"

	"github.com/jayala/vex-stats-service/internal/domain"
)

// TeamProvider looks up teams by their display number.
type TeamProvider interface {
	GetTeamsByNumber(ctx context.Context, number string) ([]domain.Team, error)
}

// SeasonProvider fetches competition seasons.
type SeasonProvider interface {
	GetSeasons(ctx context.Context, activeOnly bool) ([]domain.Season, error)
}

// EventProvider fetches a team's events. startAfter, when non-empty, is
// an ISO-8601 lower bound on the event start date.
type EventProvider interface {
	GetTeamEvents(ctx context.Context, teamID int, startAfter string) ([]domain.EventRef, error)
}

// SkillsProvider fetches a team's skills runs for a set of seasons.
// Season id lists are unordered sets; callers re-sort and re-group.
type SkillsProvider interface {
	GetTeamSkills(ctx context.Context, teamID int, seasonIDs []int) ([]domain.SkillRun, error)
}

// RankingsProvider fetches a team's event rankings for a set of seasons.
type RankingsProvider interface {
	GetTeamRankings(ctx context.Context, teamID int, seasonIDs []int) ([]domain.RankingRecord, error)
}

// AwardsProvider fetches a team's awards for a set of seasons.
type AwardsProvider interface {
	GetTeamAwards(ctx context.Context, teamID int, seasonIDs []int) ([]domain.AwardRecord, error)
}

// StatsProvider combines all provider capabilities.
type StatsProvider interface {
	TeamProvider
	SeasonProvider
	EventProvider
	SkillsProvider
	RankingsProvider
	AwardsProvider
}
