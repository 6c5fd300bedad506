// Package dashboard builds the home-screen rollup: season best skills
// run, award count lines, and the next upcoming event countdown.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jayala/vex-stats-service/internal/aggregate"
	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/fetch"
	"github.com/jayala/vex-stats-service/internal/logging"
	"github.com/jayala/vex-stats-service/internal/metrics"
	"github.com/jayala/vex-stats-service/internal/providers"
	"github.com/jayala/vex-stats-service/internal/store"
)

const screen = "dashboard"

// Provider is the slice of the stats provider the dashboard needs.
type Provider interface {
	providers.SeasonProvider
	providers.EventProvider
	providers.SkillsProvider
	providers.AwardsProvider
}

// Model is the rendered dashboard for one team.
type Model struct {
	TeamID      int                    `json:"team_id"`
	Seasons     []domain.Season        `json:"seasons"`
	Best        *domain.BestRun        `json:"best,omitempty"`
	AwardCounts []aggregate.TitleCount `json:"award_counts"`
	AwardLines  []string               `json:"award_lines"`
	Upcoming    *aggregate.Upcoming    `json:"upcoming,omitempty"`
}

// Service fetches and aggregates the dashboard payload.
type Service struct {
	provider  Provider
	logger    *slog.Logger
	recorder  *metrics.Recorder
	tracker   *fetch.Tracker
	snapshots *store.MemoryStore[Model]
	now       func() time.Time
}

func NewService(provider Provider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider:  provider,
		logger:    logger,
		recorder:  recorder,
		tracker:   fetch.NewTracker(),
		snapshots: store.NewMemoryStore[Model](),
		now:       time.Now,
	}
}

// Status exposes the fetch lifecycle for readiness checks.
func (s *Service) Status() fetch.Status {
	return s.tracker.Status()
}

// Latest returns the last successfully built model for a team.
func (s *Service) Latest(teamID int) (Model, bool) {
	return s.snapshots.Get(strconv.Itoa(teamID))
}

// Fetch rebuilds the dashboard from live provider data. Partial results
// never land in the snapshot store.
func (s *Service) Fetch(ctx context.Context, teamID int) (Model, error) {
	start := s.now()
	model, err := fetch.Run(ctx, s.tracker, providers.UserMessage, func(ctx context.Context) (Model, error) {
		return s.build(ctx, teamID)
	})
	s.recorder.RecordFetchCycle(screen, s.now().Sub(start), err)
	if err != nil {
		logging.Error(s.logger, "dashboard fetch failed", err, logging.FieldTeamID, teamID, logging.FieldScreen, screen)
		return Model{}, err
	}
	s.snapshots.Set(strconv.Itoa(teamID), model)
	return model, nil
}

func (s *Service) build(ctx context.Context, teamID int) (Model, error) {
	seasons, err := s.provider.GetSeasons(ctx, true)
	if err != nil {
		return Model{}, &fetch.AggregateError{Screen: screen, Err: err}
	}

	seasonIDs := make([]int, 0, len(seasons))
	for _, season := range seasons {
		seasonIDs = append(seasonIDs, season.ID)
	}

	var (
		skills []domain.SkillRun
		awards []domain.AwardRecord
		events []domain.EventRef
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		skills, err = s.provider.GetTeamSkills(gctx, teamID, seasonIDs)
		return err
	})
	g.Go(func() error {
		var err error
		awards, err = s.provider.GetTeamAwards(gctx, teamID, seasonIDs)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.provider.GetTeamEvents(gctx, teamID, "")
		return err
	})
	if err := g.Wait(); err != nil {
		return Model{}, &fetch.AggregateError{Screen: screen, Err: err}
	}

	model := Model{
		TeamID:      teamID,
		Seasons:     seasons,
		AwardCounts: aggregate.AwardsByTitle(awards),
	}

	if best, ok := aggregate.BestRun(aggregate.EventBestRuns(skills)); ok {
		model.Best = &best
	}
	if up, ok := aggregate.NextUpcomingEvent(events, s.now()); ok {
		model.Upcoming = &up
	}

	model.AwardLines = make([]string, 0, len(model.AwardCounts))
	for _, tc := range model.AwardCounts {
		model.AwardLines = append(model.AwardLines, fmt.Sprintf("%d× %s", tc.Count, tc.Title))
	}

	return model, nil
}
