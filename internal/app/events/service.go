// Package events serves the event dropdown and the per-event detail
// rollup.
package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jayala/vex-stats-service/internal/aggregate"
	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/fetch"
	"github.com/jayala/vex-stats-service/internal/logging"
	"github.com/jayala/vex-stats-service/internal/metrics"
	"github.com/jayala/vex-stats-service/internal/normalize"
	"github.com/jayala/vex-stats-service/internal/providers"
	"github.com/jayala/vex-stats-service/internal/timeutil"
	"github.com/jayala/vex-stats-service/internal/view"
)

const screen = "events"

// ErrEventNotFound reports a detail request for an event the team has no
// record at.
var ErrEventNotFound = errors.New("events: event not found")

// Provider is the slice of the stats provider the event screens need.
type Provider interface {
	providers.SeasonProvider
	providers.EventProvider
	providers.SkillsProvider
	providers.RankingsProvider
	providers.AwardsProvider
}

// Detail is the per-event rollup shown when an event is selected.
type Detail struct {
	Summary     domain.EventSummary `json:"summary"`
	DisplayDate string              `json:"display_date"`
	RankingLine string              `json:"ranking_line,omitempty"`
	AwardTitles []string            `json:"award_titles"`
}

// Service fetches and joins the per-event result sets.
type Service struct {
	provider Provider
	logger   *slog.Logger
	recorder *metrics.Recorder
	tracker  *fetch.Tracker
}

func NewService(provider Provider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
		recorder: recorder,
		tracker:  fetch.NewTracker(),
	}
}

// Status exposes the fetch lifecycle for readiness checks.
func (s *Service) Status() fetch.Status {
	return s.tracker.Status()
}

// List returns the team's events newest first for the dropdown.
func (s *Service) List(ctx context.Context, teamID int) ([]domain.EventRef, error) {
	events, err := s.provider.GetTeamEvents(ctx, teamID, "")
	if err != nil {
		return nil, &fetch.AggregateError{Screen: screen, Err: err}
	}
	view.ReverseRows(events)
	return events, nil
}

// Detail rebuilds the full event join and extracts one event's rollup.
func (s *Service) Detail(ctx context.Context, teamID, eventID int) (Detail, error) {
	start := time.Now()
	detail, err := fetch.Run(ctx, s.tracker, providers.UserMessage, func(ctx context.Context) (Detail, error) {
		return s.build(ctx, teamID, eventID)
	})
	s.recorder.RecordFetchCycle(screen, time.Since(start), err)
	if err != nil {
		logging.Error(s.logger, "event detail fetch failed", err, logging.FieldTeamID, teamID, logging.FieldScreen, screen)
		return Detail{}, err
	}
	return detail, nil
}

func (s *Service) build(ctx context.Context, teamID, eventID int) (Detail, error) {
	seasons, err := s.provider.GetSeasons(ctx, true)
	if err != nil {
		return Detail{}, &fetch.AggregateError{Screen: screen, Err: err}
	}

	seasonIDs := make([]int, 0, len(seasons))
	for _, season := range seasons {
		seasonIDs = append(seasonIDs, season.ID)
	}

	var (
		events   []domain.EventRef
		skills   []domain.SkillRun
		rankings []domain.RankingRecord
		awards   []domain.AwardRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.provider.GetTeamEvents(gctx, teamID, "")
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = s.provider.GetTeamSkills(gctx, teamID, seasonIDs)
		return err
	})
	g.Go(func() error {
		var err error
		rankings, err = s.provider.GetTeamRankings(gctx, teamID, seasonIDs)
		return err
	})
	g.Go(func() error {
		var err error
		awards, err = s.provider.GetTeamAwards(gctx, teamID, seasonIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return Detail{}, &fetch.AggregateError{Screen: screen, Err: err}
	}

	summaries := normalize.Summaries(events, skills, rankings, awards)
	summary, ok := summaries[eventID]
	if !ok {
		return Detail{}, ErrEventNotFound
	}

	detail := Detail{
		Summary:     summary,
		DisplayDate: timeutil.FormatDisplayDate(summary.Start),
		AwardTitles: make([]string, 0, len(summary.Awards)),
	}
	if r := summary.Ranking; r != nil {
		detail.RankingLine = fmt.Sprintf("%d / %d-%d-%d", r.Rank, r.Wins, r.Losses, r.Ties)
	}
	for _, aw := range summary.Awards {
		detail.AwardTitles = append(detail.AwardTitles, aggregate.CleanTitle(aw.Title))
	}

	return detail, nil
}
