// Package awards builds the season-grouped awards list with resolved
// event names and dates.
package awards

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/fetch"
	"github.com/jayala/vex-stats-service/internal/logging"
	"github.com/jayala/vex-stats-service/internal/metrics"
	"github.com/jayala/vex-stats-service/internal/normalize"
	"github.com/jayala/vex-stats-service/internal/providers"
	"github.com/jayala/vex-stats-service/internal/store"
	"github.com/jayala/vex-stats-service/internal/view"
)

const screen = "awards"

// Provider is the slice of the stats provider the awards screen needs.
type Provider interface {
	providers.EventProvider
	providers.AwardsProvider
}

// Model is the rendered awards list for one team.
type Model struct {
	TeamID int                       `json:"team_id"`
	Items  []view.Item[view.AwardRow] `json:"items"`
}

// Service fetches awards plus the events page that carries their dates.
type Service struct {
	provider   Provider
	logger     *slog.Logger
	recorder   *metrics.Recorder
	tracker    *fetch.Tracker
	snapshots  *store.MemoryStore[Model]
	seasonIDs  []int
	startAfter string
}

func NewService(provider Provider, logger *slog.Logger, recorder *metrics.Recorder, seasonIDs []int, startAfter string) *Service {
	return &Service{
		provider:   provider,
		logger:     logger,
		recorder:   recorder,
		tracker:    fetch.NewTracker(),
		snapshots:  store.NewMemoryStore[Model](),
		seasonIDs:  seasonIDs,
		startAfter: startAfter,
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

// Fetch rebuilds the awards list from live provider data.
func (s *Service) Fetch(ctx context.Context, teamID int) (Model, error) {
	start := time.Now()
	model, err := fetch.Run(ctx, s.tracker, providers.UserMessage, func(ctx context.Context) (Model, error) {
		return s.build(ctx, teamID)
	})
	s.recorder.RecordFetchCycle(screen, time.Since(start), err)
	if err != nil {
		logging.Error(s.logger, "awards fetch failed", err, logging.FieldTeamID, teamID, logging.FieldScreen, screen)
		return Model{}, err
	}
	s.snapshots.Set(strconv.Itoa(teamID), model)
	return model, nil
}

func (s *Service) build(ctx context.Context, teamID int) (Model, error) {
	var (
		events []domain.EventRef
		awards []domain.AwardRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.provider.GetTeamEvents(gctx, teamID, s.startAfter)
		return err
	})
	g.Go(func() error {
		var err error
		awards, err = s.provider.GetTeamAwards(gctx, teamID, s.seasonIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return Model{}, &fetch.AggregateError{Screen: screen, Err: err}
	}

	resolved := normalize.ResolveAwards(events, awards)
	rows := view.AwardRows(resolved)

	return Model{
		TeamID: teamID,
		Items:  view.AwardItems(rows),
	}, nil
}
