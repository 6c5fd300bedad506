// Package skills builds the season-grouped skills history list.
package skills

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/jayala/vex-stats-service/internal/fetch"
	"github.com/jayala/vex-stats-service/internal/logging"
	"github.com/jayala/vex-stats-service/internal/metrics"
	"github.com/jayala/vex-stats-service/internal/normalize"
	"github.com/jayala/vex-stats-service/internal/providers"
	"github.com/jayala/vex-stats-service/internal/store"
	"github.com/jayala/vex-stats-service/internal/view"
)

const screen = "skills"

// Model is the rendered skills history for one team.
type Model struct {
	TeamID int                            `json:"team_id"`
	Items  []view.Item[normalize.SkillRow] `json:"items"`
}

// Service fetches skill runs across the configured season window and
// merges them into history rows.
type Service struct {
	provider  providers.SkillsProvider
	logger    *slog.Logger
	recorder  *metrics.Recorder
	tracker   *fetch.Tracker
	snapshots *store.MemoryStore[Model]
	seasonIDs []int
}

func NewService(provider providers.SkillsProvider, logger *slog.Logger, recorder *metrics.Recorder, seasonIDs []int) *Service {
	return &Service{
		provider:  provider,
		logger:    logger,
		recorder:  recorder,
		tracker:   fetch.NewTracker(),
		snapshots: store.NewMemoryStore[Model](),
		seasonIDs: seasonIDs,
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

// Fetch rebuilds the skills history from live provider data.
func (s *Service) Fetch(ctx context.Context, teamID int) (Model, error) {
	start := time.Now()
	model, err := fetch.Run(ctx, s.tracker, providers.UserMessage, func(ctx context.Context) (Model, error) {
		return s.build(ctx, teamID)
	})
	s.recorder.RecordFetchCycle(screen, time.Since(start), err)
	if err != nil {
		logging.Error(s.logger, "skills fetch failed", err, logging.FieldTeamID, teamID, logging.FieldScreen, screen)
		return Model{}, err
	}
	s.snapshots.Set(strconv.Itoa(teamID), model)
	return model, nil
}

func (s *Service) build(ctx context.Context, teamID int) (Model, error) {
	runs, err := s.provider.GetTeamSkills(ctx, teamID, s.seasonIDs)
	if err != nil {
		return Model{}, &fetch.AggregateError{Screen: screen, Err: err}
	}

	rows := normalize.SkillRows(runs)
	// Upstream pages arrive oldest first; the history reads newest first.
	view.ReverseRows(rows)

	return Model{
		TeamID: teamID,
		Items:  view.SkillItems(rows),
	}, nil
}
