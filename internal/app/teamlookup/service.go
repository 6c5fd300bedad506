// Package teamlookup validates team numbers and resolves them to team
// candidates.
package teamlookup

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/fetch"
	"github.com/jayala/vex-stats-service/internal/logging"
	"github.com/jayala/vex-stats-service/internal/metrics"
	"github.com/jayala/vex-stats-service/internal/providers"
)

const screen = "teamlookup"

// Team numbers: 2-10 digits or uppercase letters. Lookups uppercase the
// input first, so "1234a" passes.
var numberPattern = regexp.MustCompile(`^[0-9A-Z]{2,10}$`)

// ErrInvalidNumber reports a query that cannot be a team number.
var ErrInvalidNumber = errors.New("teamlookup: invalid team number")

// Service resolves team numbers against the upstream teams endpoint.
type Service struct {
	provider providers.TeamProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
}

func NewService(provider providers.TeamProvider, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{provider: provider, logger: logger, recorder: recorder}
}

// ValidNumber reports whether the input normalizes to a usable number.
func ValidNumber(number string) bool {
	return numberPattern.MatchString(normalizeNumber(number))
}

// Lookup returns the team candidates for a number. Several teams can
// share a number across programs; the caller picks one.
func (s *Service) Lookup(ctx context.Context, number string) ([]domain.Team, error) {
	normalized := normalizeNumber(number)
	if !numberPattern.MatchString(normalized) {
		return nil, ErrInvalidNumber
	}

	start := time.Now()
	teams, err := s.provider.GetTeamsByNumber(ctx, normalized)
	s.recorder.RecordFetchCycle(screen, time.Since(start), err)
	if err != nil {
		logging.Error(s.logger, "team lookup failed", err, logging.FieldTeamNumber, normalized)
		return nil, &fetch.AggregateError{Screen: screen, Err: err}
	}
	return teams, nil
}

func normalizeNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}
