package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/jayala/vex-stats-service/internal/domain"
	"github.com/jayala/vex-stats-service/internal/logging"
	"github.com/jayala/vex-stats-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a StatsProvider with retry/backoff behavior.
// Server errors are retried alongside network errors: the upstream API
// intermittently serves 5xx under load and a refetch usually clears it.
type retryingProvider struct {
	inner       StatsProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner StatsProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) StatsProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, fn func() ([]T, error)) ([]T, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		items, err := fn()
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return items, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "op", op, "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}

func (r *retryingProvider) GetTeamsByNumber(ctx context.Context, number string) ([]domain.Team, error) {
	return retry(ctx, r, "teams", func() ([]domain.Team, error) {
		return r.inner.GetTeamsByNumber(ctx, number)
	})
}

func (r *retryingProvider) GetSeasons(ctx context.Context, activeOnly bool) ([]domain.Season, error) {
	return retry(ctx, r, "seasons", func() ([]domain.Season, error) {
		return r.inner.GetSeasons(ctx, activeOnly)
	})
}

func (r *retryingProvider) GetTeamEvents(ctx context.Context, teamID int, startAfter string) ([]domain.EventRef, error) {
	return retry(ctx, r, "events", func() ([]domain.EventRef, error) {
		return r.inner.GetTeamEvents(ctx, teamID, startAfter)
	})
}

func (r *retryingProvider) GetTeamSkills(ctx context.Context, teamID int, seasonIDs []int) ([]domain.SkillRun, error) {
	return retry(ctx, r, "skills", func() ([]domain.SkillRun, error) {
		return r.inner.GetTeamSkills(ctx, teamID, seasonIDs)
	})
}

func (r *retryingProvider) GetTeamRankings(ctx context.Context, teamID int, seasonIDs []int) ([]domain.RankingRecord, error) {
	return retry(ctx, r, "rankings", func() ([]domain.RankingRecord, error) {
		return r.inner.GetTeamRankings(ctx, teamID, seasonIDs)
	})
}

func (r *retryingProvider) GetTeamAwards(ctx context.Context, teamID int, seasonIDs []int) ([]domain.AwardRecord, error) {
	return retry(ctx, r, "awards", func() ([]domain.AwardRecord, error) {
		return r.inner.GetTeamAwards(ctx, teamID, seasonIDs)
	})
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
