package refdata

import (
	"context"
	"log/slog"
	"time"

	domain "github.com/preston-bernstein/league-fixtures-service/internal/domain/refdata"
	"github.com/preston-bernstein/league-fixtures-service/internal/logging"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingSource wraps a Source with retry/backoff behavior. Only reads pass
// through here; fixture mutations are never retried.
type retryingSource struct {
	inner       Source
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingSource wraps src with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingSource(src Source, logger *slog.Logger, maxAttempts int, backoff time.Duration) Source {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingSource{
		inner:       src,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingSource) Seasons(ctx context.Context) ([]domain.Season, error) {
	return retry(ctx, r, "seasons", r.inner.Seasons)
}

func (r *retryingSource) AgeGroups(ctx context.Context) ([]domain.AgeGroup, error) {
	return retry(ctx, r, "age_groups", r.inner.AgeGroups)
}

func (r *retryingSource) MatchTypes(ctx context.Context) ([]domain.MatchType, error) {
	return retry(ctx, r, "match_types", r.inner.MatchTypes)
}

func (r *retryingSource) Divisions(ctx context.Context) ([]domain.Division, error) {
	return retry(ctx, r, "divisions", r.inner.Divisions)
}

func (r *retryingSource) Teams(ctx context.Context) ([]domain.Team, error) {
	return retry(ctx, r, "teams", r.inner.Teams)
}

func retry[T any](ctx context.Context, r *retryingSource, list string, fetch func(context.Context) ([]T, error)) ([]T, error) {
	var lastErr error
	logger := logging.FromContext(ctx, r.logger)

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		out, err := fetch(ctx)
		if err == nil {
			return out, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		logging.Warn(logger, "reference data fetch retry",
			"list", list, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	logging.Warn(logger, "reference data fetch failed", "list", list, "attempts", r.maxAttempts, "err", lastErr)
	return nil, lastErr
}
