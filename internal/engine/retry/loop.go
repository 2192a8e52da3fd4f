// Package retry runs rate-limited queries with a bounded number of attempts.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/gimmisn/internal/core/ports"
	"go.trai.ch/zerr"
)

// MaxAttempts is the number of queries sent before a fetch is given up.
const MaxAttempts = 20

// Attempt outcomes reported to ports.Metrics.
const (
	OutcomeSuccess        = "success"
	OutcomeTransportError = "transport_error"
	OutcomeShortWrite     = "short_write"
	OutcomeBuildFailed    = "build_failed"
	OutcomePersistFailed  = "persist_failed"
)

// Request describes one fetch.
type Request struct {
	// Kind is the artifact being fetched.
	Kind domain.ArtifactKind
	// Subject names what the fetch is for, e.g. a relation or a date.
	Subject string
	// BuildQuery returns the query text. It is called once per attempt.
	BuildQuery func() (string, error)
	// Persist writes the response and returns the number of bytes written.
	Persist func(data []byte) (int, error)
}

// Result summarizes a finished fetch.
type Result struct {
	Attempts  int
	Succeeded bool
}

// Loop sends queries, waiting for the rate limiter before each attempt.
type Loop struct {
	limiter     ports.RateLimiter
	queries     ports.QueryService
	clock       clockwork.Clock
	logger      ports.Logger
	metrics     ports.Metrics
	maxAttempts int
}

// New creates a Loop.
func New(
	limiter ports.RateLimiter,
	queries ports.QueryService,
	clock clockwork.Clock,
	logger ports.Logger,
	metrics ports.Metrics,
) *Loop {
	return &Loop{
		limiter:     limiter,
		queries:     queries,
		clock:       clock,
		logger:      logger,
		metrics:     metrics,
		maxAttempts: MaxAttempts,
	}
}

// Run performs the fetch. Transport errors and empty writes are retried until
// MaxAttempts is reached; running out of attempts is logged and reported
// through Result, not as an error. Query build and persist errors are
// returned without retrying, as is the context error on cancellation.
func (l *Loop) Run(ctx context.Context, req Request) (Result, error) {
	var result Result
	retry := backoff.WithContext(
		backoff.WithMaxRetries(&backoff.ZeroBackOff{}, uint64(l.maxAttempts-1)),
		ctx,
	)

	for {
		result.Attempts++
		if result.Attempts > 1 {
			l.logger.Info("retrying query", "kind", req.Kind, "subject", req.Subject, "attempt", result.Attempts)
		}

		done, err := l.attempt(ctx, req)
		if err != nil {
			return result, err
		}
		if done {
			result.Succeeded = true
			return result, nil
		}

		if retry.NextBackOff() == backoff.Stop {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			l.logger.Warn("query attempts exhausted", "kind", req.Kind, "subject", req.Subject, "attempts", result.Attempts)
			return result, nil
		}
	}
}

func (l *Loop) attempt(ctx context.Context, req Request) (bool, error) {
	if err := l.waitForSlot(ctx); err != nil {
		return false, err
	}

	query, err := req.BuildQuery()
	if err != nil {
		l.metrics.ObserveAttempt(req.Kind, OutcomeBuildFailed)
		return false, zerr.With(zerr.Wrap(err, domain.ErrQueryBuildFailed.Error()), "subject", req.Subject)
	}

	data, err := l.queries.Execute(ctx, query)
	if err != nil {
		l.metrics.ObserveAttempt(req.Kind, OutcomeTransportError)
		l.logger.Warn("query failed", "kind", req.Kind, "subject", req.Subject, "error", err.Error())
		return false, nil
	}

	n, err := req.Persist(data)
	if err != nil {
		l.metrics.ObserveAttempt(req.Kind, OutcomePersistFailed)
		return false, zerr.With(zerr.Wrap(err, domain.ErrPersistFailed.Error()), "subject", req.Subject)
	}
	if n == 0 {
		l.metrics.ObserveAttempt(req.Kind, OutcomeShortWrite)
		l.logger.Warn("short write", "kind", req.Kind, "subject", req.Subject)
		return false, nil
	}

	l.metrics.ObserveAttempt(req.Kind, OutcomeSuccess)
	return true, nil
}

// waitForSlot blocks until the rate limiter allows a query. An unreadable
// status lets the query through.
func (l *Loop) waitForSlot(ctx context.Context) error {
	for {
		seconds, err := l.limiter.SecondsUntilAllowed(ctx)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			l.logger.Warn("rate limit status unavailable", "error", err.Error())
			return nil
		}
		if seconds <= 0 {
			return nil
		}

		l.logger.Info("waiting for query slot", "seconds", seconds)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(time.Duration(seconds) * time.Second):
		}
	}
}
