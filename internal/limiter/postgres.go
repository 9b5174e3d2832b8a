package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/klozestickers/credits/internal/model"
)

// PG is a PostgreSQL-backed fixed-window store. Counters only change through
// a single conditional UPDATE, so concurrent requests never overshoot the limit.
type PG struct {
	pool pgxQuerier
}

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPG constructs a PostgreSQL-backed store over a pool or transaction.
func NewPG(q pgxQuerier) *PG {
	return &PG{pool: q}
}

// Consume counts one request if the window allows it.
func (s *PG) Consume(ctx context.Context, subject, action string, p Policy, now time.Time) (model.RateDecision, error) {
	const ensure = `
INSERT INTO rate_limits (subject_id, action, window_start, count)
VALUES ($1,$2,$3,0)
ON CONFLICT (subject_id, action) DO NOTHING`
	if _, err := s.pool.Exec(ctx, ensure, subject, action, now); err != nil {
		return model.RateDecision{}, err
	}

	const consume = `
UPDATE rate_limits
SET
  window_start = CASE WHEN window_start + $4::interval <= $3 THEN $3 ELSE window_start END,
  count = CASE WHEN window_start + $4::interval <= $3 THEN 1 ELSE count + 1 END
WHERE subject_id=$1 AND action=$2
  AND (window_start + $4::interval <= $3 OR count < $5)
RETURNING window_start, count`
	var w model.RateLimitWindow
	err := s.pool.QueryRow(ctx, consume, subject, action, now, p.Window, p.MaxRequests).Scan(&w.WindowStart, &w.Count)
	switch {
	case err == nil:
		return model.RateDecision{
			Allowed:   true,
			Limit:     p.MaxRequests,
			Remaining: max(p.MaxRequests-w.Count, 0),
			ResetAt:   w.WindowStart.Add(p.Window),
		}, nil
	case errors.Is(err, pgx.ErrNoRows):
		// window is full: report when it ends
	default:
		return model.RateDecision{}, err
	}

	const sel = `SELECT window_start FROM rate_limits WHERE subject_id=$1 AND action=$2`
	if err := s.pool.QueryRow(ctx, sel, subject, action).Scan(&w.WindowStart); err != nil {
		return model.RateDecision{}, err
	}
	return model.RateDecision{Limit: p.MaxRequests, ResetAt: w.WindowStart.Add(p.Window)}, nil
}

// Reset removes the window for (subject, action).
func (s *PG) Reset(ctx context.Context, subject, action string) error {
	const q = `DELETE FROM rate_limits WHERE subject_id=$1 AND action=$2`
	_, err := s.pool.Exec(ctx, q, subject, action)
	return err
}
