// Package limiter implements fixed-window rate limiting per (subject, action)
// with pluggable stores and a per-action failure policy.
package limiter

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/model"
)

// Store keeps window counters. Consume must be atomic per key.
type Store interface {
	// Consume applies one request to the (subject, action) window and reports the decision.
	Consume(ctx context.Context, subject, action string, p Policy, now time.Time) (model.RateDecision, error)
	// Reset drops the window for (subject, action).
	Reset(ctx context.Context, subject, action string) error
}

// Limiter applies named policies on top of a Store.
type Limiter struct {
	store    Store
	policies Policies
	now      func() time.Time
	log      *zap.Logger
}

// New constructs a limiter. A nil logger disables logging.
func New(store Store, policies Policies, log *zap.Logger) *Limiter {
	if log == nil {
		log = zap.NewNop()
	}
	if policies == nil {
		policies = DefaultPolicies()
	}
	return &Limiter{store: store, policies: policies, now: time.Now, log: log}
}

// WithClock replaces the time source (tests).
func (l *Limiter) WithClock(now func() time.Time) *Limiter {
	l.now = now
	return l
}

// Policies returns a copy of the configured policy table.
func (l *Limiter) Policies() Policies { return l.policies.Clone() }

// CheckAndConsume counts one request for (subject, action) under the named policy.
func (l *Limiter) CheckAndConsume(ctx context.Context, subject, action string) (model.RateDecision, error) {
	p, ok := l.policies[action]
	if !ok {
		return model.RateDecision{}, fmt.Errorf("%w: unknown action %q", errs.ErrInvalidArgument, action)
	}
	return l.Check(ctx, subject, action, p)
}

// Check counts one request for (subject, action) under an explicit policy.
// When the store fails, fail-open policies allow the request; fail-closed ones
// reject it with an ErrTransient-wrapped error.
func (l *Limiter) Check(ctx context.Context, subject, action string, p Policy) (model.RateDecision, error) {
	if subject == "" || action == "" {
		return model.RateDecision{}, fmt.Errorf("%w: empty subject/action", errs.ErrInvalidArgument)
	}
	if err := p.Validate(); err != nil {
		return model.RateDecision{}, err
	}
	now := l.now()
	d, err := l.store.Consume(ctx, subject, action, p, now)
	if err == nil {
		return d, nil
	}
	if ctx.Err() != nil {
		return model.RateDecision{}, ctx.Err()
	}
	if p.FailClosed {
		l.log.Warn("rate limit store unavailable, rejecting",
			zap.String("action", action), zap.Error(err))
		return model.RateDecision{Limit: p.MaxRequests, ResetAt: now}, fmt.Errorf("%w: rate limit store: %v", errs.ErrTransient, err)
	}
	l.log.Warn("rate limit store unavailable, allowing",
		zap.String("action", action), zap.Error(err))
	return model.RateDecision{Allowed: true, Limit: p.MaxRequests, Remaining: p.MaxRequests, ResetAt: now.Add(p.Window)}, nil
}

// Reset clears the window for (subject, action), e.g. after a successful login.
func (l *Limiter) Reset(ctx context.Context, subject, action string) error {
	return l.store.Reset(ctx, subject, action)
}
