package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	pb "github.com/klozestickers/credits/gen/go/kloze/credits/v1"
	"github.com/klozestickers/credits/internal/cache"
	"github.com/klozestickers/credits/internal/convert"
	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/model"
)

const policiesKey = "policies"

// RemoteLimiter consults the server's rate-limit counters. When the server is
// unreachable the action's policy decides: fail-open allows, fail-closed rejects.
type RemoteLimiter struct {
	remote   *Remote
	policies *cache.TTL[string, limiter.Policies]
	log      *zap.Logger
}

// NewRemoteLimiter caches the server policy table for policyTTL.
func NewRemoteLimiter(remote *Remote, policyTTL time.Duration, log *zap.Logger) *RemoteLimiter {
	if log == nil {
		log = zap.NewNop()
	}
	return &RemoteLimiter{
		remote:   remote,
		policies: cache.NewTTL[string, limiter.Policies](policyTTL),
		log:      log,
	}
}

// CheckAndConsume counts one action for subject on the server.
func (l *RemoteLimiter) CheckAndConsume(ctx context.Context, subject, action string) (model.RateDecision, error) {
	req := &pb.CheckRateLimitRequest{Subject: subject, Action: action}
	resp, err := l.remote.cl.CheckRateLimit(l.remote.authCtx(ctx), req)
	if err == nil {
		return convert.FromProtoDecision(resp), nil
	}
	err = l.remote.fail(err)
	if !errors.Is(err, errs.ErrTransient) {
		return model.RateDecision{}, err
	}

	p := l.policy(ctx, action)
	now := l.remote.now()
	if p.FailClosed {
		l.log.Warn("rate limit check unavailable, rejecting", zap.String("action", action), zap.Error(err))
		return model.RateDecision{Limit: p.MaxRequests, ResetAt: now}, fmt.Errorf("rate limit %s: %w", action, err)
	}
	l.log.Warn("rate limit check unavailable, allowing", zap.String("action", action), zap.Error(err))
	return model.RateDecision{Allowed: true, Limit: p.MaxRequests, Remaining: p.MaxRequests, ResetAt: now.Add(p.Window)}, nil
}

// policy resolves the action policy from the cached server table, falling
// back to the built-in defaults. Unknown actions fail closed.
func (l *RemoteLimiter) policy(ctx context.Context, action string) limiter.Policy {
	ps, ok := l.policies.Get(policiesKey)
	if !ok {
		resp, err := l.remote.cl.GetPolicies(ctx, &pb.GetPoliciesRequest{})
		if err == nil {
			ps, err = convert.FromProtoPolicies(resp)
		}
		if err != nil {
			ps = limiter.DefaultPolicies()
		} else {
			l.policies.Set(policiesKey, ps)
		}
	}
	if p, ok := ps[action]; ok {
		return p
	}
	return limiter.Policy{MaxRequests: 1, Window: time.Minute, FailClosed: true}
}

// Refresh drops the cached policy table.
func (l *RemoteLimiter) Refresh() { l.policies.InvalidateAll() }
