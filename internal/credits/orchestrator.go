// Package credits orchestrates credit-gated actions on the client: balance
// checks, rate limits, optimistic display updates, reservation and refund
// around an external effect.
package credits

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	"github.com/klozestickers/credits/internal/ads"
	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/model"
	"github.com/klozestickers/credits/internal/optimistic"
)

// LocalLedger is the guest balance on the device.
type LocalLedger interface {
	Read(ctx context.Context) (int64, error)
	Add(ctx context.Context, delta int64) (int64, error)
}

// RemoteLedger is the account balance on the server.
type RemoteLedger interface {
	Balance(ctx context.Context) (int64, error)
	Spend(ctx context.Context, amount int64, reason string) (model.Reservation, error)
	Refund(ctx context.Context, reservationID uuid.UUID) (int64, error)
	RewardAd(ctx context.Context) (model.AdReward, error)
}

// RateLimiter counts one action for a subject.
type RateLimiter interface {
	CheckAndConsume(ctx context.Context, subject, action string) (model.RateDecision, error)
}

// Effect is the external call paid for by an attempt.
type Effect func(ctx context.Context) error

// Config tunes deadlines. Zero values take the defaults.
type Config struct {
	EffectTimeout time.Duration // default 90s
	AdTimeout     time.Duration // default 60s
	RefundTimeout time.Duration // default 10s
}

func (c Config) withDefaults() Config {
	if c.EffectTimeout <= 0 {
		c.EffectTimeout = 90 * time.Second
	}
	if c.AdTimeout <= 0 {
		c.AdTimeout = 60 * time.Second
	}
	if c.RefundTimeout <= 0 {
		c.RefundTimeout = 10 * time.Second
	}
	return c
}

// Result describes a paid attempt.
type Result struct {
	Cost          int64
	Balance       int64
	ReservationID uuid.UUID
}

// Orchestrator runs credit-gated actions for guests and accounts.
type Orchestrator struct {
	local   LocalLedger
	remote  RemoteLedger
	limiter RateLimiter
	cfg     Config
	sink    Sink
	log     *zap.Logger
	now     func() time.Time

	ads      ads.Provider
	uploader Uploader

	mu       sync.Mutex
	trackers map[model.Owner]*optimistic.Tracker
}

// New constructs an orchestrator. remote may be nil for guest-only use.
func New(local LocalLedger, remote RemoteLedger, lim RateLimiter, cfg Config, log *zap.Logger) *Orchestrator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Orchestrator{
		local:    local,
		remote:   remote,
		limiter:  lim,
		cfg:      cfg.withDefaults(),
		sink:     nopSink{},
		log:      log,
		now:      time.Now,
		trackers: map[model.Owner]*optimistic.Tracker{},
	}
}

// WithSink installs an analytics sink.
func (o *Orchestrator) WithSink(s Sink) *Orchestrator {
	if s != nil {
		o.sink = s
	}
	return o
}

// WithClock replaces the time source (tests).
func (o *Orchestrator) WithClock(now func() time.Time) *Orchestrator {
	o.now = now
	return o
}

func (o *Orchestrator) tracker(owner model.Owner) *optimistic.Tracker {
	o.mu.Lock()
	defer o.mu.Unlock()
	t, ok := o.trackers[owner]
	if !ok {
		t = optimistic.NewTracker(0)
		o.trackers[owner] = t
	}
	return t
}

// Displayed is the balance to show, including in-flight optimistic deductions.
func (o *Orchestrator) Displayed(owner model.Owner) int64 {
	return o.tracker(owner).Value()
}

// Balance reads the owner's balance from its source of truth and refreshes the
// displayed value. An unreachable server yields ErrTransient, never 0.
func (o *Orchestrator) Balance(ctx context.Context, owner model.Owner) (int64, error) {
	if err := validOwner(owner); err != nil {
		return 0, err
	}
	var (
		bal int64
		err error
	)
	if owner.Kind == model.OwnerGuest {
		bal, err = o.local.Read(ctx)
	} else {
		if o.remote == nil {
			return 0, errs.ErrUnauthorized
		}
		bal, err = o.remote.Balance(ctx)
	}
	if err != nil {
		return 0, classify(err)
	}
	o.tracker(owner).Reset(bal)
	return bal, nil
}

// Attempt charges cost for action and runs effect. The cost is reserved before
// the effect runs and refunded if it fails or times out.
func (o *Orchestrator) Attempt(ctx context.Context, owner model.Owner, cost int64, action string, effect Effect) (Result, error) {
	if err := validOwner(owner); err != nil {
		return Result{}, err
	}
	if cost <= 0 {
		return Result{}, fmt.Errorf("%w: cost must be positive", errs.ErrInvalidArgument)
	}

	bal, err := o.Balance(ctx, owner)
	if err != nil {
		return Result{}, err
	}
	if bal < cost {
		return Result{Cost: cost, Balance: bal}, errs.ErrInsufficientCredits
	}
	if err := o.checkLimit(ctx, owner, action); err != nil {
		return Result{Cost: cost, Balance: bal}, err
	}

	tr := o.tracker(owner)
	op := tr.Apply(-cost)

	res, err := o.reserve(ctx, owner, cost, action)
	if err != nil {
		tr.Rollback(op)
		return Result{Cost: cost, Balance: bal}, classify(err)
	}
	// The debit is committed at the source, so later reads already include it.
	tr.Settle(op, res.Balance)

	if err := o.run(ctx, o.cfg.EffectTimeout, effect); err != nil {
		restored := o.release(ctx, owner, res)
		o.emit(ctx, Event{Name: EventSpendFailed, Owner: owner.Kind.String(), Action: action, Cost: cost, Balance: restored, Err: err.Error()})
		return Result{Cost: cost, Balance: restored, ReservationID: res.ID}, fmt.Errorf("%w: %w", errs.ErrExternalEffectFailed, err)
	}

	out := Result{Cost: cost, Balance: res.Balance, ReservationID: res.ID}
	if fresh, err := o.Balance(ctx, owner); err == nil {
		out.Balance = fresh
	} else {
		o.log.Warn("balance refresh after spend failed", zap.String("action", action), zap.Error(err))
	}
	o.emit(ctx, Event{Name: EventSpendSucceeded, Owner: owner.Kind.String(), Action: action, Cost: cost, Balance: out.Balance})
	return out, nil
}

func (o *Orchestrator) checkLimit(ctx context.Context, owner model.Owner, action string) error {
	d, err := o.limiter.CheckAndConsume(ctx, owner.Subject(), action)
	if err != nil {
		return classify(err)
	}
	if !d.Allowed {
		return &errs.RateLimitedError{Action: action, ResetAt: d.ResetAt}
	}
	return nil
}

// reserve commits the debit: a local write for guests, an atomic floor-checked
// server spend for accounts.
func (o *Orchestrator) reserve(ctx context.Context, owner model.Owner, cost int64, reason string) (model.Reservation, error) {
	if owner.Kind == model.OwnerAccount {
		return o.remote.Spend(ctx, cost, reason)
	}
	bal, err := o.local.Add(ctx, -cost)
	if err != nil {
		return model.Reservation{}, err
	}
	id, err := uuid.NewV4()
	if err != nil {
		return model.Reservation{}, err
	}
	return model.Reservation{ID: id, Amount: cost, Reason: reason, Balance: bal, CreatedAt: o.now()}, nil
}

// release refunds a reservation once and returns the resulting balance. It
// runs even when ctx is already done.
func (o *Orchestrator) release(ctx context.Context, owner model.Owner, res model.Reservation) int64 {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), o.cfg.RefundTimeout)
	defer cancel()

	var (
		bal int64
		err error
	)
	if owner.Kind == model.OwnerAccount {
		bal, err = o.remote.Refund(ctx, res.ID)
	} else {
		bal, err = o.local.Add(ctx, res.Amount)
	}
	if err != nil {
		o.log.Error("refund failed", zap.String("owner", owner.Kind.String()),
			zap.String("reservation", res.ID.String()), zap.Int64("amount", res.Amount), zap.Error(err))
		return res.Balance
	}
	o.tracker(owner).Reset(bal)
	o.emit(ctx, Event{Name: EventRefunded, Owner: owner.Kind.String(), Action: res.Reason, Cost: res.Amount, Balance: bal})
	return bal
}

// run calls effect under timeout. A panic in effect is reported as an error.
func (o *Orchestrator) run(ctx context.Context, timeout time.Duration, effect Effect) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("effect panicked: %v", r)
			}
		}()
		done <- effect(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		select {
		case err := <-done:
			return err
		default:
			return ctx.Err()
		}
	}
}

func validOwner(owner model.Owner) error {
	if owner.ID == "" {
		return fmt.Errorf("%w: empty owner id", errs.ErrInvalidArgument)
	}
	return nil
}

// classify keeps taxonomy errors and turns anything else into ErrTransient.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errs.ErrNotFound),
		errors.Is(err, errs.ErrUnauthorized),
		errors.Is(err, errs.ErrRateLimited),
		errors.Is(err, errs.ErrAlreadyExists),
		errors.Is(err, errs.ErrInvalidArgument),
		errors.Is(err, errs.ErrInsufficientCredits),
		errors.Is(err, errs.ErrTransient),
		errors.Is(err, errs.ErrExternalEffectFailed),
		errors.Is(err, errs.ErrAlreadyClaimedToday),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		return fmt.Errorf("%w: %v", errs.ErrTransient, err)
	}
}
