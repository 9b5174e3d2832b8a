package credits

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Event is one analytics record emitted by the orchestrator.
type Event struct {
	Name    string
	Owner   string // owner kind
	Action  string
	Cost    int64
	Balance int64
	Err     string
	At      time.Time
}

// Event names.
const (
	EventSpendSucceeded = "credits_spent"
	EventSpendFailed    = "credits_spend_failed"
	EventRefunded       = "credits_refunded"
	EventAdRewarded     = "ad_rewarded"
	EventAdNoReward     = "ad_no_reward"
)

// Sink receives analytics events. Implementations may block or panic; the
// orchestrator dispatches off the caller's goroutine and recovers.
type Sink interface {
	Track(ctx context.Context, ev Event)
}

// ZapSink writes events to a zap logger.
type ZapSink struct{ Log *zap.Logger }

func (s ZapSink) Track(_ context.Context, ev Event) {
	fields := []zap.Field{
		zap.String("owner", ev.Owner),
		zap.String("action", ev.Action),
		zap.Int64("cost", ev.Cost),
		zap.Int64("balance", ev.Balance),
		zap.Time("at", ev.At),
	}
	if ev.Err != "" {
		fields = append(fields, zap.String("error", ev.Err))
	}
	s.Log.Info(ev.Name, fields...)
}

type nopSink struct{}

func (nopSink) Track(context.Context, Event) {}

func (o *Orchestrator) emit(ctx context.Context, ev Event) {
	ev.At = o.now()
	ctx = context.WithoutCancel(ctx)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				o.log.Error("analytics sink panicked", zap.Any("panic", r), zap.String("event", ev.Name))
			}
		}()
		o.sink.Track(ctx, ev)
	}()
}
