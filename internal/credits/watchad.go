package credits

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/klozestickers/credits/internal/ads"
	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/model"
)

// AdOutcome is the terminal state of a rewarded-ad flow.
type AdOutcome struct {
	Rewarded bool
	Credits  int64
	Balance  int64
}

// WithAds installs the rewarded-ad provider used by WatchAd.
func (o *Orchestrator) WithAds(p ads.Provider) *Orchestrator {
	o.ads = p
	return o
}

// WatchAd shows one rewarded ad and credits the owner when it completes. A
// dismissed ad or an ad that outlives AdTimeout ends with no reward and no error.
func (o *Orchestrator) WatchAd(ctx context.Context, owner model.Owner) (AdOutcome, error) {
	if err := validOwner(owner); err != nil {
		return AdOutcome{}, err
	}
	if o.ads == nil {
		return AdOutcome{}, fmt.Errorf("%w: no ad provider", errs.ErrExternalEffectFailed)
	}
	if err := o.checkLimit(ctx, owner, limiter.ActionAdWatch); err != nil {
		return AdOutcome{}, err
	}
	if err := o.ads.Prepare(ctx); err != nil {
		return AdOutcome{}, fmt.Errorf("%w: prepare ad: %w", errs.ErrExternalEffectFailed, err)
	}

	reward, err := o.show(ctx)
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		reward, err = nil, nil
	}
	if err != nil {
		return AdOutcome{}, fmt.Errorf("%w: show ad: %w", errs.ErrExternalEffectFailed, err)
	}
	if reward == nil {
		o.emit(ctx, Event{Name: EventAdNoReward, Owner: owner.Kind.String(), Action: limiter.ActionAdWatch})
		return AdOutcome{Balance: o.Displayed(owner)}, nil
	}

	out := AdOutcome{Rewarded: true}
	if owner.Kind == model.OwnerAccount {
		if o.remote == nil {
			return AdOutcome{}, errs.ErrUnauthorized
		}
		r, err := o.remote.RewardAd(ctx)
		if err != nil {
			return AdOutcome{}, classify(err)
		}
		out.Balance, out.Credits = r.Balance, r.Credited
	} else {
		amount := reward.Amount
		if amount <= 0 {
			amount = 1
		}
		bal, err := o.local.Add(ctx, amount)
		if err != nil {
			return AdOutcome{}, classify(err)
		}
		out.Balance, out.Credits = bal, amount
	}
	o.tracker(owner).Reset(out.Balance)
	o.log.Debug("ad rewarded", zap.String("owner", owner.Kind.String()), zap.Int64("credits", out.Credits))
	o.emit(ctx, Event{Name: EventAdRewarded, Owner: owner.Kind.String(), Action: limiter.ActionAdWatch, Cost: -out.Credits, Balance: out.Balance})
	return out, nil
}

func (o *Orchestrator) show(ctx context.Context) (*ads.Reward, error) {
	ctx, cancel := context.WithTimeout(ctx, o.cfg.AdTimeout)
	defer cancel()
	return o.ads.Show(ctx)
}
