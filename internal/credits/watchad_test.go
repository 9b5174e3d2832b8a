package credits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/klozestickers/credits/internal/ads"
	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/limiter"
)

func TestWatchAd_GuestReward(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 0, 0, nil)
	f.orch.WithAds(ads.NewScripted(ads.Outcome{Reward: &ads.Reward{Amount: 2}}))

	out, err := f.orch.WatchAd(context.Background(), guest)
	require.NoError(t, err)
	require.True(t, out.Rewarded)
	require.EqualValues(t, 2, out.Credits)
	require.EqualValues(t, 2, f.guestBalance(t))
}

func TestWatchAd_AccountRewardFromServer(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 0, 4, nil)
	f.orch.WithAds(ads.NewScripted())
	_, err := f.orch.Balance(context.Background(), account)
	require.NoError(t, err)

	out, err := f.orch.WatchAd(context.Background(), account)
	require.NoError(t, err)
	require.True(t, out.Rewarded)
	require.EqualValues(t, 1, out.Credits)
	require.EqualValues(t, 5, f.remote.get())
}

func TestWatchAd_AccountCreditsReportedByServer(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 0, 40, nil)
	f.orch.WithAds(ads.NewScripted())

	out, err := f.orch.WatchAd(context.Background(), account)
	require.NoError(t, err)
	require.True(t, out.Rewarded)
	require.EqualValues(t, 1, out.Credits)
	require.EqualValues(t, 41, out.Balance)
	require.EqualValues(t, 41, f.orch.Displayed(account))
}

func TestWatchAd_DismissedNoReward(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 1, 0, nil)
	f.orch.WithAds(ads.NewScripted(ads.Outcome{}))
	out, err := f.orch.WatchAd(context.Background(), guest)
	require.NoError(t, err)
	require.False(t, out.Rewarded)
	require.EqualValues(t, 1, f.guestBalance(t))
}

func TestWatchAd_TimeoutNoReward(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 0, 0, nil)
	f.orch.cfg.AdTimeout = 10 * time.Millisecond
	f.orch.WithAds(ads.NewScripted(ads.Outcome{Block: true}))
	out, err := f.orch.WatchAd(context.Background(), guest)
	require.NoError(t, err)
	require.False(t, out.Rewarded)
	require.Zero(t, f.guestBalance(t))
}

func TestWatchAd_ProviderErrors(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 0, 0, nil)
	f.orch.WithAds(ads.NewScripted(ads.Outcome{PrepareErr: errors.New("no fill")}))
	_, err := f.orch.WatchAd(context.Background(), guest)
	require.ErrorIs(t, err, errs.ErrExternalEffectFailed)

	f.orch.WithAds(ads.NewScripted(ads.Outcome{Err: errors.New("sdk crash")}))
	_, err = f.orch.WatchAd(context.Background(), guest)
	require.ErrorIs(t, err, errs.ErrExternalEffectFailed)
}

func TestWatchAd_RateLimited(t *testing.T) {
	t.Parallel()
	f := newFixture(t, 0, 0, limiter.Policies{
		limiter.ActionAdWatch: {MaxRequests: 1, Window: time.Hour},
	})
	p := ads.NewScripted()
	f.orch.WithAds(p)
	ctx := context.Background()
	_, err := f.orch.WatchAd(ctx, guest)
	require.NoError(t, err)
	_, err = f.orch.WatchAd(ctx, guest)
	require.ErrorIs(t, err, errs.ErrRateLimited)
	require.Equal(t, 1, p.Shown())
}
