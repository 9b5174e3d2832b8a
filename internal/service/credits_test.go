package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gofrs/uuid/v5"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/limiter"
)

func TestCredits_SpendRefund(t *testing.T) {
	t.Parallel()
	bal := newFakeBalances()
	uid := uuid.Must(uuid.NewV4())
	bal.set(uid, 5)
	s := NewCreditService(bal, &fakeLimiter{allowOK: true}, CreditConfig{})
	ctx := context.Background()

	if _, err := s.Spend(ctx, uid, 0, "generation"); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument on zero amount, got %v", err)
	}
	if _, err := s.Spend(ctx, uid, 1, ""); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument on empty reason, got %v", err)
	}

	res, err := s.Spend(ctx, uid, 3, "generation")
	if err != nil {
		t.Fatalf("Spend: %v", err)
	}
	if res.Balance != 2 {
		t.Fatalf("balance after spend: %d", res.Balance)
	}
	if _, err := s.Spend(ctx, uid, 3, "generation"); !errors.Is(err, errs.ErrInsufficientCredits) {
		t.Fatalf("want ErrInsufficientCredits, got %v", err)
	}
	if got, _ := s.Balance(ctx, uid); got != 2 {
		t.Fatalf("failed spend changed balance: %d", got)
	}

	after, err := s.Refund(ctx, uid, res.ID)
	if err != nil || after != 5 {
		t.Fatalf("Refund: %d %v", after, err)
	}
	if _, err := s.Refund(ctx, uid, res.ID); !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("second refund must fail, got %v", err)
	}
	if got, _ := s.Balance(ctx, uid); got != 5 {
		t.Fatalf("double refund changed balance: %d", got)
	}
}

func TestCredits_ConcurrentSpendsNeverGoNegative(t *testing.T) {
	t.Parallel()
	bal := newFakeBalances()
	uid := uuid.Must(uuid.NewV4())
	bal.set(uid, 10)
	s := NewCreditService(bal, &fakeLimiter{allowOK: true}, CreditConfig{})

	var (
		wg sync.WaitGroup
		mu sync.Mutex
		ok int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Spend(context.Background(), uid, 3, "generation"); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	got, _ := s.Balance(context.Background(), uid)
	if ok != 3 || got != 1 {
		t.Fatalf("ok=%d balance=%d, want 3 and 1", ok, got)
	}
}

func TestCredits_RewardAd(t *testing.T) {
	t.Parallel()
	bal := newFakeBalances()
	uid := uuid.Must(uuid.NewV4())
	bal.set(uid, 40)
	lim := &fakeLimiter{allowOK: true}
	s := NewCreditService(bal, lim, CreditConfig{AdReward: 2})

	got, err := s.RewardAd(context.Background(), uid)
	if err != nil || got.Credited != 2 || got.Balance != 42 {
		t.Fatalf("RewardAd: %+v %v", got, err)
	}
	if lim.consumed[0] != limiter.ActionAdReward+"|"+uid.String() {
		t.Fatalf("unexpected limiter key %q", lim.consumed[0])
	}

	lim.allowOK = false
	if _, err := s.RewardAd(context.Background(), uid); !errors.Is(err, errs.ErrRateLimited) {
		t.Fatalf("want ErrRateLimited, got %v", err)
	}
	if got, _ := s.Balance(context.Background(), uid); got != 42 {
		t.Fatalf("rejected reward changed balance: %d", got)
	}
}

func TestCredits_MergeGuest_CapAndOnce(t *testing.T) {
	t.Parallel()
	bal := newFakeBalances()
	uid := uuid.Must(uuid.NewV4())
	bal.set(uid, 3)
	s := NewCreditService(bal, &fakeLimiter{allowOK: true}, CreditConfig{MaxGuestMerge: 10})
	ctx := context.Background()

	if _, err := s.MergeGuest(ctx, uid, "", 1); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument on empty guest id, got %v", err)
	}
	if _, err := s.MergeGuest(ctx, uid, "dev", -1); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument on negative amount, got %v", err)
	}

	res, err := s.MergeGuest(ctx, uid, "dev", 25)
	if err != nil {
		t.Fatalf("MergeGuest: %v", err)
	}
	if res.Merged != 10 || res.Balance != 13 {
		t.Fatalf("merge result: %+v", res)
	}
	if _, err := s.MergeGuest(ctx, uid, "dev", 5); !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("second merge must fail, got %v", err)
	}
}

func TestCredits_MergeGuest_OncePerWindowPerAccount(t *testing.T) {
	t.Parallel()
	bal := newFakeBalances()
	uid := uuid.Must(uuid.NewV4())
	bal.set(uid, 0)
	lim := limiter.New(limiter.NewMemoryStore(), limiter.DefaultPolicies(), nil)
	s := NewCreditService(bal, lim, CreditConfig{MaxGuestMerge: 50})
	ctx := context.Background()

	if _, err := s.MergeGuest(ctx, uid, "dev-1", 50); err != nil {
		t.Fatalf("first merge: %v", err)
	}
	_, err := s.MergeGuest(ctx, uid, "dev-2", 50)
	var rl *errs.RateLimitedError
	if !errors.As(err, &rl) || rl.Action != limiter.ActionGuestMerge {
		t.Fatalf("merge with a fresh guest id must be rate limited, got %v", err)
	}
	if got, _ := s.Balance(ctx, uid); got != 50 {
		t.Fatalf("rejected merge changed balance: %d", got)
	}

	other := uuid.Must(uuid.NewV4())
	bal.set(other, 0)
	if _, err := s.MergeGuest(ctx, other, "dev-3", 5); err != nil {
		t.Fatalf("policy must be per account: %v", err)
	}
}

func TestCredits_MergeGuest_LimiterDownFailsClosed(t *testing.T) {
	t.Parallel()
	bal := newFakeBalances()
	uid := uuid.Must(uuid.NewV4())
	bal.set(uid, 0)
	s := NewCreditService(bal, &fakeLimiter{allowErr: errs.ErrTransient}, CreditConfig{})

	if _, err := s.MergeGuest(context.Background(), uid, "dev", 5); !errors.Is(err, errs.ErrTransient) {
		t.Fatalf("want ErrTransient, got %v", err)
	}
	if got, _ := s.Balance(context.Background(), uid); got != 0 {
		t.Fatalf("merge applied without a limiter decision: %d", got)
	}
}
