package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/model"
)

type bonusFixture struct {
	svc  *BonusServiceImpl
	bal  *fakeBalances
	uid  uuid.UUID
	now  time.Time
	recs *fakeBonuses
}

func newBonusFixture(t *testing.T, loc *time.Location) *bonusFixture {
	t.Helper()
	bal := newFakeBalances()
	uid := uuid.Must(uuid.NewV4())
	bal.set(uid, 3)
	recs := &fakeBonuses{recs: map[uuid.UUID]model.DailyBonusRecord{}, balances: bal}
	f := &bonusFixture{bal: bal, uid: uid, recs: recs, now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	f.svc = NewBonusService(recs, bal, 1, loc).WithClock(func() time.Time { return f.now })
	return f
}

func TestBonus_ClaimIdempotentPerDay(t *testing.T) {
	t.Parallel()
	f := newBonusFixture(t, nil)
	ctx := context.Background()

	first, err := f.svc.Claim(ctx, f.uid)
	if err != nil {
		t.Fatalf("Claim: %v", err)
	}
	if !first.Success || first.CreditsEarned != 1 || first.NewStreak != 1 || first.TotalCredits != 4 {
		t.Fatalf("first claim: %+v", first)
	}

	f.now = f.now.Add(10 * time.Hour)
	second, err := f.svc.Claim(ctx, f.uid)
	if err != nil {
		t.Fatalf("second Claim: %v", err)
	}
	if second.Success || second.CreditsEarned != 0 || second.TotalCredits != 4 {
		t.Fatalf("second claim: %+v", second)
	}
	if got, _ := f.bal.Get(ctx, f.uid); got != 4 {
		t.Fatalf("balance grew twice: %d", got)
	}
}

func TestBonus_StreakContinuity(t *testing.T) {
	t.Parallel()
	f := newBonusFixture(t, nil)
	ctx := context.Background()

	for day := 1; day <= 3; day++ {
		r, err := f.svc.Claim(ctx, f.uid)
		if err != nil || !r.Success || r.NewStreak != day {
			t.Fatalf("day %d: %+v %v", day, r, err)
		}
		f.now = f.now.AddDate(0, 0, 1)
	}

	// skip a day
	f.now = f.now.AddDate(0, 0, 1)
	r, err := f.svc.Claim(ctx, f.uid)
	if err != nil || !r.Success || r.NewStreak != 1 {
		t.Fatalf("after gap: %+v %v", r, err)
	}
	rec, _ := f.recs.Get(ctx, f.uid)
	if rec.TotalClaims != 4 {
		t.Fatalf("total claims: %d", rec.TotalClaims)
	}
}

func TestBonus_CheckEligibility(t *testing.T) {
	t.Parallel()
	f := newBonusFixture(t, nil)
	ctx := context.Background()

	el, err := f.svc.CheckEligibility(ctx, f.uid)
	if err != nil {
		t.Fatalf("CheckEligibility: %v", err)
	}
	if !el.CanClaim || el.StreakDays != 0 || el.BonusAmount != 1 {
		t.Fatalf("no record: %+v", el)
	}

	if _, err := f.svc.Claim(ctx, f.uid); err != nil {
		t.Fatal(err)
	}
	el, _ = f.svc.CheckEligibility(ctx, f.uid)
	wantNext := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	if el.CanClaim || el.StreakDays != 1 || !el.NextClaimTime.Equal(wantNext) {
		t.Fatalf("same day: %+v", el)
	}

	f.now = f.now.AddDate(0, 0, 1)
	el, _ = f.svc.CheckEligibility(ctx, f.uid)
	if !el.CanClaim || el.StreakDays != 1 {
		t.Fatalf("next day: %+v", el)
	}

	f.now = f.now.AddDate(0, 0, 2)
	el, _ = f.svc.CheckEligibility(ctx, f.uid)
	if !el.CanClaim || el.StreakDays != 0 {
		t.Fatalf("after gap: %+v", el)
	}

	if _, err := f.svc.CheckEligibility(ctx, uuid.Nil); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument, got %v", err)
	}
}

func TestBonus_DayBoundaryFollowsLocation(t *testing.T) {
	t.Parallel()
	loc := time.FixedZone("UTC+10", 10*60*60)
	f := newBonusFixture(t, loc)
	ctx := context.Background()

	// 14:00 UTC is local midnight in UTC+10.
	f.now = time.Date(2026, 3, 10, 13, 30, 0, 0, time.UTC)
	if r, _ := f.svc.Claim(ctx, f.uid); !r.Success {
		t.Fatalf("first claim failed")
	}
	f.now = time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	r, err := f.svc.Claim(ctx, f.uid)
	if err != nil || !r.Success || r.NewStreak != 2 {
		t.Fatalf("local midnight passed, want streak 2: %+v %v", r, err)
	}
}

func TestAdvance(t *testing.T) {
	t.Parallel()
	uid := uuid.Must(uuid.NewV4())
	now := time.Date(2026, 1, 1, 0, 30, 0, 0, time.UTC)

	next, ok := advance(nil, uid, now, time.UTC)
	if !ok || next.StreakDays != 1 || next.TotalClaims != 1 {
		t.Fatalf("first: %+v", next)
	}
	yesterday := &model.DailyBonusRecord{LastClaimDate: time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC), StreakDays: 6, TotalClaims: 9}
	next, ok = advance(yesterday, uid, now, time.UTC)
	if !ok || next.StreakDays != 7 || next.TotalClaims != 10 {
		t.Fatalf("continuing across year: %+v", next)
	}
	if _, ok := advance(&next, uid, now, time.UTC); ok {
		t.Fatalf("same day must be rejected")
	}
}
