package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/model"
	"github.com/klozestickers/credits/internal/repository"
)

// BonusService grants one bonus per user per calendar day.
type BonusService interface {
	// CheckEligibility reports whether a claim would succeed now.
	CheckEligibility(ctx context.Context, userID uuid.UUID) (model.Eligibility, error)
	// Claim grants the bonus and advances the streak atomically. A repeated
	// claim on the same day returns Success=false and no error.
	Claim(ctx context.Context, userID uuid.UUID) (model.ClaimResult, error)
}

type BonusServiceImpl struct {
	bonuses  repository.BonusRepository
	balances repository.BalanceRepository
	amount   int64
	loc      *time.Location
	now      func() time.Time
}

// NewBonusService constructs BonusService. Calendar days are taken in loc (UTC if nil).
func NewBonusService(bonuses repository.BonusRepository, balances repository.BalanceRepository, amount int64, loc *time.Location) *BonusServiceImpl {
	if amount <= 0 {
		amount = 1
	}
	if loc == nil {
		loc = time.UTC
	}
	return &BonusServiceImpl{bonuses: bonuses, balances: balances, amount: amount, loc: loc, now: time.Now}
}

// WithClock replaces the time source (tests).
func (s *BonusServiceImpl) WithClock(now func() time.Time) *BonusServiceImpl {
	s.now = now
	return s
}

func (s *BonusServiceImpl) CheckEligibility(ctx context.Context, userID uuid.UUID) (model.Eligibility, error) {
	if userID == uuid.Nil {
		return model.Eligibility{}, fmt.Errorf("%w: empty userID", errs.ErrInvalidArgument)
	}
	rec, err := s.bonuses.Get(ctx, userID)
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return model.Eligibility{}, err
	}
	return eligibility(rec, s.now(), s.loc, s.amount), nil
}

func (s *BonusServiceImpl) Claim(ctx context.Context, userID uuid.UUID) (model.ClaimResult, error) {
	if userID == uuid.Nil {
		return model.ClaimResult{}, fmt.Errorf("%w: empty userID", errs.ErrInvalidArgument)
	}
	now := s.now()
	next, bal, err := s.bonuses.Claim(ctx, userID, func(cur *model.DailyBonusRecord) (model.DailyBonusRecord, int64, error) {
		next, ok := advance(cur, userID, now, s.loc)
		if !ok {
			return model.DailyBonusRecord{}, 0, errs.ErrAlreadyClaimedToday
		}
		return next, s.amount, nil
	})
	if errors.Is(err, errs.ErrAlreadyClaimedToday) {
		total, gerr := s.balances.Get(ctx, userID)
		if gerr != nil {
			return model.ClaimResult{}, gerr
		}
		return model.ClaimResult{Success: false, TotalCredits: total}, nil
	}
	if err != nil {
		return model.ClaimResult{}, err
	}
	return model.ClaimResult{
		Success:       true,
		CreditsEarned: s.amount,
		NewStreak:     next.StreakDays,
		TotalCredits:  bal,
	}, nil
}

// civilDay returns midnight of t's calendar day in loc, expressed in UTC so it
// round-trips through a DATE column unchanged.
func civilDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// storedDay normalizes a stored DATE value.
func storedDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// eligibility reports the claim state at now. StreakDays is the streak the
// user still holds: a missed day means it is already broken.
func eligibility(rec *model.DailyBonusRecord, now time.Time, loc *time.Location, amount int64) model.Eligibility {
	today := civilDay(now, loc)
	if rec == nil {
		return model.Eligibility{CanClaim: true, StreakDays: 0, BonusAmount: amount, NextClaimTime: now}
	}
	last := storedDay(rec.LastClaimDate)
	switch {
	case !last.Before(today):
		y, m, d := today.AddDate(0, 0, 1).Date()
		return model.Eligibility{
			CanClaim:      false,
			StreakDays:    rec.StreakDays,
			BonusAmount:   amount,
			NextClaimTime: time.Date(y, m, d, 0, 0, 0, 0, loc),
		}
	case last.Equal(today.AddDate(0, 0, -1)):
		return model.Eligibility{CanClaim: true, StreakDays: rec.StreakDays, BonusAmount: amount, NextClaimTime: now}
	default:
		return model.Eligibility{CanClaim: true, StreakDays: 0, BonusAmount: amount, NextClaimTime: now}
	}
}

// advance computes the record after a claim at now; ok is false when the day
// was already claimed.
func advance(cur *model.DailyBonusRecord, userID uuid.UUID, now time.Time, loc *time.Location) (model.DailyBonusRecord, bool) {
	today := civilDay(now, loc)
	next := model.DailyBonusRecord{UserID: userID, LastClaimDate: today, StreakDays: 1, TotalClaims: 1}
	if cur == nil {
		return next, true
	}
	last := storedDay(cur.LastClaimDate)
	if !last.Before(today) {
		return model.DailyBonusRecord{}, false
	}
	if last.Equal(today.AddDate(0, 0, -1)) {
		next.StreakDays = cur.StreakDays + 1
	}
	next.TotalClaims = cur.TotalClaims + 1
	return next, true
}
