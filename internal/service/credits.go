package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/model"
	"github.com/klozestickers/credits/internal/repository"
)

// CreditService defines balance operations on accounts.
type CreditService interface {
	// Balance returns the current balance.
	Balance(ctx context.Context, userID uuid.UUID) (int64, error)
	// Spend reserves amount credits; fails with ErrInsufficientCredits instead of going negative.
	Spend(ctx context.Context, userID uuid.UUID, amount int64, reason string) (model.Reservation, error)
	// Refund returns a reservation to the balance, at most once.
	Refund(ctx context.Context, userID, reservationID uuid.UUID) (int64, error)
	// RewardAd grants the ad reward and reports the amount credited.
	RewardAd(ctx context.Context, userID uuid.UUID) (model.AdReward, error)
	// MergeGuest moves a guest balance into the account once per guest id.
	MergeGuest(ctx context.Context, userID uuid.UUID, guestID string, amount int64) (model.MergeResult, error)
}

// CreditConfig holds credit amounts.
type CreditConfig struct {
	AdReward      int64 // credits per completed rewarded ad
	MaxGuestMerge int64 // cap on credits carried over from a guest ledger
}

type CreditServiceImpl struct {
	balances repository.BalanceRepository
	lim      RateLimiter
	cfg      CreditConfig
}

// NewCreditService constructs CreditService; zero config values fall back to defaults.
func NewCreditService(balances repository.BalanceRepository, lim RateLimiter, cfg CreditConfig) *CreditServiceImpl {
	if cfg.AdReward <= 0 {
		cfg.AdReward = 1
	}
	if cfg.MaxGuestMerge <= 0 {
		cfg.MaxGuestMerge = 50
	}
	return &CreditServiceImpl{balances: balances, lim: lim, cfg: cfg}
}

func (s *CreditServiceImpl) Balance(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, fmt.Errorf("%w: empty userID", errs.ErrInvalidArgument)
	}
	return s.balances.Get(ctx, userID)
}

func (s *CreditServiceImpl) Spend(ctx context.Context, userID uuid.UUID, amount int64, reason string) (model.Reservation, error) {
	if userID == uuid.Nil {
		return model.Reservation{}, fmt.Errorf("%w: empty userID", errs.ErrInvalidArgument)
	}
	if amount <= 0 {
		return model.Reservation{}, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidArgument)
	}
	if reason == "" {
		return model.Reservation{}, fmt.Errorf("%w: empty reason", errs.ErrInvalidArgument)
	}
	return s.balances.Spend(ctx, userID, amount, reason)
}

func (s *CreditServiceImpl) Refund(ctx context.Context, userID, reservationID uuid.UUID) (int64, error) {
	if userID == uuid.Nil || reservationID == uuid.Nil {
		return 0, fmt.Errorf("%w: empty userID/reservationID", errs.ErrInvalidArgument)
	}
	return s.balances.Refund(ctx, userID, reservationID)
}

// RewardAd is limited by the ad-reward policy so a client cannot mint credits
// faster than ads can be watched.
func (s *CreditServiceImpl) RewardAd(ctx context.Context, userID uuid.UUID) (model.AdReward, error) {
	if userID == uuid.Nil {
		return model.AdReward{}, fmt.Errorf("%w: empty userID", errs.ErrInvalidArgument)
	}
	if err := s.consume(ctx, userID, limiter.ActionAdReward); err != nil {
		return model.AdReward{}, err
	}
	bal, err := s.balances.Add(ctx, userID, s.cfg.AdReward)
	if err != nil {
		return model.AdReward{}, err
	}
	return model.AdReward{Credited: s.cfg.AdReward, Balance: bal}, nil
}

// MergeGuest adds the guest amount, capped at MaxGuestMerge. The guest-merge
// policy bounds how often one account takes in guest balances.
func (s *CreditServiceImpl) MergeGuest(ctx context.Context, userID uuid.UUID, guestID string, amount int64) (model.MergeResult, error) {
	if userID == uuid.Nil || guestID == "" {
		return model.MergeResult{}, fmt.Errorf("%w: empty userID/guestID", errs.ErrInvalidArgument)
	}
	if amount < 0 {
		return model.MergeResult{}, fmt.Errorf("%w: negative guest amount", errs.ErrInvalidArgument)
	}
	if err := s.consume(ctx, userID, limiter.ActionGuestMerge); err != nil {
		return model.MergeResult{}, err
	}
	merged := min(amount, s.cfg.MaxGuestMerge)
	bal, err := s.balances.MergeGuest(ctx, userID, guestID, merged)
	if err != nil {
		return model.MergeResult{}, err
	}
	return model.MergeResult{Merged: merged, Balance: bal}, nil
}

func (s *CreditServiceImpl) consume(ctx context.Context, userID uuid.UUID, action string) error {
	d, err := s.lim.CheckAndConsume(ctx, userID.String(), action)
	if err != nil {
		return err
	}
	if !d.Allowed {
		return &errs.RateLimitedError{Action: action, ResetAt: d.ResetAt}
	}
	return nil
}
