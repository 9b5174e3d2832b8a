package service

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/model"
	"github.com/klozestickers/credits/internal/repository"
)

type fakeUsers struct {
	byName   map[string]*model.User
	balances *fakeBalances

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u *model.User, opening int64) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byName == nil {
		f.byName = map[string]*model.User{}
	}
	if _, exists := f.byName[u.Username]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	f.byName[u.Username] = &cpy
	if f.balances != nil {
		f.balances.set(u.ID, opening)
	}
	return nil
}
func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error
	resetAt  time.Time

	consumed   []string
	resetCalls int
}

func (l *fakeLimiter) CheckAndConsume(_ context.Context, subject, action string) (model.RateDecision, error) {
	l.consumed = append(l.consumed, action+"|"+subject)
	if l.allowErr != nil {
		return model.RateDecision{}, l.allowErr
	}
	return model.RateDecision{Allowed: l.allowOK, ResetAt: l.resetAt}, nil
}
func (l *fakeLimiter) Reset(context.Context, string, string) error {
	l.resetCalls++
	return nil
}

// fakeBalances mirrors the SQL semantics: atomic add, floor-checked spend,
// single-use refunds and single-use guest ids.
type fakeBalances struct {
	mu       sync.Mutex
	amounts  map[uuid.UUID]int64
	reserved map[uuid.UUID]*model.Reservation
	merged   map[string]bool
	err      error
}

var _ repository.BalanceRepository = (*fakeBalances)(nil)

func newFakeBalances() *fakeBalances {
	return &fakeBalances{
		amounts:  map[uuid.UUID]int64{},
		reserved: map[uuid.UUID]*model.Reservation{},
		merged:   map[string]bool{},
	}
}

func (f *fakeBalances) set(id uuid.UUID, v int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.amounts[id] = v
}

func (f *fakeBalances) Get(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	v, ok := f.amounts[id]
	if !ok {
		return 0, errs.ErrNotFound
	}
	return v, nil
}

func (f *fakeBalances) Add(_ context.Context, id uuid.UUID, amount int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	if amount <= 0 {
		return 0, errs.ErrInvalidArgument
	}
	f.amounts[id] += amount
	return f.amounts[id], nil
}

func (f *fakeBalances) Spend(_ context.Context, id uuid.UUID, amount int64, reason string) (model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return model.Reservation{}, f.err
	}
	if f.amounts[id] < amount {
		return model.Reservation{}, errs.ErrInsufficientCredits
	}
	f.amounts[id] -= amount
	r := model.Reservation{ID: uuid.Must(uuid.NewV4()), UserID: id, Amount: amount, Reason: reason, Balance: f.amounts[id]}
	f.reserved[r.ID] = &r
	return r, nil
}

func (f *fakeBalances) Refund(_ context.Context, id, resID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reserved[resID]
	if !ok || r.UserID != id || r.Refunded {
		return 0, errs.ErrNotFound
	}
	r.Refunded = true
	f.amounts[id] += r.Amount
	return f.amounts[id], nil
}

func (f *fakeBalances) MergeGuest(_ context.Context, id uuid.UUID, guestID string, amount int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.merged[guestID] {
		return 0, errs.ErrAlreadyExists
	}
	f.merged[guestID] = true
	f.amounts[id] += amount
	return f.amounts[id], nil
}

// fakeBonuses serializes claims the way the row lock does.
type fakeBonuses struct {
	mu       sync.Mutex
	recs     map[uuid.UUID]model.DailyBonusRecord
	balances *fakeBalances
}

var _ repository.BonusRepository = (*fakeBonuses)(nil)

func (f *fakeBonuses) Get(_ context.Context, id uuid.UUID) (*model.DailyBonusRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.recs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return &r, nil
}

func (f *fakeBonuses) Claim(ctx context.Context, id uuid.UUID, decide repository.ClaimFunc) (model.DailyBonusRecord, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var cur *model.DailyBonusRecord
	if r, ok := f.recs[id]; ok {
		cur = &r
	}
	next, grant, err := decide(cur)
	if err != nil {
		return model.DailyBonusRecord{}, 0, err
	}
	f.recs[id] = next
	bal, err := f.balances.Add(ctx, id, grant)
	return next, bal, err
}
