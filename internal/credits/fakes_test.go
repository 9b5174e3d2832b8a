package credits

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/kv"
	"github.com/klozestickers/credits/internal/ledger"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/model"
)

var (
	guest   = model.Owner{Kind: model.OwnerGuest, ID: "g1"}
	account = model.Owner{Kind: model.OwnerAccount, ID: "6f1c1f0e-0000-4000-8000-000000000001"}
)

// fakeRemote mimics the server ledger: atomic floor-checked spend and
// at-most-once refunds.
type fakeRemote struct {
	mu          sync.Mutex
	balance     int64
	reserved    map[uuid.UUID]int64
	refunds     int
	balanceErr  error
	adReward    int64
	spendCalls  int
	refundCalls int
}

func newFakeRemote(balance int64) *fakeRemote {
	return &fakeRemote{balance: balance, reserved: map[uuid.UUID]int64{}, adReward: 1}
}

func (f *fakeRemote) Balance(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.balanceErr != nil {
		return 0, f.balanceErr
	}
	return f.balance, nil
}

func (f *fakeRemote) Spend(_ context.Context, amount int64, reason string) (model.Reservation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.spendCalls++
	if f.balance < amount {
		return model.Reservation{}, errs.ErrInsufficientCredits
	}
	f.balance -= amount
	id := uuid.Must(uuid.NewV4())
	f.reserved[id] = amount
	return model.Reservation{ID: id, Amount: amount, Reason: reason, Balance: f.balance}, nil
}

func (f *fakeRemote) Refund(_ context.Context, id uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refundCalls++
	amt, ok := f.reserved[id]
	if !ok {
		return 0, errs.ErrNotFound
	}
	delete(f.reserved, id)
	f.balance += amt
	f.refunds++
	return f.balance, nil
}

func (f *fakeRemote) RewardAd(context.Context) (model.AdReward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balance += f.adReward
	return model.AdReward{Credited: f.adReward, Balance: f.balance}, nil
}

func (f *fakeRemote) get() int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balance
}

// brokenLimiter fails every check with a plain error.
type brokenLimiter struct{}

func (brokenLimiter) CheckAndConsume(context.Context, string, string) (model.RateDecision, error) {
	return model.RateDecision{}, errors.New("dial tcp: connection refused")
}

// recordingSink collects events; it can be made to block or panic.
type recordingSink struct {
	mu     sync.Mutex
	events []Event
	block  chan struct{}
	panics bool
}

func (s *recordingSink) Track(_ context.Context, ev Event) {
	if s.panics {
		panic("sink exploded")
	}
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func (s *recordingSink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.events))
	for _, e := range s.events {
		out = append(out, e.Name)
	}
	return out
}

type fixture struct {
	orch   *Orchestrator
	local  *ledger.Local
	remote *fakeRemote
}

func newFixture(t *testing.T, guestBalance, accountBalance int64, policies limiter.Policies) fixture {
	t.Helper()
	local := ledger.NewLocal(kv.NewMemory(), nil)
	if guestBalance > 0 {
		if err := local.Write(context.Background(), guestBalance); err != nil {
			t.Fatalf("seed local: %v", err)
		}
	}
	remote := newFakeRemote(accountBalance)
	lim := limiter.New(limiter.NewMemoryStore(), policies, nil)
	orch := New(local, remote, lim, Config{EffectTimeout: time.Second, AdTimeout: time.Second}, nil)
	return fixture{orch: orch, local: local, remote: remote}
}

func (f fixture) guestBalance(t *testing.T) int64 {
	t.Helper()
	v, err := f.local.Read(context.Background())
	if err != nil {
		t.Fatalf("read local: %v", err)
	}
	return v
}
