// Package optimistic tracks a displayed value with pending, reversible deltas.
package optimistic

import (
	"sync"

	"github.com/gofrs/uuid/v5"
)

// Tracker holds a confirmed value plus pending deltas keyed by op id. The
// displayed value is confirmed + sum(pending).
type Tracker struct {
	mu        sync.Mutex
	confirmed int64
	pending   map[uuid.UUID]int64
}

// NewTracker starts from a confirmed value.
func NewTracker(confirmed int64) *Tracker {
	return &Tracker{confirmed: confirmed, pending: map[uuid.UUID]int64{}}
}

// Apply records a pending delta and returns its op id.
func (t *Tracker) Apply(delta int64) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	t.mu.Lock()
	t.pending[id] = delta
	t.mu.Unlock()
	return id
}

// Confirm folds a pending delta into the confirmed value. Unknown ids are ignored.
func (t *Tracker) Confirm(id uuid.UUID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if d, ok := t.pending[id]; ok {
		t.confirmed += d
		delete(t.pending, id)
	}
}

// Settle drops a pending delta that the source of truth has already applied
// and installs the value read back from it, in one step.
func (t *Tracker) Settle(id uuid.UUID, confirmed int64) {
	t.mu.Lock()
	delete(t.pending, id)
	t.confirmed = confirmed
	t.mu.Unlock()
}

// Rollback discards a pending delta. Unknown ids are ignored.
func (t *Tracker) Rollback(id uuid.UUID) {
	t.mu.Lock()
	delete(t.pending, id)
	t.mu.Unlock()
}

// Value is the displayed value.
func (t *Tracker) Value() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	v := t.confirmed
	for _, d := range t.pending {
		v += d
	}
	return v
}

// Confirmed is the value without pending deltas.
func (t *Tracker) Confirmed() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.confirmed
}

// Pending returns the number of unresolved ops.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Reset replaces the confirmed value with a fresh read from the source of
// truth. Pending ops stay pending.
func (t *Tracker) Reset(confirmed int64) {
	t.mu.Lock()
	t.confirmed = confirmed
	t.mu.Unlock()
}
