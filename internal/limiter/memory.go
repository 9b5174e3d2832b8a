package limiter

import (
	"context"
	"sync"
	"time"

	"github.com/klozestickers/credits/internal/model"
)

type windowKey struct{ subject, action string }

// MemoryStore keeps windows in process memory. Suitable for a single instance and tests.
type MemoryStore struct {
	mu      sync.Mutex
	windows map[windowKey]model.RateLimitWindow
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{windows: make(map[windowKey]model.RateLimitWindow)}
}

// Consume applies one request to the window.
func (s *MemoryStore) Consume(_ context.Context, subject, action string, p Policy, now time.Time) (model.RateDecision, error) {
	k := windowKey{subject, action}

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[k]
	if !ok {
		w = model.RateLimitWindow{SubjectID: subject, Action: action}
	}
	w, d := Apply(w, ok, p, now)
	s.windows[k] = w
	return d, nil
}

// Reset drops the window.
func (s *MemoryStore) Reset(_ context.Context, subject, action string) error {
	s.mu.Lock()
	delete(s.windows, windowKey{subject, action})
	s.mu.Unlock()
	return nil
}

// Window returns the stored window for inspection.
func (s *MemoryStore) Window(subject, action string) (model.RateLimitWindow, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.windows[windowKey{subject, action}]
	return w, ok
}
