// Package ads abstracts rewarded-ad providers.
package ads

import (
	"context"
	"sync"
)

// Reward is granted when the user watched an ad to completion.
type Reward struct {
	Amount int64
	Type   string
}

// Provider loads and shows rewarded ads. Show returns a nil reward when the
// ad was dismissed before completion.
type Provider interface {
	Prepare(ctx context.Context) error
	Show(ctx context.Context) (*Reward, error)
}

// Scripted is a Provider that returns preset outcomes in order. The last
// outcome repeats once the script is exhausted.
type Scripted struct {
	mu       sync.Mutex
	outcomes []Outcome
	shown    int
}

// Outcome is one scripted Show result. Block makes Show wait for ctx to end.
type Outcome struct {
	Reward     *Reward
	Err        error
	PrepareErr error
	Block      bool
}

// NewScripted returns a provider playing outcomes.
func NewScripted(outcomes ...Outcome) *Scripted {
	if len(outcomes) == 0 {
		outcomes = []Outcome{{Reward: &Reward{Amount: 1, Type: "credits"}}}
	}
	return &Scripted{outcomes: outcomes}
}

func (s *Scripted) current() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.shown
	if i >= len(s.outcomes) {
		i = len(s.outcomes) - 1
	}
	return s.outcomes[i]
}

func (s *Scripted) Prepare(context.Context) error { return s.current().PrepareErr }

func (s *Scripted) Show(ctx context.Context) (*Reward, error) {
	o := s.current()
	s.mu.Lock()
	s.shown++
	s.mu.Unlock()
	if o.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return o.Reward, o.Err
}

// Shown reports how many ads were shown.
func (s *Scripted) Shown() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shown
}
