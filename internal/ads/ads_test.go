package ads

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestScripted_Sequence(t *testing.T) {
	t.Parallel()
	p := NewScripted(Outcome{Reward: &Reward{Amount: 2}}, Outcome{})
	ctx := context.Background()

	r, err := p.Show(ctx)
	if err != nil || r == nil || r.Amount != 2 {
		t.Fatalf("first show: %+v %v", r, err)
	}
	for i := 0; i < 2; i++ {
		r, err = p.Show(ctx)
		if err != nil || r != nil {
			t.Fatalf("show %d: want nil reward, got %+v %v", i+2, r, err)
		}
	}
	if p.Shown() != 3 {
		t.Fatalf("shown=%d", p.Shown())
	}
}

func TestScripted_Block(t *testing.T) {
	t.Parallel()
	p := NewScripted(Outcome{Block: true})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := p.Show(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("want deadline, got %v", err)
	}
}
