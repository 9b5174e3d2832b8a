package optimistic

import (
	"sync"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
)

func TestTracker_ApplyConfirmRollback(t *testing.T) {
	t.Parallel()
	tr := NewTracker(5)

	a := tr.Apply(-3)
	require.Equal(t, int64(2), tr.Value())
	require.Equal(t, int64(5), tr.Confirmed())

	tr.Rollback(a)
	require.Equal(t, int64(5), tr.Value())
	require.Zero(t, tr.Pending())

	b := tr.Apply(-3)
	tr.Confirm(b)
	require.Equal(t, int64(2), tr.Value())
	require.Equal(t, int64(2), tr.Confirmed())

	// resolving twice or unknown ids is a no-op
	tr.Confirm(b)
	tr.Rollback(b)
	tr.Rollback(uuid.Must(uuid.NewV4()))
	require.Equal(t, int64(2), tr.Value())
}

func TestTracker_ResetKeepsPending(t *testing.T) {
	t.Parallel()
	tr := NewTracker(10)
	id := tr.Apply(-4)
	tr.Reset(7)
	require.Equal(t, int64(3), tr.Value())
	tr.Rollback(id)
	require.Equal(t, int64(7), tr.Value())
}

func TestTracker_SettleThenReset(t *testing.T) {
	t.Parallel()
	tr := NewTracker(5)
	id := tr.Apply(-3)
	tr.Settle(id, 2)
	require.Equal(t, int64(2), tr.Value())
	require.Zero(t, tr.Pending())

	// a fresh read after settling must not subtract the delta again
	tr.Reset(2)
	require.Equal(t, int64(2), tr.Value())
	tr.Confirm(id)
	tr.Rollback(id)
	require.Equal(t, int64(2), tr.Value())
}

func TestTracker_Concurrent(t *testing.T) {
	t.Parallel()
	tr := NewTracker(0)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := tr.Apply(1)
			if i%2 == 0 {
				tr.Confirm(id)
			} else {
				tr.Rollback(id)
			}
		}(i)
	}
	wg.Wait()
	require.Equal(t, int64(25), tr.Value())
	require.Zero(t, tr.Pending())
}
