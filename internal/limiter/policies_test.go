package limiter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/klozestickers/credits/internal/errs"
)

func TestDefaultPolicies(t *testing.T) {
	t.Parallel()
	ps := DefaultPolicies()

	require.Equal(t, Policy{MaxRequests: 20, Window: time.Hour}, ps[ActionGeneration])
	require.Equal(t, Policy{MaxRequests: 10, Window: time.Hour}, ps[ActionPackCreation])
	require.Equal(t, Policy{MaxRequests: 5, Window: time.Hour}, ps[ActionReport])
	require.Equal(t, Policy{MaxRequests: 10, Window: time.Hour}, ps[ActionAdWatch])
	require.True(t, ps[ActionPurchase].FailClosed)
	require.True(t, ps[ActionAdReward].FailClosed)
	require.True(t, ps[ActionLogin].FailClosed)
	require.Equal(t, Policy{MaxRequests: 1, Window: 24 * time.Hour, FailClosed: true}, ps[ActionGuestMerge])
	for action, p := range ps {
		require.NoError(t, p.Validate(), action)
	}
}

func TestPolicies_ActionsSorted(t *testing.T) {
	t.Parallel()
	ps := Policies{
		ActionReport:     {MaxRequests: 1, Window: time.Minute},
		ActionAdWatch:    {MaxRequests: 1, Window: time.Minute},
		ActionGuestMerge: {MaxRequests: 1, Window: time.Minute},
	}
	require.Equal(t, []string{ActionAdWatch, ActionGuestMerge, ActionReport}, ps.Actions())
}

func TestParsePolicies_Overlay(t *testing.T) {
	t.Parallel()
	data := []byte(`
policies:
  generation:
    max_requests: 30
    window: 30m
  export:
    max_requests: 2
    window: 24h
    fail_closed: true
`)
	ps, err := ParsePolicies(data, DefaultPolicies())
	require.NoError(t, err)
	require.Equal(t, Policy{MaxRequests: 30, Window: 30 * time.Minute}, ps[ActionGeneration])
	require.Equal(t, Policy{MaxRequests: 2, Window: 24 * time.Hour, FailClosed: true}, ps["export"])
	require.Equal(t, 5, ps[ActionReport].MaxRequests, "untouched defaults stay")
}

func TestParsePolicies_Invalid(t *testing.T) {
	t.Parallel()
	_, err := ParsePolicies([]byte("policies:\n  generation: {max_requests: 0, window: 1h}\n"), DefaultPolicies())
	require.ErrorIs(t, err, errs.ErrInvalidArgument)

	_, err = ParsePolicies([]byte("policies: [oops"), DefaultPolicies())
	require.Error(t, err)
}

func TestLoadPolicies_File(t *testing.T) {
	t.Parallel()
	p := filepath.Join(t.TempDir(), "policies.yaml")
	require.NoError(t, os.WriteFile(p, []byte("policies:\n  report: {max_requests: 1, window: 10m}\n"), 0o600))

	ps, err := LoadPolicies(p)
	require.NoError(t, err)
	require.Equal(t, 1, ps[ActionReport].MaxRequests)

	ps, err = LoadPolicies("")
	require.NoError(t, err)
	require.Equal(t, DefaultPolicies(), ps)

	_, err = LoadPolicies(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
