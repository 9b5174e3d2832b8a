package limiter

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/klozestickers/credits/internal/errs"
)

// Action types subject to rate limiting.
const (
	ActionGeneration   = "generation"
	ActionPackCreation = "pack-creation"
	ActionReport       = "report"
	ActionAdWatch      = "ad-watch"
	ActionAdReward     = "ad-reward"
	ActionLogin        = "login"
	ActionPurchase     = "purchase"
	ActionGuestMerge   = "guest-merge"
)

// Policy bounds one action type. The zero FailClosed value means fail open.
type Policy struct {
	MaxRequests int           `yaml:"max_requests" json:"max_requests"`
	Window      time.Duration `yaml:"window" json:"window"`
	FailClosed  bool          `yaml:"fail_closed" json:"fail_closed"`
}

// Validate checks the policy bounds.
func (p Policy) Validate() error {
	if p.MaxRequests <= 0 {
		return fmt.Errorf("%w: max_requests must be positive", errs.ErrInvalidArgument)
	}
	if p.Window <= 0 {
		return fmt.Errorf("%w: window must be positive", errs.ErrInvalidArgument)
	}
	return nil
}

// Policies maps action type to its policy.
type Policies map[string]Policy

// DefaultPolicies returns the built-in policy table.
func DefaultPolicies() Policies {
	return Policies{
		ActionGeneration:   {MaxRequests: 20, Window: time.Hour},
		ActionPackCreation: {MaxRequests: 10, Window: time.Hour},
		ActionReport:       {MaxRequests: 5, Window: time.Hour},
		ActionAdWatch:      {MaxRequests: 10, Window: time.Hour},
		ActionAdReward:     {MaxRequests: 10, Window: time.Hour, FailClosed: true},
		ActionLogin:        {MaxRequests: 5, Window: 15 * time.Minute, FailClosed: true},
		ActionPurchase:     {MaxRequests: 10, Window: time.Hour, FailClosed: true},
		ActionGuestMerge:   {MaxRequests: 1, Window: 24 * time.Hour, FailClosed: true},
	}
}

// Clone returns an independent copy.
func (ps Policies) Clone() Policies {
	out := make(Policies, len(ps))
	for k, v := range ps {
		out[k] = v
	}
	return out
}

// Actions returns the configured action names in sorted order.
func (ps Policies) Actions() []string {
	return slices.Sorted(maps.Keys(ps))
}

type policyFile struct {
	Policies map[string]Policy `yaml:"policies"`
}

// LoadPolicies reads a YAML policy file and overlays it on the defaults.
// An empty path returns the defaults.
//
//	policies:
//	  generation: {max_requests: 30, window: 1h}
//	  purchase:   {max_requests: 3, window: 10m, fail_closed: true}
func LoadPolicies(path string) (Policies, error) {
	ps := DefaultPolicies()
	if path == "" {
		return ps, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read policies %s: %w", path, err)
	}
	return ParsePolicies(data, ps)
}

// ParsePolicies overlays YAML policy data on base.
func ParsePolicies(data []byte, base Policies) (Policies, error) {
	var f policyFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse policies: %w", err)
	}
	out := base.Clone()
	var problems []error
	for action, p := range f.Policies {
		if err := p.Validate(); err != nil {
			problems = append(problems, fmt.Errorf("policy %q: %w", action, err))
			continue
		}
		out[action] = p
	}
	if len(problems) > 0 {
		return nil, errors.Join(problems...)
	}
	return out, nil
}
