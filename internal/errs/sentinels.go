// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import (
	"errors"
	"fmt"
	"time"
)

// Common sentinels across repo/service/client layers.
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized indicates failed authentication/authorization.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrRateLimited indicates too many actions of one type inside the current window.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., username taken, guest already merged).
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidArgument indicates a request that fails validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientCredits indicates the balance is below the required cost.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrTransient indicates the backend could not be reached; the state is unknown, not zero.
	ErrTransient = errors.New("backend unavailable")

	// ErrExternalEffectFailed indicates the generation/ad/purchase call itself failed.
	ErrExternalEffectFailed = errors.New("external effect failed")

	// ErrAlreadyClaimedToday indicates a repeated daily bonus claim.
	ErrAlreadyClaimedToday = errors.New("daily bonus already claimed today")
)

// RateLimitedError carries the moment the current window ends.
type RateLimitedError struct {
	Action  string
	ResetAt time.Time
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited: %s until %s", e.Action, e.ResetAt.UTC().Format(time.RFC3339))
}

// Is makes errors.Is(err, ErrRateLimited) hold for *RateLimitedError.
func (e *RateLimitedError) Is(target error) bool { return target == ErrRateLimited }

// UserMessage renders a short user-facing message for a taxonomy error.
func UserMessage(err error, now time.Time) string {
	var rl *RateLimitedError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rl):
		return "Too many requests, try again in " + humanWait(rl.ResetAt.Sub(now))
	case errors.Is(err, ErrRateLimited):
		return "Too many requests, try again later"
	case errors.Is(err, ErrInsufficientCredits):
		return "Not enough credits: watch an ad or upgrade"
	case errors.Is(err, ErrAlreadyClaimedToday):
		return "Daily bonus already claimed, come back tomorrow"
	case errors.Is(err, ErrUnauthorized):
		return "Please sign in again"
	case errors.Is(err, ErrTransient):
		return "Connection problem, please retry"
	default:
		return "Something went wrong, please retry"
	}
}

func humanWait(d time.Duration) string {
	if d < time.Minute {
		return "less than a minute"
	}
	d = d.Round(time.Minute)
	h := int(d / time.Hour)
	m := int((d % time.Hour) / time.Minute)
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%dm", h, m)
}
