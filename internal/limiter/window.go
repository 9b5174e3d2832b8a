package limiter

import (
	"time"

	"github.com/klozestickers/credits/internal/model"
)

// Apply evaluates one request against window state w. exists=false means no
// window has been stored yet. A rejected request does not change the count.
func Apply(w model.RateLimitWindow, exists bool, p Policy, now time.Time) (model.RateLimitWindow, model.RateDecision) {
	if !exists || Expired(w, p, now) {
		w.WindowStart = now
		w.Count = 0
	}
	d := model.RateDecision{Limit: p.MaxRequests, ResetAt: w.WindowStart.Add(p.Window)}
	if w.Count < p.MaxRequests {
		w.Count++
		d.Allowed = true
		d.Remaining = p.MaxRequests - w.Count
	}
	return w, d
}

// Expired reports whether now is at or past the end of w.
func Expired(w model.RateLimitWindow, p Policy, now time.Time) bool {
	return !now.Before(w.WindowStart.Add(p.Window))
}
