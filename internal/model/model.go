// Package model defines domain entities used by services, repositories and the client library.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// Tokens collects issued access tokens.
type Tokens struct {
	AccessToken string
	ExpiresAt   time.Time // access token expiry (for diagnostics)
}

// User represents an account stored on the server.
type User struct {
	ID        uuid.UUID // PK
	Username  string    // unique
	PwdHash   []byte    // Argon2id(password, SaltAuth)
	SaltAuth  []byte    // per-user auth salt
	CreatedAt time.Time
}

// OwnerKind tells whether a balance lives on the device or on the server.
type OwnerKind int

const (
	OwnerGuest OwnerKind = iota
	OwnerAccount
)

func (k OwnerKind) String() string {
	if k == OwnerAccount {
		return "account"
	}
	return "guest"
}

// Owner identifies whose credits an action is charged to.
type Owner struct {
	Kind OwnerKind
	ID   string // guest device id or account uuid
}

// Subject returns the rate-limit subject for the owner.
func (o Owner) Subject() string {
	if o.Kind == OwnerGuest {
		return "guest:" + o.ID
	}
	return o.ID
}

// CreditBalance is a non-negative credit amount. Signature is set for guest balances only.
type CreditBalance struct {
	OwnerKind OwnerKind
	Amount    int64
	Signature []byte
}

// Reservation is a committed debit that may be refunded at most once.
type Reservation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Amount    int64
	Reason    string
	Refunded  bool
	Balance   int64 // balance right after the debit
	CreatedAt time.Time
}

// RateLimitWindow is the fixed-window counter state for one (subject, action) key.
type RateLimitWindow struct {
	SubjectID   string
	Action      string
	WindowStart time.Time
	Count       int
}

// RateDecision is the outcome of a rate-limit check.
type RateDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// DailyBonusRecord tracks daily claims; LastClaimDate is a calendar date at midnight in the engine location.
type DailyBonusRecord struct {
	UserID        uuid.UUID
	LastClaimDate time.Time
	StreakDays    int
	TotalClaims   int
}

// Eligibility reports whether a daily bonus can be claimed now.
type Eligibility struct {
	CanClaim      bool
	StreakDays    int
	BonusAmount   int64
	NextClaimTime time.Time
}

// ClaimResult is the outcome of a daily bonus claim.
type ClaimResult struct {
	Success       bool
	CreditsEarned int64
	NewStreak     int
	TotalCredits  int64
}

// MergeResult reports a guest-to-account credit migration.
type MergeResult struct {
	Merged  int64
	Balance int64
}

// AdReward is the outcome of a credited rewarded ad.
type AdReward struct {
	Credited int64
	Balance  int64
}
