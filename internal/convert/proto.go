// Package convert maps between domain models and protobuf messages.
package convert

import (
	"fmt"
	"time"

	u "github.com/gofrs/uuid/v5"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/klozestickers/credits/gen/go/kloze/credits/v1"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/model"
)

// --- helpers ---

func ts(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTS(t *timestamppb.Timestamp) time.Time {
	if t == nil {
		return time.Time{}
	}
	return t.AsTime()
}

// --- Auth ---

// FromProtoLogin extracts the token and user id from a login response.
func FromProtoLogin(in *pb.LoginResponse) (model.Tokens, string) {
	return model.Tokens{
		AccessToken: in.GetAccessToken(),
		ExpiresAt:   fromTS(in.GetExpiresAt()),
	}, in.GetUserId()
}

// --- Reservations ---

// ToProtoReservation converts a committed spend to its response.
func ToProtoReservation(r model.Reservation) *pb.SpendResponse {
	return &pb.SpendResponse{
		ReservationId: r.ID.String(),
		Amount:        r.Amount,
		Reason:        r.Reason,
		Balance:       r.Balance,
		CreatedAt:     ts(r.CreatedAt),
	}
}

// FromProtoReservation converts a spend response back to a reservation.
func FromProtoReservation(in *pb.SpendResponse) (model.Reservation, error) {
	if in == nil {
		return model.Reservation{}, fmt.Errorf("nil SpendResponse")
	}
	var id u.UUID
	if err := id.UnmarshalText([]byte(in.GetReservationId())); err != nil {
		return model.Reservation{}, fmt.Errorf("invalid reservation id: %w", err)
	}
	return model.Reservation{
		ID:        id,
		Amount:    in.GetAmount(),
		Reason:    in.GetReason(),
		Balance:   in.GetBalance(),
		CreatedAt: fromTS(in.GetCreatedAt()),
	}, nil
}

// --- Rate limits ---

func ToProtoDecision(d model.RateDecision) *pb.CheckRateLimitResponse {
	return &pb.CheckRateLimitResponse{
		Allowed:   d.Allowed,
		Limit:     int32(d.Limit),
		Remaining: int32(d.Remaining),
		ResetAt:   ts(d.ResetAt),
	}
}

func FromProtoDecision(in *pb.CheckRateLimitResponse) model.RateDecision {
	if in == nil {
		return model.RateDecision{}
	}
	return model.RateDecision{
		Allowed:   in.GetAllowed(),
		Limit:     int(in.GetLimit()),
		Remaining: int(in.GetRemaining()),
		ResetAt:   fromTS(in.GetResetAt()),
	}
}

// ToProtoPolicies flattens windows to whole seconds, sorted by action.
func ToProtoPolicies(ps limiter.Policies) *pb.GetPoliciesResponse {
	out := &pb.GetPoliciesResponse{Policies: make([]*pb.Policy, 0, len(ps))}
	for _, action := range ps.Actions() {
		p := ps[action]
		out.Policies = append(out.Policies, &pb.Policy{
			Action:        action,
			MaxRequests:   int32(p.MaxRequests),
			WindowSeconds: int64(p.Window / time.Second),
			FailClosed:    p.FailClosed,
		})
	}
	return out
}

// FromProtoPolicies rebuilds the policy table, rejecting invalid entries.
func FromProtoPolicies(in *pb.GetPoliciesResponse) (limiter.Policies, error) {
	if in == nil {
		return nil, fmt.Errorf("nil GetPoliciesResponse")
	}
	out := make(limiter.Policies, len(in.GetPolicies()))
	for _, p := range in.GetPolicies() {
		lp := limiter.Policy{
			MaxRequests: int(p.GetMaxRequests()),
			Window:      time.Duration(p.GetWindowSeconds()) * time.Second,
			FailClosed:  p.GetFailClosed(),
		}
		if err := lp.Validate(); err != nil {
			return nil, fmt.Errorf("policy %q: %w", p.GetAction(), err)
		}
		out[p.GetAction()] = lp
	}
	return out, nil
}

// --- Daily bonus ---

func ToProtoEligibility(e model.Eligibility) *pb.BonusEligibilityResponse {
	return &pb.BonusEligibilityResponse{
		CanClaim:      e.CanClaim,
		StreakDays:    int32(e.StreakDays),
		BonusAmount:   e.BonusAmount,
		NextClaimTime: ts(e.NextClaimTime),
	}
}

func FromProtoEligibility(in *pb.BonusEligibilityResponse) model.Eligibility {
	if in == nil {
		return model.Eligibility{}
	}
	return model.Eligibility{
		CanClaim:      in.GetCanClaim(),
		StreakDays:    int(in.GetStreakDays()),
		BonusAmount:   in.GetBonusAmount(),
		NextClaimTime: fromTS(in.GetNextClaimTime()),
	}
}

func ToProtoClaim(c model.ClaimResult) *pb.ClaimBonusResponse {
	return &pb.ClaimBonusResponse{
		Success:       c.Success,
		CreditsEarned: c.CreditsEarned,
		NewStreak:     int32(c.NewStreak),
		TotalCredits:  c.TotalCredits,
	}
}

func FromProtoClaim(in *pb.ClaimBonusResponse) model.ClaimResult {
	if in == nil {
		return model.ClaimResult{}
	}
	return model.ClaimResult{
		Success:       in.GetSuccess(),
		CreditsEarned: in.GetCreditsEarned(),
		NewStreak:     int(in.GetNewStreak()),
		TotalCredits:  in.GetTotalCredits(),
	}
}

// --- Ads and guest merge ---

func ToProtoAdReward(r model.AdReward) *pb.RewardAdResponse {
	return &pb.RewardAdResponse{Credited: r.Credited, Balance: r.Balance}
}

func FromProtoAdReward(in *pb.RewardAdResponse) model.AdReward {
	return model.AdReward{Credited: in.GetCredited(), Balance: in.GetBalance()}
}

func ToProtoMerge(m model.MergeResult) *pb.MergeGuestResponse {
	return &pb.MergeGuestResponse{Merged: m.Merged, Balance: m.Balance}
}

func FromProtoMerge(in *pb.MergeGuestResponse) model.MergeResult {
	return model.MergeResult{Merged: in.GetMerged(), Balance: in.GetBalance()}
}
