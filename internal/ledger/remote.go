package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc/metadata"

	pb "github.com/klozestickers/credits/gen/go/kloze/credits/v1"
	"github.com/klozestickers/credits/internal/convert"
	"github.com/klozestickers/credits/internal/model"
	"github.com/klozestickers/credits/internal/rpc"
)

// Remote is the account ledger on the server. Every call goes to the server;
// nothing is cached, and failures map to the errs taxonomy.
type Remote struct {
	cl  pb.CreditsClient
	now func() time.Time

	mu    sync.RWMutex
	token string
}

// NewRemote wraps a Credits client.
func NewRemote(cl pb.CreditsClient) *Remote {
	return &Remote{cl: cl, now: time.Now}
}

// SetToken installs the access token used for authenticated calls.
func (r *Remote) SetToken(tok string) {
	r.mu.Lock()
	r.token = tok
	r.mu.Unlock()
}

// Authenticated reports whether a token is installed.
func (r *Remote) Authenticated() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.token != ""
}

func (r *Remote) authCtx(ctx context.Context) context.Context {
	r.mu.RLock()
	tok := r.token
	r.mu.RUnlock()
	if tok == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+tok)
}

func (r *Remote) fail(err error) error { return rpc.FromStatus(err, r.now()) }

// Register creates an account and returns its id.
func (r *Remote) Register(ctx context.Context, username, password string) (string, error) {
	resp, err := r.cl.Register(ctx, &pb.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return "", r.fail(err)
	}
	return resp.GetUserId(), nil
}

// Login authenticates and installs the returned token.
func (r *Remote) Login(ctx context.Context, username, password string) (model.Tokens, string, error) {
	resp, err := r.cl.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return model.Tokens{}, "", r.fail(err)
	}
	tok, userID := convert.FromProtoLogin(resp)
	r.SetToken(tok.AccessToken)
	return tok, userID, nil
}

// Balance reads the account balance. A failed read is ErrTransient, never 0.
func (r *Remote) Balance(ctx context.Context) (int64, error) {
	resp, err := r.cl.GetBalance(r.authCtx(ctx), &pb.GetBalanceRequest{})
	if err != nil {
		return 0, r.fail(err)
	}
	return resp.GetBalance(), nil
}

// Spend reserves amount with an atomic floor-checked decrement.
func (r *Remote) Spend(ctx context.Context, amount int64, reason string) (model.Reservation, error) {
	resp, err := r.cl.Spend(r.authCtx(ctx), &pb.SpendRequest{Amount: amount, Reason: reason})
	if err != nil {
		return model.Reservation{}, r.fail(err)
	}
	return convert.FromProtoReservation(resp)
}

// Refund returns a reservation to the balance, at most once.
func (r *Remote) Refund(ctx context.Context, reservationID uuid.UUID) (int64, error) {
	resp, err := r.cl.Refund(r.authCtx(ctx), &pb.RefundRequest{ReservationId: reservationID.String()})
	if err != nil {
		return 0, r.fail(err)
	}
	return resp.GetBalance(), nil
}

// RewardAd credits a completed rewarded ad and reports the server's amount.
func (r *Remote) RewardAd(ctx context.Context) (model.AdReward, error) {
	resp, err := r.cl.RewardAd(r.authCtx(ctx), &pb.RewardAdRequest{})
	if err != nil {
		return model.AdReward{}, r.fail(err)
	}
	return convert.FromProtoAdReward(resp), nil
}

// MergeGuest moves a guest balance into the account.
func (r *Remote) MergeGuest(ctx context.Context, guestID string, amount int64) (model.MergeResult, error) {
	resp, err := r.cl.MergeGuest(r.authCtx(ctx), &pb.MergeGuestRequest{GuestId: guestID, Amount: amount})
	if err != nil {
		return model.MergeResult{}, r.fail(err)
	}
	return convert.FromProtoMerge(resp), nil
}

// BonusEligibility reports the daily bonus state.
func (r *Remote) BonusEligibility(ctx context.Context) (model.Eligibility, error) {
	resp, err := r.cl.BonusEligibility(r.authCtx(ctx), &pb.BonusEligibilityRequest{})
	if err != nil {
		return model.Eligibility{}, r.fail(err)
	}
	return convert.FromProtoEligibility(resp), nil
}

// ClaimBonus claims the daily bonus in one server-side transaction.
func (r *Remote) ClaimBonus(ctx context.Context) (model.ClaimResult, error) {
	resp, err := r.cl.ClaimBonus(r.authCtx(ctx), &pb.ClaimBonusRequest{})
	if err != nil {
		return model.ClaimResult{}, r.fail(err)
	}
	return convert.FromProtoClaim(resp), nil
}
