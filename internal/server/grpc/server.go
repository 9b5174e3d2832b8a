// Package grpcserver exposes the Credits gRPC API handlers.
package grpcserver

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	pb "github.com/klozestickers/credits/gen/go/kloze/credits/v1"
	"github.com/klozestickers/credits/internal/convert"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/model"
	"github.com/klozestickers/credits/internal/rpc"
	"github.com/klozestickers/credits/internal/service"
)

// RateLimits is the limiter surface exposed over RPC.
type RateLimits interface {
	CheckAndConsume(ctx context.Context, subject, action string) (model.RateDecision, error)
	Policies() limiter.Policies
}

// Server wires services into gRPC handlers.
type Server struct {
	pb.UnimplementedCreditsServer

	auth    service.AuthService
	credits service.CreditService
	bonus   service.BonusService
	limits  RateLimits
	now     func() time.Time
}

var _ pb.CreditsServer = (*Server)(nil)

// New constructs a gRPC server with injected services.
func New(auth service.AuthService, credits service.CreditService, bonus service.BonusService, limits RateLimits) *Server {
	return &Server{auth: auth, credits: credits, bonus: bonus, limits: limits, now: time.Now}
}

func (s *Server) fail(err error) error { return rpc.ToStatus(err, s.now()) }

func requireUser(ctx context.Context) (uuid.UUID, error) {
	c, ok := CallerFrom(ctx)
	if !ok {
		return uuid.Nil, status.Error(codes.Unauthenticated, "no auth")
	}
	return c.UserID, nil
}

// --- Auth ---

// Register creates a new user account.
func (s *Server) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if req.GetUsername() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "empty username/password")
	}
	userID, err := s.auth.Register(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.RegisterResponse{UserId: userID}, nil
}

// remoteIP returns the peer host without the port.
func remoteIP(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

// Login authenticates a user and returns an access token.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	tok, u, err := s.auth.Login(ctx, req.GetUsername(), req.GetPassword(), remoteIP(ctx))
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.LoginResponse{
		AccessToken: tok.AccessToken,
		ExpiresAt:   timestamppb.New(tok.ExpiresAt),
		UserId:      u.ID.String(),
	}, nil
}

// --- Credits ---

func (s *Server) GetBalance(ctx context.Context, _ *pb.GetBalanceRequest) (*pb.BalanceResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	bal, err := s.credits.Balance(ctx, userID)
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.BalanceResponse{Balance: bal}, nil
}

// Spend reserves credits with an atomic floor-checked decrement.
func (s *Server) Spend(ctx context.Context, req *pb.SpendRequest) (*pb.SpendResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.credits.Spend(ctx, userID, req.GetAmount(), req.GetReason())
	if err != nil {
		return nil, s.fail(err)
	}
	return convert.ToProtoReservation(res), nil
}

// Refund returns a reservation to the balance.
func (s *Server) Refund(ctx context.Context, req *pb.RefundRequest) (*pb.BalanceResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	resID, err := uuid.FromString(req.GetReservationId())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "bad reservation id")
	}
	bal, err := s.credits.Refund(ctx, userID, resID)
	if err != nil {
		return nil, s.fail(err)
	}
	return &pb.BalanceResponse{Balance: bal}, nil
}

func (s *Server) RewardAd(ctx context.Context, _ *pb.RewardAdRequest) (*pb.RewardAdResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	r, err := s.credits.RewardAd(ctx, userID)
	if err != nil {
		return nil, s.fail(err)
	}
	return convert.ToProtoAdReward(r), nil
}

func (s *Server) MergeGuest(ctx context.Context, req *pb.MergeGuestRequest) (*pb.MergeGuestResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.credits.MergeGuest(ctx, userID, req.GetGuestId(), req.GetAmount())
	if err != nil {
		return nil, s.fail(err)
	}
	return convert.ToProtoMerge(res), nil
}

// --- Rate limits ---

const guestPrefix = "guest:"

// CheckRateLimit counts one action. Authenticated callers are limited by user
// id; anonymous callers must name a guest subject.
func (s *Server) CheckRateLimit(ctx context.Context, req *pb.CheckRateLimitRequest) (*pb.CheckRateLimitResponse, error) {
	subject := req.GetSubject()
	if c, ok := CallerFrom(ctx); ok {
		subject = c.UserID.String()
	} else if !strings.HasPrefix(subject, guestPrefix) || len(subject) == len(guestPrefix) {
		return nil, status.Error(codes.Unauthenticated, "guest subject required")
	}
	action := req.GetAction()
	if action == "" {
		return nil, status.Error(codes.InvalidArgument, "empty action")
	}
	d, err := s.limits.CheckAndConsume(ctx, subject, action)
	if err != nil {
		return nil, s.fail(err)
	}
	return convert.ToProtoDecision(d), nil
}

func (s *Server) GetPolicies(context.Context, *pb.GetPoliciesRequest) (*pb.GetPoliciesResponse, error) {
	return convert.ToProtoPolicies(s.limits.Policies()), nil
}

// --- Daily bonus ---

func (s *Server) BonusEligibility(ctx context.Context, _ *pb.BonusEligibilityRequest) (*pb.BonusEligibilityResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	el, err := s.bonus.CheckEligibility(ctx, userID)
	if err != nil {
		return nil, s.fail(err)
	}
	return convert.ToProtoEligibility(el), nil
}

// ClaimBonus reports a repeated same-day claim as Success=false, not as an error.
func (s *Server) ClaimBonus(ctx context.Context, _ *pb.ClaimBonusRequest) (*pb.ClaimBonusResponse, error) {
	userID, err := requireUser(ctx)
	if err != nil {
		return nil, err
	}
	res, err := s.bonus.Claim(ctx, userID)
	if err != nil {
		return nil, s.fail(fmt.Errorf("claim: %w", err))
	}
	return convert.ToProtoClaim(res), nil
}
