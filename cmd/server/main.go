// Command kloze-server serves the Kloze Stickers credits API over gRPC.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/klozestickers/credits/internal/config"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/migrate"
	"github.com/klozestickers/credits/internal/repository/postgres"
	pb "github.com/klozestickers/credits/gen/go/kloze/credits/v1"
	grpcserver "github.com/klozestickers/credits/internal/server/grpc"
	"github.com/klozestickers/credits/internal/service"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

const shutdownGrace = 5 * time.Second

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Fatal("load .env", zap.Error(err))
	}
	cfg, err := config.ParseServer(os.Args[1:], os.Getenv, os.Stderr)
	if err != nil {
		logger.Fatal("config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}

// run wires storage, services and transport, then serves until ctx is done.
func run(ctx context.Context, cfg config.Server, logger *zap.Logger) error {
	logger.Info("starting",
		zap.String("version", version),
		zap.String("buildDate", buildDate),
		zap.String("addr", cfg.Addr),
		zap.String("location", cfg.Location),
	)

	policies, err := limiter.LoadPolicies(cfg.PoliciesPath)
	if err != nil {
		return fmt.Errorf("load rate-limit policies: %w", err)
	}
	if err := migrate.Up(ctx, cfg.DSN, logger.Named("migrate")); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	db, err := postgres.New(ctx, cfg.DSN, postgres.PoolOptions{MaxConns: int32(cfg.DBMaxConns)})
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer db.Close()

	lim := limiter.New(limiter.NewPG(db.Pool), policies, logger.Named("limiter"))
	balances := postgres.NewBalanceRepo(db)
	signKey := []byte(cfg.JWTKey)

	handlers := grpcserver.New(
		service.NewAuthService(postgres.NewUserRepo(db), signKey, cfg.AccessTTL, lim, cfg.SignupBonus),
		service.NewCreditService(balances, lim, service.CreditConfig{
			AdReward:      cfg.AdReward,
			MaxGuestMerge: cfg.MaxGuestMerge,
		}),
		service.NewBonusService(postgres.NewBonusRepo(db), balances, cfg.DailyBonus, cfg.Loc()),
		lim,
	)

	s, err := newGRPCServer(cfg, signKey, logger)
	if err != nil {
		return err
	}
	pb.RegisterCreditsServer(s, handlers)
	hs := health.NewServer()
	hs.SetServingStatus(pb.Credits_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	if cfg.Dev {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return serve(ctx, s, hs, lis, logger)
}

func newGRPCServer(cfg config.Server, signKey []byte, logger *zap.Logger) (*grpc.Server, error) {
	opts := []grpc.ServerOption{
		grpc.ChainUnaryInterceptor(
			grpcserver.RecoverUnary(logger),
			grpcserver.AuthUnary(signKey),
			grpcserver.LoggingUnary(logger.Named("rpc")),
		),
	}
	if cfg.TLSCert == "" {
		logger.Warn("serving without TLS")
		return grpc.NewServer(opts...), nil
	}
	creds, err := credentials.NewServerTLSFromFile(cfg.TLSCert, cfg.TLSKey)
	if err != nil {
		return nil, fmt.Errorf("load TLS cert/key: %w", err)
	}
	return grpc.NewServer(append(opts, grpc.Creds(creds))...), nil
}

// serve blocks until ctx is cancelled or Serve fails. On cancellation health
// flips to NOT_SERVING and in-flight calls get shutdownGrace to finish.
func serve(ctx context.Context, s *grpc.Server, hs *health.Server, lis net.Listener, logger *zap.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.Stringer("addr", lis.Addr()))
		errCh <- s.Serve(lis)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	hs.Shutdown()
	stopped := make(chan struct{})
	go func() {
		s.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(shutdownGrace):
		logger.Warn("graceful stop timed out, forcing")
		s.Stop()
	}
	return nil
}
