package grpcserver

import (
	"context"
	"runtime/debug"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// levelFor logs server-side failures at warn and everything else, including
// client mistakes such as insufficient credits, at info.
func levelFor(code codes.Code) zapcore.Level {
	switch code {
	case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss, codes.DeadlineExceeded:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// LoggingUnary logs one line per call with method, code, duration, peer and
// the authenticated user. Payloads are never logged.
func LoggingUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := next(ctx, req)
		code := status.Code(err)

		fields := make([]zap.Field, 0, 6)
		fields = append(fields,
			zap.String("method", info.FullMethod),
			zap.Stringer("code", code),
			zap.Duration("dur", time.Since(start)),
			zap.String("peer", remoteIP(ctx)),
		)
		if c, ok := CallerFrom(ctx); ok {
			fields = append(fields, zap.Stringer("user", c.UserID))
		}
		if st, ok := status.FromError(err); ok && err != nil {
			fields = append(fields, zap.String("msg", st.Message()))
		}
		if ce := log.Check(levelFor(code), "rpc"); ce != nil {
			ce.Write(fields...)
		}
		return resp, err
	}
}

// RecoverUnary turns a handler panic into codes.Internal and logs the stack.
func RecoverUnary(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("handler panic",
					zap.String("method", info.FullMethod),
					zap.Any("reason", r),
					zap.ByteString("stack", debug.Stack()),
				)
				resp, err = nil, status.Error(codes.Internal, "internal")
			}
		}()
		return next(ctx, req)
	}
}
