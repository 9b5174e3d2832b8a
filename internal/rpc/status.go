// Package rpc maps domain errors to gRPC status codes and back. Rate-limit
// rejections carry a RetryInfo detail so clients can report the reset time.
package rpc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/klozestickers/credits/internal/errs"
)

// ToStatus maps a domain error to a gRPC status error. Rate-limit errors carry
// a RetryInfo detail with the time left in the window.
func ToStatus(err error, now time.Time) error {
	if err == nil {
		return nil
	}
	var rl *errs.RateLimitedError
	switch {
	case errors.As(err, &rl):
		st := status.New(codes.ResourceExhausted, "rate limited: "+rl.Action)
		if d, derr := st.WithDetails(&errdetails.RetryInfo{RetryDelay: durationpb.New(max(rl.ResetAt.Sub(now), 0))}); derr == nil {
			st = d
		}
		return st.Err()
	case errors.Is(err, errs.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "rate limited")
	case errors.Is(err, errs.ErrInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, errs.ErrInsufficientCredits):
		return status.Error(codes.FailedPrecondition, "insufficient credits")
	case errors.Is(err, errs.ErrAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, errs.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, errs.ErrTransient):
		return status.Error(codes.Unavailable, "backend unavailable")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal")
	}
}

// FromStatus maps a gRPC error back to the domain taxonomy. Anything that is
// not a definite answer from the server becomes ErrTransient.
func FromStatus(err error, now time.Time) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", errs.ErrTransient, err)
	}
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return errs.ErrUnauthorized
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", errs.ErrInvalidArgument, st.Message())
	case codes.FailedPrecondition:
		return errs.ErrInsufficientCredits
	case codes.AlreadyExists:
		return errs.ErrAlreadyExists
	case codes.NotFound:
		return errs.ErrNotFound
	case codes.ResourceExhausted:
		rl := &errs.RateLimitedError{Action: strings.TrimPrefix(st.Message(), "rate limited: "), ResetAt: now}
		for _, d := range st.Details() {
			if ri, ok := d.(*errdetails.RetryInfo); ok {
				rl.ResetAt = now.Add(ri.GetRetryDelay().AsDuration())
			}
		}
		return rl
	case codes.Canceled:
		return context.Canceled
	default:
		return fmt.Errorf("%w: %s", errs.ErrTransient, st.Message())
	}
}
