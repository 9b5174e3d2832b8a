package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// Caller is the authenticated account behind a request.
type Caller struct {
	UserID    uuid.UUID
	ExpiresAt time.Time
}

type callerKey struct{}

// WithCaller attaches c to ctx.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the caller attached by AuthUnary.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	if !ok || c.UserID == uuid.Nil {
		return Caller{}, false
	}
	return c, true
}

var (
	errNoToken      = errors.New("no bearer token")
	errInvalidToken = errors.New("invalid token")
	errBadSubject   = errors.New("token subject is not a user id")
)

// tokenLeeway absorbs clock skew between issuer and verifier.
const tokenLeeway = 30 * time.Second

// AuthUnary resolves an optional bearer token into a Caller. Anonymous
// requests pass through and are rejected by handlers that need an account;
// a token that fails verification is rejected here.
func AuthUnary(signKey []byte) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, _ *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
		tok, err := bearerToken(ctx)
		if errors.Is(err, errNoToken) {
			return next(ctx, req)
		}
		c, err := verifyToken(tok, signKey)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		return next(WithCaller(ctx, c), req)
	}
}

// verifyToken checks an HS256 access token and maps its subject to a Caller.
func verifyToken(tok string, signKey []byte) (Caller, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tok, &claims,
		func(*jwt.Token) (any, error) { return signKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(tokenLeeway),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Caller{}, errInvalidToken
	}
	id, err := uuid.FromString(claims.Subject)
	if err != nil || id == uuid.Nil {
		return Caller{}, errBadSubject
	}
	return Caller{UserID: id, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// bearerToken returns the first non-empty "Bearer" authorization value.
func bearerToken(ctx context.Context) (string, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	for _, v := range md.Get("authorization") {
		scheme, tok, ok := strings.Cut(strings.TrimSpace(v), " ")
		if ok && strings.EqualFold(scheme, "bearer") {
			if tok = strings.TrimSpace(tok); tok != "" {
				return tok, nil
			}
		}
	}
	return "", errNoToken
}
