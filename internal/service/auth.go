// Package service contains application services for accounts, credits and daily bonuses.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	pkgcrypto "github.com/klozestickers/credits/internal/crypto"
	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/model"
	"github.com/klozestickers/credits/internal/repository"
)

// RateLimiter is the part of limiter.Limiter used by services.
type RateLimiter interface {
	CheckAndConsume(ctx context.Context, subject, action string) (model.RateDecision, error)
	Reset(ctx context.Context, subject, action string) error
}

var _ RateLimiter = (*limiter.Limiter)(nil)

// AuthService defines account operations.
type AuthService interface {
	// Register creates a new user with secure password hashing and the signup bonus.
	Register(ctx context.Context, username, password string) (userID string, err error)
	// Login applies rate-limiting and authenticates the user.
	Login(ctx context.Context, username, password, ip string) (tokens model.Tokens, user model.User, err error)
}

type AuthServiceImpl struct {
	users       repository.UserRepository
	signKey     []byte
	accessTTL   time.Duration
	lim         RateLimiter
	signupBonus int64
	now         func() time.Time
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, signKey []byte, accessTTL time.Duration, lim RateLimiter, signupBonus int64) *AuthServiceImpl {
	if signupBonus < 0 {
		signupBonus = 0
	}
	return &AuthServiceImpl{
		users:       users,
		signKey:     signKey,
		accessTTL:   accessTTL,
		lim:         lim,
		signupBonus: signupBonus,
		now:         time.Now,
	}
}

// Register creates a new user record and its opening balance.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: empty username/password", errs.ErrInvalidArgument)
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	pwdHash, saltAuth, err := pkgcrypto.NewPasswordHash([]byte(password))
	if err != nil {
		return "", err
	}

	u := &model.User{
		ID:       uid,
		Username: username,
		PwdHash:  pwdHash,
		SaltAuth: saltAuth,
	}
	if err := s.users.Create(ctx, u, s.signupBonus); err != nil {
		return "", err
	}
	return uid.String(), nil
}

// loginSubject keys the login window by (username, ip).
func loginSubject(username, ip string) string {
	return "login:" + username + "@" + ip
}

// Login authenticates with rate limiting by (username, ip). Every attempt counts
// against the window; a successful login clears it.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password, ip string) (model.Tokens, model.User, error) {
	subject := loginSubject(username, ip)

	d, err := s.lim.CheckAndConsume(ctx, subject, limiter.ActionLogin)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	if !d.Allowed {
		return model.Tokens{}, model.User{}, &errs.RateLimitedError{Action: limiter.ActionLogin, ResetAt: d.ResetAt}
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			// hide existence of the user
			return model.Tokens{}, model.User{}, errs.ErrUnauthorized
		}
		return model.Tokens{}, model.User{}, err
	}
	if !pkgcrypto.VerifyPassword([]byte(password), u.SaltAuth, u.PwdHash) {
		return model.Tokens{}, model.User{}, errs.ErrUnauthorized
	}

	// best-effort
	_ = s.lim.Reset(ctx, subject, limiter.ActionLogin)

	access, exp, err := s.issueAccessToken(u.ID)
	if err != nil {
		return model.Tokens{}, model.User{}, err
	}
	return model.Tokens{AccessToken: access, ExpiresAt: exp}, *u, nil
}

// issueAccessToken creates a signed HS256 JWT for the given subject.
func (s *AuthServiceImpl) issueAccessToken(userID uuid.UUID) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.accessTTL)
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.signKey)
	return signed, exp, err
}
