package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/klozestickers/credits/internal/crypto"
	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/limiter"
	"github.com/klozestickers/credits/internal/model"
)

func TestAuth_Register_Basics(t *testing.T) {
	t.Parallel()
	bal := newFakeBalances()
	users := &fakeUsers{byName: map[string]*model.User{}, balances: bal}
	s := NewAuthService(users, []byte("k"), time.Minute, &fakeLimiter{}, 3)

	if _, err := s.Register(context.Background(), "", ""); !errors.Is(err, errs.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument on empty username/password, got %v", err)
	}

	id, err := s.Register(context.Background(), "alice", "pwd")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	uid := uuid.FromStringOrNil(id)
	if uid == uuid.Nil {
		t.Fatalf("bad user id %q", id)
	}
	if got, _ := bal.Get(context.Background(), uid); got != 3 {
		t.Fatalf("signup bonus: got %d want 3", got)
	}

	if _, err := s.Register(context.Background(), "alice", "pwd2"); !errors.Is(err, errs.ErrAlreadyExists) {
		t.Fatalf("want ErrAlreadyExists on duplicate username, got %v", err)
	}

	users.createErr = errors.New("boom")
	if _, err := s.Register(context.Background(), "bob", "pwd"); err == nil {
		t.Fatalf("want propagated repo error")
	}
}

func TestAuth_Login_RateLimiterAndCreds(t *testing.T) {
	t.Parallel()

	hash, salt, err := pkgcrypto.NewPasswordHash([]byte("correct"))
	if err != nil {
		t.Fatal(err)
	}
	u := &model.User{ID: uuid.Must(uuid.NewV4()), Username: "alice", SaltAuth: salt, PwdHash: hash}

	users := &fakeUsers{byName: map[string]*model.User{"alice": u}}
	reset := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	lim := &fakeLimiter{allowOK: true, resetAt: reset}
	s := NewAuthService(users, []byte("secret"), 2*time.Minute, lim, 3)
	ctx := context.Background()

	lim.allowErr = errs.ErrTransient
	if _, _, err := s.Login(ctx, "alice", "correct", "1.2.3.4"); !errors.Is(err, errs.ErrTransient) {
		t.Fatalf("want limiter error propagate, got %v", err)
	}
	lim.allowErr = nil

	lim.allowOK = false
	_, _, err = s.Login(ctx, "alice", "correct", "1.2.3.4")
	var rl *errs.RateLimitedError
	if !errors.As(err, &rl) || !rl.ResetAt.Equal(reset) || rl.Action != limiter.ActionLogin {
		t.Fatalf("want RateLimitedError with reset, got %v", err)
	}
	lim.allowOK = true

	if _, _, err := s.Login(ctx, "nope", "x", ""); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized on missing user, got %v", err)
	}
	if _, _, err := s.Login(ctx, "alice", "wrong", ""); !errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized on wrong password, got %v", err)
	}
	users.getErr = errors.New("db down")
	if _, _, err := s.Login(ctx, "alice", "correct", ""); err == nil || errors.Is(err, errs.ErrUnauthorized) {
		t.Fatalf("want storage error to propagate, got %v", err)
	}
	users.getErr = nil
	if lim.resetCalls != 0 {
		t.Fatalf("failed logins must not reset the window")
	}

	tok, gotUser, err := s.Login(ctx, "alice", "correct", "127.0.0.1")
	if err != nil {
		t.Fatalf("Login success: %v", err)
	}
	if tok.AccessToken == "" || tok.ExpiresAt.Before(time.Now()) {
		t.Fatalf("bad token: %+v", tok)
	}
	if gotUser.ID != u.ID {
		t.Fatalf("bad user returned: %+v", gotUser)
	}
	if lim.resetCalls != 1 {
		t.Fatalf("expected Reset() after success, got %d", lim.resetCalls)
	}
	last := lim.consumed[len(lim.consumed)-1]
	if last != "login|login:alice@127.0.0.1" {
		t.Fatalf("unexpected limiter key %q", last)
	}
}

func TestAuth_issueAccessToken_TTL(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{byName: map[string]*model.User{}}
	s := NewAuthService(users, []byte("k"), time.Second, &fakeLimiter{allowOK: true}, 0)

	if _, err := s.Register(context.Background(), "bob", "p"); err != nil {
		t.Fatalf("register: %v", err)
	}
	tk, _, err := s.Login(context.Background(), "bob", "p", "")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if tk.AccessToken == "" {
		t.Fatalf("empty token")
	}
	if time.Until(tk.ExpiresAt) <= 0 {
		t.Fatalf("token already expired: %v", tk.ExpiresAt)
	}
}
