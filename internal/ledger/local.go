// Package ledger holds the client-side balance sources: the signed local
// guest ledger and the remote account ledger.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"

	pkgcrypto "github.com/klozestickers/credits/internal/crypto"
	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/kv"
)

const (
	balanceKey = "guest_credits"
	guestIDKey = "guest_id"
)

// record is stored as a single value so amount and signature can never be
// written separately.
type record struct {
	Amount int64  `json:"amount"`
	Sig    []byte `json:"sig"`
}

// Local is the guest balance persisted on the device with a keyed checksum.
// A missing, corrupt or tampered record reads as 0.
type Local struct {
	mu    sync.Mutex // serialises Add within the process
	store kv.Store
	key   []byte
	log   *zap.Logger
}

// NewLocal constructs a local ledger. A nil logger disables logging.
func NewLocal(store kv.Store, log *zap.Logger) *Local {
	if log == nil {
		log = zap.NewNop()
	}
	return &Local{store: store, key: pkgcrypto.LedgerSalt, log: log}
}

// Read returns the stored amount, or 0 when the record is absent or does not verify.
func (l *Local) Read(ctx context.Context) (int64, error) {
	raw, ok, err := l.store.Get(ctx, balanceKey)
	if err != nil {
		return 0, fmt.Errorf("%w: read local ledger: %v", errs.ErrTransient, err)
	}
	if !ok {
		return 0, nil
	}
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		l.log.Warn("local ledger record unreadable, treating as 0", zap.Error(err))
		return 0, nil
	}
	if rec.Amount < 0 || !pkgcrypto.VerifyChecksum(l.key, rec.Amount, rec.Sig) {
		l.log.Warn("local ledger checksum mismatch, treating as 0")
		return 0, nil
	}
	return rec.Amount, nil
}

// Write stores amount with its checksum.
func (l *Local) Write(ctx context.Context, amount int64) error {
	if amount < 0 {
		return fmt.Errorf("%w: negative balance", errs.ErrInvalidArgument)
	}
	raw, err := json.Marshal(record{Amount: amount, Sig: pkgcrypto.Checksum(l.key, amount)})
	if err != nil {
		return err
	}
	if err := l.store.Set(ctx, balanceKey, raw); err != nil {
		return fmt.Errorf("%w: write local ledger: %v", errs.ErrTransient, err)
	}
	return nil
}

// Add applies delta and returns the new amount. A result below zero fails with
// ErrInsufficientCredits and leaves the record untouched.
func (l *Local) Add(ctx context.Context, delta int64) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, err := l.Read(ctx)
	if err != nil {
		return 0, err
	}
	next := cur + delta
	if next < 0 {
		return cur, errs.ErrInsufficientCredits
	}
	if err := l.Write(ctx, next); err != nil {
		return cur, err
	}
	return next, nil
}

// GuestID returns the device's guest id, creating it on first use.
func (l *Local) GuestID(ctx context.Context) (string, error) {
	raw, ok, err := l.store.Get(ctx, guestIDKey)
	if err != nil {
		return "", fmt.Errorf("%w: read guest id: %v", errs.ErrTransient, err)
	}
	if ok && len(raw) > 0 {
		return string(raw), nil
	}
	return l.RotateGuestID(ctx)
}

// RotateGuestID replaces the guest id. Credits earned after a merge belong to
// the new id, so the server can merge them on a later sign-in.
func (l *Local) RotateGuestID(ctx context.Context) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	if err := l.store.Set(ctx, guestIDKey, []byte(id.String())); err != nil {
		return "", fmt.Errorf("%w: write guest id: %v", errs.ErrTransient, err)
	}
	return id.String(), nil
}
