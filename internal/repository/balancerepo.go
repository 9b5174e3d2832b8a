package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/klozestickers/credits/internal/model"
)

// BalanceRepository mutates account balances with atomic increments and
// floor-checked decrements only; it never overwrites an absolute value.
type BalanceRepository interface {
	// Get returns the current balance.
	Get(ctx context.Context, userID uuid.UUID) (int64, error)
	// Add increments the balance by amount (> 0) and returns the new balance.
	Add(ctx context.Context, userID uuid.UUID, amount int64) (int64, error)
	// Spend decrements the balance if it stays >= 0 and records a refundable reservation.
	Spend(ctx context.Context, userID uuid.UUID, amount int64, reason string) (model.Reservation, error)
	// Refund returns a reservation's amount to the balance, at most once.
	Refund(ctx context.Context, userID, reservationID uuid.UUID) (int64, error)
	// MergeGuest credits a guest balance to the account once per guest id.
	MergeGuest(ctx context.Context, userID uuid.UUID, guestID string, amount int64) (int64, error)
}
