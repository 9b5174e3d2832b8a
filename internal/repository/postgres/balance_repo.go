package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/model"
)

// BalanceRepo implements BalanceRepository using PostgreSQL.
type BalanceRepo struct {
	db    *DB
	newID func() (uuid.UUID, error)
}

// NewBalanceRepo constructs a balance repository.
func NewBalanceRepo(db *DB) *BalanceRepo { return &BalanceRepo{db: db, newID: uuid.NewV4} }

const addBalance = `
UPDATE balances SET amount = amount + $2, updated_at = now()
WHERE user_id=$1
RETURNING amount`

// Get returns the balance for a user.
func (r *BalanceRepo) Get(ctx context.Context, userID uuid.UUID) (int64, error) {
	const q = `SELECT amount FROM balances WHERE user_id=$1`
	var amount int64
	if err := r.db.Pool.QueryRow(ctx, q, userID).Scan(&amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return amount, nil
}

// Add atomically increments the balance.
func (r *BalanceRepo) Add(ctx context.Context, userID uuid.UUID, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidArgument)
	}
	var bal int64
	if err := r.db.Pool.QueryRow(ctx, addBalance, userID, amount).Scan(&bal); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, errs.ErrNotFound
		}
		return 0, err
	}
	return bal, nil
}

// Spend decrements the balance only if it covers amount and stores a reservation.
func (r *BalanceRepo) Spend(ctx context.Context, userID uuid.UUID, amount int64, reason string) (res model.Reservation, err error) {
	if amount <= 0 {
		return model.Reservation{}, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidArgument)
	}
	id, err := r.newID()
	if err != nil {
		return model.Reservation{}, err
	}

	const debit = `
UPDATE balances SET amount = amount - $2, updated_at = now()
WHERE user_id=$1 AND amount >= $2
RETURNING amount`
	const ins = `
INSERT INTO credit_reservations (id, user_id, amount, reason)
VALUES ($1,$2,$3,$4)
RETURNING created_at`

	res = model.Reservation{ID: id, UserID: userID, Amount: amount, Reason: reason}
	err = r.db.inTx(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, debit, userID, amount).Scan(&res.Balance); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrInsufficientCredits
			}
			return err
		}
		return tx.QueryRow(ctx, ins, id, userID, amount, reason).Scan(&res.CreatedAt)
	})
	if err != nil {
		return model.Reservation{}, err
	}
	return res, nil
}

// Refund marks the reservation refunded and credits its amount back.
func (r *BalanceRepo) Refund(ctx context.Context, userID, reservationID uuid.UUID) (int64, error) {
	const mark = `
UPDATE credit_reservations SET refunded=true
WHERE id=$1 AND user_id=$2 AND NOT refunded
RETURNING amount`

	var bal int64
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		var amount int64
		if err := tx.QueryRow(ctx, mark, reservationID, userID).Scan(&amount); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		return tx.QueryRow(ctx, addBalance, userID, amount).Scan(&bal)
	})
	if err != nil {
		return 0, err
	}
	return bal, nil
}

// MergeGuest records the guest id and credits amount; a second merge of the
// same guest id fails with ErrAlreadyExists.
func (r *BalanceRepo) MergeGuest(ctx context.Context, userID uuid.UUID, guestID string, amount int64) (int64, error) {
	const ins = `INSERT INTO guest_merges (guest_id, user_id, amount) VALUES ($1,$2,$3)`

	var bal int64
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, ins, guestID, userID, amount); err != nil {
			return err
		}
		if amount == 0 {
			const sel = `SELECT amount FROM balances WHERE user_id=$1`
			return tx.QueryRow(ctx, sel, userID).Scan(&bal)
		}
		return tx.QueryRow(ctx, addBalance, userID, amount).Scan(&bal)
	})
	switch {
	case isUniqueViolation(err):
		return 0, errs.ErrAlreadyExists
	case errors.Is(err, pgx.ErrNoRows):
		return 0, errs.ErrNotFound
	case err != nil:
		return 0, err
	}
	return bal, nil
}
