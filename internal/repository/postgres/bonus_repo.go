package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/model"
	"github.com/klozestickers/credits/internal/repository"
)

// BonusRepo implements BonusRepository using PostgreSQL.
type BonusRepo struct{ db *DB }

// NewBonusRepo constructs a daily bonus repository.
func NewBonusRepo(db *DB) *BonusRepo { return &BonusRepo{db: db} }

// Get loads a user's daily bonus record.
func (r *BonusRepo) Get(ctx context.Context, userID uuid.UUID) (*model.DailyBonusRecord, error) {
	const q = `
SELECT last_claim_date, streak_days, total_claims
FROM daily_logins WHERE user_id=$1`
	rec, err := scanBonus(r.db.Pool.QueryRow(ctx, q, userID), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	if rec == nil {
		return nil, errs.ErrNotFound
	}
	return rec, nil
}

// Claim runs decide against the locked record, then stores the new record and
// grants credits in the same transaction. The placeholder row makes the lock
// effective for first-time claimers as well.
func (r *BonusRepo) Claim(ctx context.Context, userID uuid.UUID, decide repository.ClaimFunc) (model.DailyBonusRecord, int64, error) {
	const ensure = `
INSERT INTO daily_logins (user_id, last_claim_date, streak_days, total_claims)
VALUES ($1, NULL, 0, 0)
ON CONFLICT (user_id) DO NOTHING`
	const lock = `
SELECT last_claim_date, streak_days, total_claims
FROM daily_logins WHERE user_id=$1 FOR UPDATE`
	const upd = `
UPDATE daily_logins
SET last_claim_date=$2, streak_days=$3, total_claims=$4, updated_at=now()
WHERE user_id=$1`

	var (
		next model.DailyBonusRecord
		bal  int64
	)
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, ensure, userID); err != nil {
			return err
		}
		cur, err := scanBonus(tx.QueryRow(ctx, lock, userID), userID)
		if err != nil {
			return err
		}
		var grant int64
		next, grant, err = decide(cur)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx, upd, userID, next.LastClaimDate, next.StreakDays, next.TotalClaims); err != nil {
			return err
		}
		if grant <= 0 {
			const sel = `SELECT amount FROM balances WHERE user_id=$1`
			return tx.QueryRow(ctx, sel, userID).Scan(&bal)
		}
		return tx.QueryRow(ctx, addBalance, userID, grant).Scan(&bal)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.DailyBonusRecord{}, 0, errs.ErrNotFound
		}
		return model.DailyBonusRecord{}, 0, err
	}
	return next, bal, nil
}

// scanBonus returns nil when the row is the never-claimed placeholder.
func scanBonus(row pgx.Row, userID uuid.UUID) (*model.DailyBonusRecord, error) {
	var (
		last   *time.Time
		streak int
		total  int
	)
	if err := row.Scan(&last, &streak, &total); err != nil {
		return nil, err
	}
	if last == nil {
		return nil, nil
	}
	return &model.DailyBonusRecord{
		UserID:        userID,
		LastClaimDate: *last,
		StreakDays:    streak,
		TotalClaims:   total,
	}, nil
}
