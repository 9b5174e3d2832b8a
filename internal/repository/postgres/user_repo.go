package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/model"
)

const (
	sqlInsertUser = `
INSERT INTO users (id, username, pwd_hash, salt_auth)
VALUES ($1, $2, $3, $4)`
	sqlInsertOpeningBalance = `INSERT INTO balances (user_id, amount) VALUES ($1, $2)`
	sqlUserByName           = `
SELECT id, username, pwd_hash, salt_auth, created_at
FROM users WHERE username=$1`
)

// UserRepo stores accounts in the users table.
type UserRepo struct{ db *DB }

func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts the user and its balance row atomically. A taken username
// yields errs.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *model.User, openingBalance int64) error {
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, sqlInsertUser, u.ID, u.Username, u.PwdHash, u.SaltAuth); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, sqlInsertOpeningBalance, u.ID, openingBalance)
		return err
	})
	if isUniqueViolation(err) {
		return errs.ErrAlreadyExists
	}
	return err
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.Pool.QueryRow(ctx, sqlUserByName, username).
		Scan(&u.ID, &u.Username, &u.PwdHash, &u.SaltAuth, &u.CreatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return nil, errs.ErrNotFound
	case err != nil:
		return nil, err
	}
	return &u, nil
}
