package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/klozestickers/credits/internal/errs"
	"github.com/klozestickers/credits/internal/model"
)

var bonusCols = []string{"last_claim_date", "streak_days", "total_claims"}

func TestBonusRepo_Get(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewBonusRepo(db)
	ctx := context.Background()
	uid := uuid.Must(uuid.NewV4())
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT last_claim_date, streak_days, total_claims FROM daily_logins WHERE user_id=\$1`).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows(bonusCols).AddRow(&day, 3, 10))
	rec, err := r.Get(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, model.DailyBonusRecord{UserID: uid, LastClaimDate: day, StreakDays: 3, TotalClaims: 10}, *rec)

	// placeholder row of a user who never claimed
	mock.ExpectQuery(`FROM daily_logins WHERE user_id=\$1`).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows(bonusCols).AddRow(nil, 0, 0))
	_, err = r.Get(ctx, uid)
	require.ErrorIs(t, err, errs.ErrNotFound)

	mock.ExpectQuery(`FROM daily_logins WHERE user_id=\$1`).
		WithArgs(uid).
		WillReturnError(pgx.ErrNoRows)
	_, err = r.Get(ctx, uid)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestBonusRepo_Claim_FirstTime(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewBonusRepo(db)
	uid := uuid.Must(uuid.NewV4())
	today := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO daily_logins .* ON CONFLICT \(user_id\) DO NOTHING`).
		WithArgs(uid).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`FROM daily_logins WHERE user_id=\$1 FOR UPDATE`).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows(bonusCols).AddRow(nil, 0, 0))
	mock.ExpectExec(`UPDATE daily_logins SET last_claim_date=\$2, streak_days=\$3, total_claims=\$4`).
		WithArgs(uid, today, 1, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectQuery(`UPDATE balances SET amount = amount \+ \$2`).
		WithArgs(uid, int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"amount"}).AddRow(int64(4)))
	mock.ExpectCommit()

	var seen *model.DailyBonusRecord
	next, bal, err := r.Claim(context.Background(), uid, func(cur *model.DailyBonusRecord) (model.DailyBonusRecord, int64, error) {
		seen = cur
		return model.DailyBonusRecord{UserID: uid, LastClaimDate: today, StreakDays: 1, TotalClaims: 1}, 1, nil
	})
	require.NoError(t, err)
	require.Nil(t, seen, "never-claimed user must be reported as nil record")
	require.Equal(t, 1, next.StreakDays)
	require.Equal(t, int64(4), bal)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBonusRepo_Claim_DecideAbortRollsBack(t *testing.T) {
	db, mock := newDB(t)
	defer mock.Close()
	r := NewBonusRepo(db)
	uid := uuid.Must(uuid.NewV4())
	today := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO daily_logins`).
		WithArgs(uid).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(uid).
		WillReturnRows(pgxmock.NewRows(bonusCols).AddRow(&today, 2, 5))
	mock.ExpectRollback()

	_, _, err := r.Claim(context.Background(), uid, func(cur *model.DailyBonusRecord) (model.DailyBonusRecord, int64, error) {
		require.NotNil(t, cur)
		require.Equal(t, today, cur.LastClaimDate)
		return model.DailyBonusRecord{}, 0, errs.ErrAlreadyClaimedToday
	})
	require.ErrorIs(t, err, errs.ErrAlreadyClaimedToday)
	require.NoError(t, mock.ExpectationsWereMet())
}
