package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/klozestickers/credits/internal/model"
)

// ClaimFunc decides a claim given the locked current record (nil if the user never claimed).
// It returns the record to persist and the credits to grant, or an error to abort.
type ClaimFunc func(cur *model.DailyBonusRecord) (next model.DailyBonusRecord, grant int64, err error)

// BonusRepository stores daily bonus records.
type BonusRepository interface {
	// Get loads the record; ErrNotFound if the user never claimed.
	Get(ctx context.Context, userID uuid.UUID) (*model.DailyBonusRecord, error)
	// Claim locks the record, applies decide and grants credits in one transaction.
	Claim(ctx context.Context, userID uuid.UUID, decide ClaimFunc) (model.DailyBonusRecord, int64, error)
}
