// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/klozestickers/credits/internal/model"
)

// UserRepository stores accounts. Each account owns exactly one balance row,
// created together with the user.
type UserRepository interface {
	Create(ctx context.Context, u *model.User, openingBalance int64) error
	// GetByUsername returns errs.ErrNotFound for an unknown name.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
