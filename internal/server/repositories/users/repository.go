// Package users declares the credential store contract and its PostgreSQL
// implementation.
package users

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// Repository persists user records. Lookups of absent users return
// common.ErrorNotFound; inserting a taken username returns
// common.ErrorAlreadyExists.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLoginTimestamp(ctx context.Context, username string) error
	All(ctx context.Context) ([]*models.UserSummary, error)
}
