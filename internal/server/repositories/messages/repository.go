// Package messages declares the message store contract and its PostgreSQL
// implementation. Reads return records enriched with participant profiles.
package messages

import (
	"context"

	"github.com/dmitrijs2005/messagely/internal/server/models"
)

type Repository interface {
	// Create stores a message. An unknown sender or recipient yields
	// common.ErrorNotFound.
	Create(ctx context.Context, fromUsername, toUsername, body string) (*models.NewMessage, error)

	// Get returns the enriched message or common.ErrorNotFound.
	Get(ctx context.Context, id int64) (*models.Message, error)

	// GetForUpdate is Get plus a row lock; only meaningful inside a transaction.
	GetForUpdate(ctx context.Context, id int64) (*models.Message, error)

	// MarkRead sets read_at if it is still unset and returns the stored value.
	MarkRead(ctx context.Context, id int64) (*models.ReadReceipt, error)

	// ListTo returns messages addressed to username with the sender's profile.
	ListTo(ctx context.Context, username string) ([]*models.Message, error)

	// ListFrom returns messages sent by username with the recipient's profile.
	ListFrom(ctx context.Context, username string) ([]*models.Message, error)
}
