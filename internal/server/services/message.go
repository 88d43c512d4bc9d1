package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/repomanager"
)

// MessageService wraps the message store. It never decides who may see
// what; callers pass the outcome of an auth guard where a decision has to
// happen inside a transaction.
type MessageService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewMessageService(db *sql.DB, m repomanager.RepositoryManager) *MessageService {
	return &MessageService{db: db, repomanager: m}
}

// Get returns the enriched message or common.ErrorNotFound.
func (s *MessageService) Get(ctx context.Context, id int64) (*models.Message, error) {
	return s.repomanager.Messages(s.db).Get(ctx, id)
}

// Send stores a message from one user to another.
func (s *MessageService) Send(ctx context.Context, fromUsername, toUsername, body string) (*models.NewMessage, error) {
	if toUsername == "" || body == "" {
		return nil, common.ErrorBadRequest
	}
	m, err := s.repomanager.Messages(s.db).Create(ctx, fromUsername, toUsername, body)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating message: %w", err)
	}
	return m, nil
}

// MarkRead locks the message row, hands it to authorize (nil when the
// message does not exist) and marks it read only if authorize returns nil.
// The authorize error is returned unchanged.
func (s *MessageService) MarkRead(ctx context.Context, id int64, authorize func(*models.Message) error) (*models.ReadReceipt, error) {
	var receipt *models.ReadReceipt

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Messages(tx)

		m, err := repo.GetForUpdate(ctx, id)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error loading message: %w", err)
		}
		if err := authorize(m); err != nil {
			return err
		}

		receipt, err = repo.MarkRead(ctx, id)
		if err != nil {
			return fmt.Errorf("error marking message read: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

// ListTo returns the mailbox of username.
func (s *MessageService) ListTo(ctx context.Context, username string) ([]*models.Message, error) {
	return s.repomanager.Messages(s.db).ListTo(ctx, username)
}

// ListFrom returns the messages username has sent.
func (s *MessageService) ListFrom(ctx context.Context, username string) ([]*models.Message, error) {
	return s.repomanager.Messages(s.db).ListFrom(ctx, username)
}
