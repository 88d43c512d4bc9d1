package messages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const foreignKeyViolation = "23503"

const selectEnriched = `SELECT m.id, m.body, m.sent_at, m.read_at,
		f.username, f.first_name, f.last_name, f.phone,
		t.username, t.first_name, t.last_name, t.phone
	FROM messages AS m
	JOIN users AS f ON f.username = m.from_username
	JOIN users AS t ON t.username = m.to_username`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, fromUsername, toUsername, body string) (*models.NewMessage, error) {
	query :=
		`INSERT INTO messages (from_username, to_username, body, sent_at)
		 VALUES ($1, $2, $3, current_timestamp)
		 RETURNING id, from_username, to_username, body, sent_at`

	m := &models.NewMessage{}
	err := r.db.QueryRowContext(ctx, query, fromUsername, toUsername, body).Scan(
		&m.ID, &m.FromUsername, &m.ToUsername, &m.Body, &m.SentAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return m, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Message, error) {
	return r.get(ctx, selectEnriched+` WHERE m.id = $1`, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id int64) (*models.Message, error) {
	return r.get(ctx, selectEnriched+` WHERE m.id = $1 FOR UPDATE OF m`, id)
}

func (r *PostgresRepository) get(ctx context.Context, query string, id int64) (*models.Message, error) {
	m, err := scanEnriched(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) MarkRead(ctx context.Context, id int64) (*models.ReadReceipt, error) {
	query :=
		`UPDATE messages
		 SET read_at = COALESCE(read_at, current_timestamp)
		 WHERE id = $1
		 RETURNING id, read_at`

	rr := &models.ReadReceipt{}
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&rr.ID, &rr.ReadAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return rr, nil
}

func (r *PostgresRepository) ListTo(ctx context.Context, username string) ([]*models.Message, error) {
	return r.list(ctx, selectEnriched+` WHERE m.to_username = $1 ORDER BY m.sent_at, m.id`, username)
}

func (r *PostgresRepository) ListFrom(ctx context.Context, username string) ([]*models.Message, error) {
	return r.list(ctx, selectEnriched+` WHERE m.from_username = $1 ORDER BY m.sent_at, m.id`, username)
}

func (r *PostgresRepository) list(ctx context.Context, query string, username string) ([]*models.Message, error) {
	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Message, 0)
	for rows.Next() {
		m, err := scanEnriched(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEnriched(row scanner) (*models.Message, error) {
	m := &models.Message{}
	err := row.Scan(&m.ID, &m.Body, &m.SentAt, &m.ReadAt,
		&m.FromUser.Username, &m.FromUser.FirstName, &m.FromUser.LastName, &m.FromUser.Phone,
		&m.ToUser.Username, &m.ToUser.FirstName, &m.ToUser.LastName, &m.ToUser.Phone)
	if err != nil {
		return nil, err
	}
	return m, nil
}
