package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/messagely/internal/dbx"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/messages"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/users"
)

type errBoom struct{}

func (errBoom) Error() string { return "boom" }

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	m *fakeMessagesRepo
}

func (f *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (f *fakeRepoManager) Users(dbx.DBTX) users.Repository             { return f.u }
func (f *fakeRepoManager) Messages(dbx.DBTX) messages.Repository       { return f.m }

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	getOut *models.User
	getErr error

	touched  []string
	touchErr error

	allOut []*models.UserSummary
	allErr error
}

func (f *fakeUsersRepo) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByUsername(context.Context, string) (*models.User, error) {
	return f.getOut, f.getErr
}

func (f *fakeUsersRepo) UpdateLoginTimestamp(_ context.Context, username string) error {
	f.touched = append(f.touched, username)
	return f.touchErr
}

func (f *fakeUsersRepo) All(context.Context) ([]*models.UserSummary, error) {
	return f.allOut, f.allErr
}

type fakeMessagesRepo struct {
	createArgs []string
	createOut  *models.NewMessage
	createErr  error

	getOut *models.Message
	getErr error

	lockedIDs []int64

	marked  []int64
	markOut *models.ReadReceipt
	markErr error

	listOut []*models.Message
	listErr error
}

func (f *fakeMessagesRepo) Create(_ context.Context, from, to, body string) (*models.NewMessage, error) {
	f.createArgs = []string{from, to, body}
	return f.createOut, f.createErr
}

func (f *fakeMessagesRepo) Get(context.Context, int64) (*models.Message, error) {
	return f.getOut, f.getErr
}

func (f *fakeMessagesRepo) GetForUpdate(_ context.Context, id int64) (*models.Message, error) {
	f.lockedIDs = append(f.lockedIDs, id)
	return f.getOut, f.getErr
}

func (f *fakeMessagesRepo) MarkRead(_ context.Context, id int64) (*models.ReadReceipt, error) {
	f.marked = append(f.marked, id)
	return f.markOut, f.markErr
}

func (f *fakeMessagesRepo) ListTo(context.Context, string) ([]*models.Message, error) {
	return f.listOut, f.listErr
}

func (f *fakeMessagesRepo) ListFrom(context.Context, string) ([]*models.Message, error) {
	return f.listOut, f.listErr
}
