package httpapi

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/services"
)

var sentAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeStore backs both service fakes with in-memory users and messages.
type fakeStore struct {
	mu       sync.Mutex
	users    map[string]*models.User
	messages map[int64]*models.Message
	nextID   int64
	tokens   interface {
		issue(string) string
	}
}

type fakeUsers struct{ st *fakeStore }

type fakeMessages struct{ st *fakeStore }

func summary(u *models.User) models.UserSummary {
	return models.UserSummary{Username: u.Username, FirstName: u.FirstName, LastName: u.LastName, Phone: u.Phone}
}

func (f fakeUsers) Register(_ context.Context, r services.Registration) (string, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if _, ok := f.st.users[r.Username]; ok {
		return "", common.ErrorAlreadyExists
	}
	f.st.users[r.Username] = &models.User{
		Username: r.Username, Password: r.Password, FirstName: r.FirstName, LastName: r.LastName, Phone: r.Phone, JoinAt: sentAt,
	}
	return f.st.tokens.issue(r.Username), nil
}

func (f fakeUsers) Login(_ context.Context, username, password string) (string, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	u, ok := f.st.users[username]
	if !ok || u.Password != password {
		return "", common.ErrorUnauthorized
	}
	return f.st.tokens.issue(username), nil
}

func (f fakeUsers) Get(_ context.Context, username string) (*models.User, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	u, ok := f.st.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeUsers) All(context.Context) ([]*models.UserSummary, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var out []*models.UserSummary
	for _, u := range f.st.users {
		s := summary(u)
		out = append(out, &s)
	}
	return out, nil
}

func (f fakeMessages) Get(_ context.Context, id int64) (*models.Message, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	m, ok := f.st.messages[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *m
	return &cp, nil
}

func (f fakeMessages) Send(_ context.Context, from, to, body string) (*models.NewMessage, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	fu, ok1 := f.st.users[from]
	tu, ok2 := f.st.users[to]
	if !ok1 || !ok2 {
		return nil, common.ErrorNotFound
	}
	f.st.nextID++
	m := &models.Message{ID: f.st.nextID, FromUser: summary(fu), ToUser: summary(tu), Body: body, SentAt: sentAt}
	f.st.messages[m.ID] = m
	return &models.NewMessage{ID: m.ID, FromUsername: from, ToUsername: to, Body: body, SentAt: sentAt}, nil
}

func (f fakeMessages) MarkRead(_ context.Context, id int64, authorize func(*models.Message) error) (*models.ReadReceipt, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	m := f.st.messages[id]
	if err := authorize(m); err != nil {
		return nil, err
	}
	if m.ReadAt == nil {
		at := sentAt.Add(time.Hour)
		m.ReadAt = &at
	}
	return &models.ReadReceipt{ID: id, ReadAt: *m.ReadAt}, nil
}

func (f fakeMessages) ListTo(_ context.Context, username string) ([]*models.Message, error) {
	return f.list(func(m *models.Message) bool { return m.ToUser.Username == username })
}

func (f fakeMessages) ListFrom(_ context.Context, username string) ([]*models.Message, error) {
	return f.list(func(m *models.Message) bool { return m.FromUser.Username == username })
}

func (f fakeMessages) list(match func(*models.Message) bool) ([]*models.Message, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var out []*models.Message
	for id := int64(1); id <= f.st.nextID; id++ {
		if m, ok := f.st.messages[id]; ok && match(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}
