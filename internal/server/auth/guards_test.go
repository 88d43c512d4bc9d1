package auth

import (
	"testing"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func ident(name string) *Identity { return &Identity{Username: name} }

func msg(from, to string) *models.Message {
	return &models.Message{
		ID:       1,
		FromUser: models.UserSummary{Username: from},
		ToUser:   models.UserSummary{Username: to},
		Body:     "Hello",
	}
}

func TestRequireLoggedIn(t *testing.T) {
	assert.ErrorIs(t, RequireLoggedIn(nil), common.ErrorUnauthorized)
	assert.NoError(t, RequireLoggedIn(ident("alice")))
}

func TestRequireSelf(t *testing.T) {
	tests := []struct {
		name     string
		id       *Identity
		username string
		wantErr  error
	}{
		{"same user", ident("alice"), "alice", nil},
		{"other user", ident("alice"), "bob", common.ErrorUnauthorized},
		{"case mismatch", ident("alice"), "Alice", common.ErrorUnauthorized},
		{"anonymous", nil, "alice", common.ErrorUnauthorized},
		{"anonymous empty path", nil, "", common.ErrorUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireSelf(tt.id, tt.username)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRequireParticipant(t *testing.T) {
	m := msg("alice", "bob")

	assert.NoError(t, RequireParticipant(ident("alice"), m), "sender")
	assert.NoError(t, RequireParticipant(ident("bob"), m), "recipient")
	assert.ErrorIs(t, RequireParticipant(ident("carol"), m), common.ErrorUnauthorized)
	assert.ErrorIs(t, RequireParticipant(ident("Alice"), m), common.ErrorUnauthorized)
	assert.ErrorIs(t, RequireParticipant(nil, m), common.ErrorUnauthorized)
}

func TestRequireRecipient(t *testing.T) {
	m := msg("alice", "bob")

	assert.NoError(t, RequireRecipient(ident("bob"), m))
	assert.ErrorIs(t, RequireRecipient(ident("alice"), m), common.ErrorUnauthorized, "sender may not mark read")
	assert.ErrorIs(t, RequireRecipient(ident("carol"), m), common.ErrorUnauthorized)
	assert.ErrorIs(t, RequireRecipient(nil, m), common.ErrorUnauthorized)
}

func TestRequireRecipient_SelfAddressed(t *testing.T) {
	assert.NoError(t, RequireRecipient(ident("alice"), msg("alice", "alice")))
}

func TestMessageGuards_MissingMessage(t *testing.T) {
	for name, guard := range map[string]func(*Identity, *models.Message) error{
		"participant": RequireParticipant,
		"recipient":   RequireRecipient,
	} {
		t.Run(name, func(t *testing.T) {
			err := guard(ident("alice"), nil)
			assert.ErrorIs(t, err, common.ErrorNotFound)
			assert.NotErrorIs(t, err, common.ErrorUnauthorized)

			assert.ErrorIs(t, guard(nil, nil), common.ErrorUnauthorized, "no identity beats not found")
		})
	}
}

func TestScenario_ReadVsMarkRead(t *testing.T) {
	alice := ident("alice")
	m := msg("alice", "bob")

	assert.NoError(t, RequireParticipant(alice, m))
	assert.ErrorIs(t, RequireRecipient(alice, m), common.ErrorUnauthorized)
}
