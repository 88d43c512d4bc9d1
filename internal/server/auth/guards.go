package auth

import (
	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/models"
)

// The guards below are pure predicates. A nil identity fails every one of
// them with common.ErrorUnauthorized before anything else is inspected.
// Message guards take the message as returned by the store; nil means the
// store did not find it and yields common.ErrorNotFound.

// RequireLoggedIn passes when an identity is attached.
func RequireLoggedIn(id *Identity) error {
	if id == nil {
		return common.ErrorUnauthorized
	}
	return nil
}

// RequireSelf passes when the identity is exactly username.
func RequireSelf(id *Identity, username string) error {
	if id == nil || id.Username != username {
		return common.ErrorUnauthorized
	}
	return nil
}

// RequireParticipant passes for the sender or the recipient of m.
func RequireParticipant(id *Identity, m *models.Message) error {
	if id == nil {
		return common.ErrorUnauthorized
	}
	if m == nil {
		return common.ErrorNotFound
	}
	if id.Username != m.FromUser.Username && id.Username != m.ToUser.Username {
		return common.ErrorUnauthorized
	}
	return nil
}

// RequireRecipient passes only for the recipient of m. The sender is
// rejected like any other stranger.
func RequireRecipient(id *Identity, m *models.Message) error {
	if id == nil {
		return common.ErrorUnauthorized
	}
	if m == nil {
		return common.ErrorNotFound
	}
	if id.Username != m.ToUser.Username {
		return common.ErrorUnauthorized
	}
	return nil
}
