package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/gin-gonic/gin"
)

// messageID parses :id. A malformed id can never match a stored message, so
// it is reported as ok=false and treated like a miss.
func messageID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (s *HTTPServer) getMessage(c *gin.Context) {
	ctx := c.Request.Context()
	ident := auth.IdentityFromContext(ctx)

	var m *models.Message
	if id, ok := messageID(c); ok && ident != nil {
		var err error
		m, err = s.messages.Get(ctx, id)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			s.fail(c, err)
			return
		}
	}

	if err := auth.RequireParticipant(ident, m); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": toMessage(m, true, true)})
}

func (s *HTTPServer) sendMessage(c *gin.Context) {
	ctx := c.Request.Context()
	ident := auth.IdentityFromContext(ctx)
	if err := auth.RequireLoggedIn(ident); err != nil {
		s.fail(c, err)
		return
	}

	var req sendMessageRequest
	if err := bindBody(c, &req); err != nil {
		s.fail(c, err)
		return
	}

	// The sender is always the caller; any from_username in the body is ignored.
	m, err := s.messages.Send(ctx, ident.Username, req.ToUsername, req.Body)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": newMessageResponse{
		ID:           m.ID,
		FromUsername: m.FromUsername,
		ToUsername:   m.ToUsername,
		Body:         m.Body,
		SentAt:       m.SentAt,
	}})
}

func (s *HTTPServer) markRead(c *gin.Context) {
	ctx := c.Request.Context()
	ident := auth.IdentityFromContext(ctx)
	if err := auth.RequireLoggedIn(ident); err != nil {
		s.fail(c, err)
		return
	}

	id, ok := messageID(c)
	if !ok {
		s.fail(c, common.ErrorNotFound)
		return
	}

	receipt, err := s.messages.MarkRead(ctx, id, func(m *models.Message) error {
		return auth.RequireRecipient(ident, m)
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": readReceiptResponse{ID: receipt.ID, ReadAt: receipt.ReadAt}})
}
