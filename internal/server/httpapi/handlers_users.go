package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) listUsers(c *gin.Context) {
	ctx := c.Request.Context()
	if err := auth.RequireLoggedIn(auth.IdentityFromContext(ctx)); err != nil {
		s.fail(c, err)
		return
	}

	all, err := s.users.All(ctx)
	if err != nil {
		s.fail(c, err)
		return
	}

	out := make([]userListItem, 0, len(all))
	for _, u := range all {
		out = append(out, userListItem{Username: u.Username, FirstName: u.FirstName, LastName: u.LastName})
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

func (s *HTTPServer) getUser(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")
	if err := auth.RequireSelf(auth.IdentityFromContext(ctx), username); err != nil {
		s.fail(c, err)
		return
	}

	u, err := s.users.Get(ctx, username)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUser(u)})
}

func (s *HTTPServer) messagesTo(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")
	if err := auth.RequireSelf(auth.IdentityFromContext(ctx), username); err != nil {
		s.fail(c, err)
		return
	}

	list, err := s.messages.ListTo(ctx, username)
	if err != nil {
		s.fail(c, err)
		return
	}

	out := make([]messageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMessage(m, true, false))
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}

func (s *HTTPServer) messagesFrom(c *gin.Context) {
	ctx := c.Request.Context()
	username := c.Param("username")
	if err := auth.RequireSelf(auth.IdentityFromContext(ctx), username); err != nil {
		s.fail(c, err)
		return
	}

	list, err := s.messages.ListFrom(ctx, username)
	if err != nil {
		s.fail(c, err)
		return
	}

	out := make([]messageResponse, 0, len(list))
	for _, m := range list {
		out = append(out, toMessage(m, false, true))
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}
