package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/messagely/internal/server/services"
	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) register(c *gin.Context) {
	var req registerRequest
	if err := bindBody(c, &req); err != nil {
		s.fail(c, err)
		return
	}

	token, err := s.users.Register(c.Request.Context(), services.Registration{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{Token: token})
}

func (s *HTTPServer) login(c *gin.Context) {
	var req loginRequest
	if err := bindBody(c, &req); err != nil {
		s.fail(c, err)
		return
	}

	token, err := s.users.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{Token: token})
}
