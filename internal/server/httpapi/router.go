package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *HTTPServer) newRouter() *gin.Engine {
	r := gin.New()

	// Order matters: the identity has to be attached before any handler
	// evaluates a guard.
	r.Use(gin.Recovery())
	r.Use(requestLogger(s.logger))
	r.Use(authenticate(s.tokens))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", s.register)
		authGroup.POST("/login", s.login)
	}

	usersGroup := r.Group("/users")
	{
		usersGroup.GET("", s.listUsers)
		usersGroup.GET("/:username", s.getUser)
		usersGroup.GET("/:username/to", s.messagesTo)
		usersGroup.GET("/:username/from", s.messagesFrom)
	}

	messagesGroup := r.Group("/messages")
	{
		messagesGroup.POST("", s.sendMessage)
		messagesGroup.GET("/:id", s.getMessage)
		messagesGroup.POST("/:id/read", s.markRead)
	}

	return r
}
