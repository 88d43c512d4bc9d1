// Package httpapi exposes the messaging API over HTTP using gin. Every
// request is authenticated fail-open; handlers then apply the auth guards
// that fit the route.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/messagely/internal/logging"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/services"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// UserService is the account surface the handlers need.
type UserService interface {
	Register(ctx context.Context, r services.Registration) (string, error)
	Login(ctx context.Context, username, password string) (string, error)
	Get(ctx context.Context, username string) (*models.User, error)
	All(ctx context.Context) ([]*models.UserSummary, error)
}

// MessageService is the message-store surface the handlers need.
type MessageService interface {
	Get(ctx context.Context, id int64) (*models.Message, error)
	Send(ctx context.Context, fromUsername, toUsername, body string) (*models.NewMessage, error)
	MarkRead(ctx context.Context, id int64, authorize func(*models.Message) error) (*models.ReadReceipt, error)
	ListTo(ctx context.Context, username string) ([]*models.Message, error)
	ListFrom(ctx context.Context, username string) ([]*models.Message, error)
}

type HTTPServer struct {
	address  string
	logger   logging.Logger
	users    UserService
	messages MessageService
	tokens   *auth.TokenService
	engine   *gin.Engine
}

func NewHTTPServer(address string, l logging.Logger, us UserService, ms MessageService, tokens *auth.TokenService) *HTTPServer {
	s := &HTTPServer{
		address:  address,
		logger:   l.With("module", "http_server"),
		users:    us,
		messages: ms,
		tokens:   tokens,
	}
	s.engine = s.newRouter()
	return s
}

// Handler returns the routed gin engine.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{Handler: s.engine, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
