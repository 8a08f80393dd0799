// Package http exposes the account service over an HTTP/JSON API:
// registration, login, and token-guarded identity lookup.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/accountd/internal/logging"
	"github.com/dmitrijs2005/accountd/internal/server/models"
)

// AccountService is the business-logic surface the HTTP layer depends on.
type AccountService interface {
	Register(ctx context.Context, username, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetByID(ctx context.Context, id string) (*models.Account, error)
}

type Server struct {
	address   string
	accounts  AccountService
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, as AccountService, secretKey string) (*Server, error) {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		accounts:  as,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.GET("/ping", s.pingHandler)

	users := api.Group("/users")
	users.POST("/register", s.registerHandler)
	users.POST("/login", s.loginHandler)

	protected := users.Group("")
	protected.Use(s.authMiddleware())
	protected.GET("/me", s.meHandler)

	return r
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Router(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
