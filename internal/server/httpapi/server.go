// Package httpapi exposes the registration, login, and todo operations over
// HTTP/JSON. It is a thin adapter: request validation and token checks live
// here, all persistence contracts live in the services and repositories.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/dkovalev/todovault/internal/logging"
	"github.com/dkovalev/todovault/internal/server/services"
)

type HTTPServer struct {
	address   string
	logger    logging.Logger
	users     *services.UserService
	todos     *services.TodoService
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *services.UserService, ts *services.TodoService, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		todos:     ts,
		jwtSecret: []byte(secretKey),
	}, nil
}

// routes builds the Echo instance with all routes registered.
func (s *HTTPServer) routes() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	e.POST("/auth/register", s.handleRegister)
	e.POST("/auth/login", s.handleLogin)

	authed := e.Group("", BearerAuth(s.jwtSecret))
	authed.GET("/auth/me", s.handleMe)
	authed.POST("/todos", s.handleCreateTodo)
	authed.GET("/todos", s.handleListTodos)

	return e
}

func (s *HTTPServer) Run(ctx context.Context) error {
	e := s.routes()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := e.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
