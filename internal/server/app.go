// Package server initializes and runs the main application server. It opens
// the shared database handle, wires repositories and services, handles
// graceful shutdown, and starts the HTTP server.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dkovalev/todovault/internal/logging"
	"github.com/dkovalev/todovault/internal/server/config"
	"github.com/dkovalev/todovault/internal/server/httpapi"
	"github.com/dkovalev/todovault/internal/server/repositories/repomanager"
	"github.com/dkovalev/todovault/internal/server/services"
	"github.com/dkovalev/todovault/internal/server/storage"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	userService *services.UserService
	todoService *services.TodoService
}

func NewApp(cfg *config.Config) (*App, error) {
	handler := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(cfg.LogLevel),
	}))
	logger := logging.NewSlogLogger(handler)

	// one provisioned handle per process; repeated calls reuse it
	store, err := storage.Default(context.Background(), cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewSQLiteRepositoryManager()
	us := services.NewUserService(store.DB(), m, cfg)
	ts := services.NewTodoService(store.DB(), m)

	return &App{config: cfg, logger: logger, userService: us, todoService: ts}, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s, err := httpapi.NewHTTPServer(app.config.EndpointAddr, app.logger,
		app.userService, app.todoService, app.config.SecretKey)
	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
