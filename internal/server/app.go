// Package server wires the mock backend: configuration, logging, the gin
// router and the HTTP server, with graceful shutdown on SIGINT, SIGTERM and
// SIGQUIT.
package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/fitsched/internal/logging"
	"github.com/dmitrijs2005/fitsched/internal/server/config"
	"github.com/dmitrijs2005/fitsched/internal/server/rest"
	"github.com/gin-gonic/gin"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *rest.Server
}

func NewApp(c *config.Config) (*App, error) {
	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	if logging.ParseLevel(c.LogLevel) > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := rest.NewRouter(rest.RouterConfig{
		AllowedOrigin: c.AllowedOrigin,
		Logger:        logger,
	})

	return &App{
		config: c,
		logger: logger,
		server: rest.NewServer(c.Addr, router, logger),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run blocks until the server stops, either on a signal, on cancellation of
// ctx or on a listen error.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting mock backend...", "address", app.config.Addr, "allowed_origin", app.config.AllowedOrigin)

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped with error", "error", err)
		return err
	}

	app.logger.Info(ctx, "Mock backend stopped")
	return nil
}
