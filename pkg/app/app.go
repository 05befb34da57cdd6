package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/leminhohoho/movie-lens/api/pkg/config"
	"github.com/leminhohoho/movie-lens/api/pkg/handlers"
	"github.com/leminhohoho/movie-lens/api/pkg/logger"
	"github.com/leminhohoho/movie-lens/api/pkg/metrics"
	"github.com/leminhohoho/movie-lens/api/pkg/store"
)

type App struct {
	Config config.AppConfig
	Logger *slog.Logger
	Store  *store.Store
	Server *http.Server

	ErrChan chan error
}

func NewApp(cfg config.AppConfig) (*App, error) {
	var err error

	app := &App{
		Config:  cfg,
		ErrChan: make(chan error, 1),
	}

	app.Logger, err = logger.NewLogger(cfg)
	if err != nil {
		return nil, err
	}

	app.Store, err = store.Open(cfg.DBConfig, app.Logger, cfg.Debug)
	if err != nil {
		return nil, err
	}

	app.Server = &http.Server{
		Addr:    cfg.ServerConfig.Addr(),
		Handler: handlers.NewRouter(app.Store, app.Logger, metrics.New()),
	}

	return app, nil
}

// Run serves HTTP until the server fails or the process receives SIGINT or
// SIGTERM, then shuts the server down gracefully.
func (a *App) Run() error {
	a.Logger.Debug(
		"api info",
		"addr", a.Server.Addr,
		"db_driver", a.Config.Driver,
		"db_path", a.Config.DbPath,
		"debug", a.Config.Debug,
		"silent", a.Config.Silent,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		a.Logger.Info("listening", "addr", a.Server.Addr)
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.ErrChan <- err
		}
	}()

	select {
	case err := <-a.ErrChan:
		a.Logger.Error(err.Error())
		return err
	case <-ctx.Done():
		a.Logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Config.ShutdownTimeout)
	defer cancel()

	return a.Server.Shutdown(shutdownCtx)
}

func (a *App) Close() {
	if err := a.Store.Close(); err != nil {
		a.Logger.Error("close store", "err", err)
	}
}
