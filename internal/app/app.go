package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/wavetiles/internal/inmemorystore"
	"github.com/vk/wavetiles/internal/loader"
	"github.com/vk/wavetiles/internal/report"
	"github.com/vk/wavetiles/internal/tilesetstore"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader *loader.Loader
	store  tilesetstore.Store

	httpServer *http.Server
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW, through an isolated logger.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader.New(),
		store:  inmemorystore.New(),
	}
}

// Summaries returns the summaries of the last successful run, ordered by
// path.
func (a *App) Summaries() []report.Summary {
	list, _ := a.store.List(context.Background())
	return list
}
