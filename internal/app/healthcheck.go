package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/vk/wavetiles/internal/ctxlog"
	"github.com/vk/wavetiles/internal/report"
)

// healthHandler answers liveness probes.
func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// tilesetsHandler serves the loaded summaries. The format query parameter
// selects json (default) or yaml.
func (a *App) tilesetsHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Tilesets endpoint hit.", "remote_addr", r.RemoteAddr, "query", r.URL.RawQuery)

	name := r.URL.Query().Get("format")
	if name == "" {
		name = string(report.FormatJSON)
	}
	format, err := report.ParseFormat(name)
	if err != nil || format == report.FormatText {
		http.Error(w, "format must be json or yaml", http.StatusBadRequest)
		return
	}

	var summaries []report.Summary
	if path := r.URL.Query().Get("path"); path != "" {
		s, ok, err := a.store.Get(r.Context(), path)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !ok {
			http.NotFound(w, r)
			return
		}
		summaries = []report.Summary{s}
	} else {
		list, err := a.store.List(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		summaries = list
	}

	if format == report.FormatYAML {
		w.Header().Set("Content-Type", "application/yaml")
	} else {
		w.Header().Set("Content-Type", "application/json")
	}
	if err := report.Write(w, format, summaries); err != nil {
		a.logger.Error("Failed to write tilesets response", "error", err)
	}
}

func (a *App) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", a.healthHandler)
	mux.HandleFunc("/tilesets", a.tilesetsHandler)
	return mux
}

// serve runs the inspection server until ctx is cancelled.
func (a *App) serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	addr := fmt.Sprintf(":%d", a.config.ServePort)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	a.httpServer = &http.Server{Handler: a.routes()}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Inspection server starting", "address", fmt.Sprintf("http://localhost%s/tilesets", addr))
		// Serve returns http.ErrServerClosed on graceful shutdown.
		if err := a.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("inspection server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	return a.closeServer()
}

func (a *App) closeServer() error {
	if a.httpServer == nil {
		a.logger.Debug("Inspection server was not running.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	a.logger.Info("Shutting down inspection server...")
	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.logger.Error("Inspection server shutdown failed", "error", err)
		return err
	}
	a.logger.Debug("Inspection server shut down gracefully.")
	return nil
}
