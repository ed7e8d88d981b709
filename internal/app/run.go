package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/vk/wavetiles/internal/ctxlog"
	"github.com/vk/wavetiles/internal/fsutil"
	"github.com/vk/wavetiles/internal/loader"
	"github.com/vk/wavetiles/internal/publish"
	"github.com/vk/wavetiles/internal/report"
	"golang.org/x/sync/errgroup"
)

// ErrNoTilesets is returned when the configured paths contain no tileset files.
var ErrNoTilesets = errors.New("no tileset files found")

// Run executes the main application logic based on the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	paths, err := a.resolvePaths()
	if err != nil {
		return err
	}

	results, err := a.loadAll(ctx, paths)
	if err != nil {
		return err
	}

	summaries := make([]report.Summary, 0, len(results))
	for _, res := range results {
		s := report.Summarize(res)
		if err := a.store.Put(ctx, s); err != nil {
			return fmt.Errorf("failed to store summary of %s: %w", s.Path, err)
		}
		summaries = append(summaries, s)
	}

	if err := report.Write(a.outW, report.Format(a.config.OutputFormat), summaries); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if a.config.PublishURL != "" {
		if err := a.publish(ctx, summaries); err != nil {
			return err
		}
	}

	if a.config.ServePort > 0 {
		return a.serve(ctx)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolvePaths expands directories into the tileset files they contain.
func (a *App) resolvePaths() ([]string, error) {
	var paths []string
	for _, p := range a.config.TilesetPaths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			// Files, and paths that do not exist, are left for the loader to report.
			paths = append(paths, p)
			continue
		}
		found, err := fsutil.FindFilesByExtension(p, a.loader.Extensions()...)
		if err != nil {
			return nil, fmt.Errorf("failed to search %s: %w", p, err)
		}
		if len(found) == 0 {
			a.logger.Warn("No tileset files found in directory", "path", p)
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return nil, ErrNoTilesets
	}
	return paths, nil
}

// loadAll loads every path concurrently. Each load owns its builder, so the
// results are independent. The first fatal error cancels the rest.
func (a *App) loadAll(ctx context.Context, paths []string) ([]*loader.Result, error) {
	a.logger.Info("Loading tilesets", "count", len(paths), "workers", a.config.WorkerCount)

	results := make([]*loader.Result, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.WorkerCount)

	for i, path := range paths {
		g.Go(func() error {
			res, err := a.loader.LoadFile(gctx, path)
			if err != nil {
				return fmt.Errorf("failed to load tileset: %w", err)
			}
			results[i] = res
			a.logger.Info("Tileset loaded",
				"path", path,
				"tiles", len(res.Tileset.Tiles()),
				"orientations", res.Tileset.OrientationCount(),
				"edges", len(res.Tileset.Edges()),
				"warnings", len(res.Warnings))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (a *App) publish(ctx context.Context, summaries []report.Summary) error {
	p, err := publish.Dial(ctx, publish.Config{
		URL:       a.config.PublishURL,
		Namespace: a.config.PublishNamespace,
		AckEvent:  a.config.PublishAckEvent,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to solver: %w", err)
	}
	defer p.Close()

	for _, s := range summaries {
		if err := p.Publish(ctx, s); err != nil {
			return fmt.Errorf("failed to publish %s: %w", s.Path, err)
		}
	}
	a.logger.Info("Tilesets published", "count", len(summaries), "url", a.config.PublishURL)
	return nil
}
