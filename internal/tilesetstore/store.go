// Package tilesetstore defines the storage contract for loaded tileset
// summaries. The app writes one summary per successfully loaded file and the
// inspection server reads them back.
package tilesetstore

import (
	"context"

	"github.com/vk/wavetiles/internal/report"
)

// Store holds the summaries of the current run, keyed by their Path.
type Store interface {
	// Put records a summary, replacing any earlier one with the same Path.
	//
	// Thread-safety: Must be safe to call concurrently for different paths.
	Put(ctx context.Context, s report.Summary) error

	// Get returns the summary loaded from path. The boolean is false when no
	// such summary exists.
	Get(ctx context.Context, path string) (report.Summary, bool, error)

	// List returns every stored summary ordered by Path, or nil when the
	// store is empty.
	//
	// Thread-safety: Must be safe to call concurrently with Put.
	List(ctx context.Context) ([]report.Summary, error)
}
