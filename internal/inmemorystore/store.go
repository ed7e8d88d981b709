package inmemorystore

import (
	"context"
	"sort"
	"sync"

	"github.com/vk/wavetiles/internal/report"
	"github.com/vk/wavetiles/internal/tilesetstore"
)

// Store is an in-memory implementation of tilesetstore.Store. Each load
// writes its own key, so concurrent loads never contend on a shared lock.
type Store struct {
	summaries sync.Map // Key: path string, Value: report.Summary
}

// New creates a new, empty in-memory summary store.
func New() tilesetstore.Store {
	return &Store{}
}

// Put records a summary under its Path.
func (s *Store) Put(ctx context.Context, summary report.Summary) error {
	s.summaries.Store(summary.Path, summary)
	return nil
}

// Get retrieves the summary loaded from path.
func (s *Store) Get(ctx context.Context, path string) (report.Summary, bool, error) {
	v, ok := s.summaries.Load(path)
	if !ok {
		return report.Summary{}, false, nil
	}
	return v.(report.Summary), true, nil
}

// List returns all summaries ordered by Path.
func (s *Store) List(ctx context.Context) ([]report.Summary, error) {
	var out []report.Summary
	s.summaries.Range(func(_, v any) bool {
		out = append(out, v.(report.Summary))
		return true
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
