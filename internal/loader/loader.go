package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/wavetiles/internal/ctxlog"
	"github.com/vk/wavetiles/internal/hcl"
	"github.com/vk/wavetiles/internal/schema"
	"github.com/vk/wavetiles/internal/source"
	"github.com/vk/wavetiles/internal/tileset"
	"github.com/vk/wavetiles/internal/xmlsource"
)

// Result is a successful load. Warnings are in document order; a result
// with warnings is still a success.
type Result struct {
	Path     string
	Tileset  *tileset.Tileset
	Warnings []Warning
}

// Loader maps file extensions to source readers.
type Loader struct {
	openers map[string]source.Opener
}

// New returns a loader that reads .xml and .hcl tilesets.
func New() *Loader {
	l := &Loader{openers: make(map[string]source.Opener)}
	l.Register(".xml", xmlsource.NewOpener())
	l.Register(".hcl", hcl.NewOpener())
	return l
}

// Register sets the reader used for files ending in ext.
func (l *Loader) Register(ext string, opener source.Opener) {
	l.openers[strings.ToLower(ext)] = opener
}

// Extensions lists the registered extensions in sorted order.
func (l *Loader) Extensions() []string {
	exts := make([]string, 0, len(l.openers))
	for ext := range l.openers {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// LoadFile opens path with the reader registered for its extension and
// loads it.
func (l *Loader) LoadFile(ctx context.Context, path string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading tileset from path", "path", path)

	ext := strings.ToLower(filepath.Ext(path))
	opener, ok := l.openers[ext]
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnsupportedFormat, ext)
	}

	stream, err := opener.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	res, err := Load(ctxlog.WithLogger(ctx, logger.With("path", path)), stream)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	res.Path = path
	return res, nil
}

// Load drains stream into a new tileset. Only a fatal reader error or a
// cancelled context stops it early; every other problem becomes a warning.
func Load(ctx context.Context, stream source.EventStream) (*Result, error) {
	m := &machine{
		logger:  ctxlog.FromContext(ctx),
		builder: tileset.NewBuilder(),
		stack:   []state{stateOff},
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ev, err := stream.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, source.ErrTruncated) {
			m.warn(0, err, "Tileset input ended early, keeping what was read.")
			break
		}
		if err != nil {
			return nil, err
		}
		if ev.Kind == source.EndOfDocument {
			break
		}
		m.handle(ev)
	}

	ts := m.builder.Build()
	m.logger.Debug("Tileset loaded.",
		"tiles", len(ts.Tiles()),
		"orientations", ts.OrientationCount(),
		"edges", len(ts.Edges()),
		"warnings", len(m.warnings))
	return &Result{Tileset: ts, Warnings: m.warnings}, nil
}

// machine holds the per-load state: the element stack and the builder.
type machine struct {
	logger   *slog.Logger
	builder  *tileset.Builder
	stack    []state
	warnings []Warning
}

func (m *machine) top() state {
	return m.stack[len(m.stack)-1]
}

func (m *machine) warn(line int, err error, msg string, args ...any) {
	m.warnings = append(m.warnings, Warning{Line: line, Err: err})
	args = append(args, "line", line, "error", err)
	m.logger.Warn(msg, args...)
}

func (m *machine) handle(ev source.Event) {
	switch ev.Kind {
	case source.ElementStart:
		m.enter(ev)
	case source.ElementEnd:
		// Readers guarantee balanced elements; the bottom state is never popped.
		if len(m.stack) > 1 {
			m.stack = m.stack[:len(m.stack)-1]
		}
	}
}

func (m *machine) enter(ev source.Event) {
	parent := m.top()
	if parent == stateIgnored {
		m.stack = append(m.stack, stateIgnored)
		return
	}

	next, ok := parent.transition(ev.Name)
	m.stack = append(m.stack, next)
	if !ok {
		sentinel := ErrUnknownElement
		if schema.KnownElement(ev.Name) {
			sentinel = ErrUnexpectedElement
		}
		m.warn(ev.Line, fmt.Errorf("%w: <%s> inside %s", sentinel, ev.Name, parent), "Ignoring element.",
			"element", ev.Name)
		return
	}

	m.checkAttributes(ev)
	switch next {
	case stateTile:
		m.addTile(ev)
	case stateNeighbor:
		m.addNeighbor(ev)
	}
}
