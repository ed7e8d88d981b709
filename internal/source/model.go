package source

import (
	"errors"
	"fmt"
	"sort"
)

// Fatal errors. A reader returning one of these aborts the whole load.
var (
	// ErrNotFound indicates the tileset file does not exist.
	ErrNotFound = errors.New("source: tileset not found")
	// ErrIO indicates the tileset could not be opened or read.
	ErrIO = errors.New("source: i/o failure")
	// ErrSyntax indicates malformed input below the element level.
	ErrSyntax = errors.New("source: syntax error")
)

// ErrTruncated reports input that ended before the document was closed. It
// is not fatal: the loader keeps everything consumed so far.
var ErrTruncated = errors.New("source: unexpected end of input")

// EventKind discriminates Event values.
type EventKind int

const (
	// ElementStart opens an element; Name and Attrs are set.
	ElementStart EventKind = iota
	// ElementEnd closes the most recently opened element; Name is set.
	ElementEnd
	// EndOfDocument is the final event of a clean stream.
	EndOfDocument
)

func (k EventKind) String() string {
	switch k {
	case ElementStart:
		return "ElementStart"
	case ElementEnd:
		return "ElementEnd"
	case EndOfDocument:
		return "EndOfDocument"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one step of a document walk.
type Event struct {
	Kind  EventKind
	Name  string
	Attrs map[string]string
	// Line is the 1-based source line of the event, or 0 when unknown.
	Line int
}

// Start is a convenience constructor for an ElementStart event.
func Start(name string, attrs map[string]string) Event {
	return Event{Kind: ElementStart, Name: name, Attrs: attrs}
}

// End is a convenience constructor for an ElementEnd event.
func End(name string) Event {
	return Event{Kind: ElementEnd, Name: name}
}

// Attr returns the value of an attribute and whether it was present.
func (e Event) Attr(name string) (string, bool) {
	v, ok := e.Attrs[name]
	return v, ok
}

// AttrNames returns the attribute names in sorted order, so that warnings
// about them come out deterministically.
func (e Event) AttrNames() []string {
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
