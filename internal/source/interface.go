package source

import (
	"context"
	"io"
)

// EventStream yields a document's events in order.
//
// Next returns io.EOF once EndOfDocument has been delivered. Premature end of
// input is reported as ErrTruncated and malformed input as an error wrapping
// ErrSyntax; no further events follow either.
type EventStream interface {
	Next() (Event, error)
	io.Closer
}

// Opener is the interface for a format-specific tileset reader.
type Opener interface {
	// Open starts reading the tileset at path. Missing files are reported
	// with ErrNotFound, other failures with ErrIO.
	Open(ctx context.Context, path string) (EventStream, error)
}

// SliceStream is an EventStream over an already materialized event list.
// Readers that parse a whole document up front (HCL) return one; tests use it
// to feed the loader directly.
type SliceStream struct {
	events []Event
	pos    int
	// Tail is returned after the last event instead of io.EOF when set.
	Tail error
}

// NewSliceStream returns a stream over events. EndOfDocument is appended if
// the list does not already end with it.
func NewSliceStream(events ...Event) *SliceStream {
	if n := len(events); n == 0 || events[n-1].Kind != EndOfDocument {
		events = append(events, Event{Kind: EndOfDocument})
	}
	return &SliceStream{events: events}
}

// NewTruncatedStream returns a stream that reports ErrTruncated after the
// given events instead of ending cleanly.
func NewTruncatedStream(events ...Event) *SliceStream {
	return &SliceStream{events: events, Tail: ErrTruncated}
}

// Next implements EventStream.
func (s *SliceStream) Next() (Event, error) {
	if s.pos >= len(s.events) {
		if s.Tail != nil {
			return Event{}, s.Tail
		}
		return Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}

// Close implements io.Closer.
func (s *SliceStream) Close() error {
	return nil
}
