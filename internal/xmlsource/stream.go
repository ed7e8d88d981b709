package xmlsource

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/vk/wavetiles/internal/ctxlog"
	"github.com/vk/wavetiles/internal/source"
)

// Opener is the XML-specific implementation of the source.Opener interface.
type Opener struct{}

// NewOpener creates a new XML tileset opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the file at path and returns a lazily decoded event stream.
func (o *Opener) Open(ctx context.Context, path string) (source.EventStream, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Opening XML tileset.", "path", path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, source.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %w", path, source.ErrIO, err)
	}
	return NewStream(f), nil
}

// Stream adapts an encoding/xml decoder to source.EventStream.
type Stream struct {
	dec    *xml.Decoder
	closer io.Closer
	done   bool
}

// NewStream reads XML from r. If r is an io.Closer it is closed by Close.
func NewStream(r io.Reader) *Stream {
	s := &Stream{dec: xml.NewDecoder(r)}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Next implements source.EventStream. Character data, comments, processing
// instructions and directives are skipped.
func (s *Stream) Next() (source.Event, error) {
	if s.done {
		return source.Event{}, io.EOF
	}
	for {
		line, _ := s.dec.InputPos()
		tok, err := s.dec.Token()
		if err != nil {
			s.done = true
			if errors.Is(err, io.EOF) {
				return source.Event{Kind: source.EndOfDocument, Line: line}, nil
			}
			return source.Event{}, classify(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			attrs := make(map[string]string, len(t.Attr))
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				attrs[a.Name.Local] = a.Value
			}
			return source.Event{Kind: source.ElementStart, Name: t.Name.Local, Attrs: attrs, Line: line}, nil
		case xml.EndElement:
			return source.Event{Kind: source.ElementEnd, Name: t.Name.Local, Line: line}, nil
		}
	}
}

// Close implements io.Closer.
func (s *Stream) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// classify maps decoder errors onto the source error set.
func classify(err error) error {
	var syntaxErr *xml.SyntaxError
	if errors.As(err, &syntaxErr) {
		if syntaxErr.Msg == "unexpected EOF" {
			return fmt.Errorf("line %d: %w", syntaxErr.Line, source.ErrTruncated)
		}
		return fmt.Errorf("line %d: %w: %s", syntaxErr.Line, source.ErrSyntax, syntaxErr.Msg)
	}
	return fmt.Errorf("%w: %w", source.ErrIO, err)
}
