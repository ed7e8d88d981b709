package hcl

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/wavetiles/internal/ctxlog"
	"github.com/vk/wavetiles/internal/source"
)

// Opener is the HCL-specific implementation of the source.Opener interface.
type Opener struct{}

// NewOpener creates a new HCL tileset opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open reads and parses the whole file, then returns a stream over the
// translated events.
func (o *Opener) Open(ctx context.Context, path string) (source.EventStream, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Opening HCL tileset.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", path, source.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: %w: %w", path, source.ErrIO, err)
	}

	events, err := Parse(ctx, src, path)
	if err != nil {
		return nil, err
	}
	logger.Debug("HCL tileset translated.", "path", path, "events", len(events))
	return source.NewSliceStream(events...), nil
}

// Parse translates HCL source into element events. filename is only used in
// diagnostics.
func Parse(ctx context.Context, src []byte, filename string) ([]source.Event, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w: %w", filename, source.ErrSyntax, diags)
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%s: %w: unexpected body type %T", filename, source.ErrSyntax, file.Body)
	}
	return translateFile(ctx, body)
}
