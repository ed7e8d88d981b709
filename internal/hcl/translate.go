package hcl

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/vk/wavetiles/internal/ctxlog"
	"github.com/vk/wavetiles/internal/schema"
	"github.com/vk/wavetiles/internal/source"
)

// translateFile wraps the top-level body in the implicit set element and
// walks it depth first. Blocks keep their document order.
func translateFile(ctx context.Context, body *hclsyntax.Body) ([]source.Event, error) {
	attrs, err := extractBodyAttributes(body.Attributes)
	if err != nil {
		return nil, err
	}

	root := source.Start(schema.ElementSet, attrs)
	root.Line = body.SrcRange.Start.Line
	events := []source.Event{root}

	for _, block := range body.Blocks {
		events, err = translateBlock(ctx, events, block)
		if err != nil {
			return nil, err
		}
	}

	end := source.End(schema.ElementSet)
	end.Line = body.SrcRange.End.Line
	return append(events, end), nil
}

// translateBlock appends the start event of a block, the events of its
// nested blocks and the matching end event.
func translateBlock(ctx context.Context, events []source.Event, block *hclsyntax.Block) ([]source.Event, error) {
	attrs, err := extractBodyAttributes(block.Body.Attributes)
	if err != nil {
		return nil, err
	}

	if len(block.Labels) > 0 {
		if _, exists := attrs[schema.AttrName]; exists {
			return nil, fmt.Errorf("%s: %w: block %q sets %q both as label and attribute",
				block.TypeRange.String(), source.ErrSyntax, block.Type, schema.AttrName)
		}
		attrs[schema.AttrName] = block.Labels[0]
		if len(block.Labels) > 1 {
			ctxlog.FromContext(ctx).Debug("Ignoring extra block labels.",
				"block", block.Type, "labels", block.Labels[1:], "line", block.TypeRange.Start.Line)
		}
	}

	start := source.Start(block.Type, attrs)
	start.Line = block.TypeRange.Start.Line
	events = append(events, start)

	for _, child := range block.Body.Blocks {
		events, err = translateBlock(ctx, events, child)
		if err != nil {
			return nil, err
		}
	}

	end := source.End(block.Type)
	end.Line = block.CloseBraceRange.Start.Line
	return append(events, end), nil
}

// extractBodyAttributes evaluates every attribute of a body into its string
// form. Null values are treated as absent.
func extractBodyAttributes(attributes hclsyntax.Attributes) (map[string]string, error) {
	names := make([]string, 0, len(attributes))
	for name := range attributes {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(map[string]string, len(attributes))
	for _, name := range names {
		attr := attributes[name]
		val, present, err := attributeString(attr.Expr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w: attribute %q: %w", attr.SrcRange.String(), source.ErrSyntax, name, err)
		}
		if present {
			out[name] = val
		}
	}
	return out, nil
}

