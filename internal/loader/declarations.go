package loader

import (
	"fmt"
	"strings"

	"github.com/vk/wavetiles/internal/schema"
	"github.com/vk/wavetiles/internal/source"
	"github.com/vk/wavetiles/internal/symmetry"
	"github.com/vk/wavetiles/internal/tileset"
)

// checkAttributes warns about attributes the element does not accept. The
// declaration itself is still processed.
func (m *machine) checkAttributes(ev source.Event) {
	for _, attr := range ev.AttrNames() {
		if schema.KnownAttribute(ev.Name, attr) {
			continue
		}
		m.warn(ev.Line, fmt.Errorf("%w: %q on <%s>", ErrUnknownAttribute, attr, ev.Name), "Ignoring attribute.",
			"element", ev.Name, "attribute", attr)
	}
}

// required returns a trimmed attribute value, or an ErrMissingAttribute
// error when it is absent or blank.
func required(ev source.Event, attr string) (string, error) {
	v, _ := ev.Attr(attr)
	v = strings.TrimSpace(v)
	if v == "" {
		return "", fmt.Errorf("<%s> attribute %q: %w", ev.Name, attr, tileset.ErrMissingAttribute)
	}
	return v, nil
}

func (m *machine) addTile(ev source.Event) {
	const skipped = "Skipping tile declaration."

	name, err := required(ev, schema.AttrName)
	if err != nil {
		m.warn(ev.Line, err, skipped)
		return
	}
	tag, err := required(ev, schema.AttrSymmetry)
	if err != nil {
		m.warn(ev.Line, err, skipped, "tile", name)
		return
	}
	raw, _ := ev.Attr(schema.AttrWeight)
	weight, err := tileset.ParseWeight(raw)
	if err != nil {
		m.warn(ev.Line, fmt.Errorf("tile %q %w", name, err), skipped, "tile", name)
		return
	}

	class, ok := symmetry.Parse(tag)
	if !ok {
		m.warn(ev.Line, fmt.Errorf("tile %q symmetry %q, using %s: %w", name, tag, symmetry.X, tileset.ErrUnknownSymmetry),
			"Unknown symmetry class, falling back.", "tile", name, "symmetry", tag)
	}

	entry, err := m.builder.AddTile(name, class, weight)
	if err != nil {
		m.warn(ev.Line, err, skipped, "tile", name)
		return
	}
	m.logger.Debug("Registered tile.",
		"tile", name, "symmetry", class, "offset", entry.Offset, "cardinality", entry.Cardinality)
}

func (m *machine) addNeighbor(ev source.Event) {
	const skipped = "Skipping neighbor declaration."

	left, err := required(ev, schema.AttrLeft)
	if err != nil {
		m.warn(ev.Line, err, skipped)
		return
	}
	right, err := required(ev, schema.AttrRight)
	if err != nil {
		m.warn(ev.Line, err, skipped, "left", left)
		return
	}

	edges, err := m.builder.AddNeighbor(left, right)
	if err != nil {
		m.warn(ev.Line, err, skipped, "left", left, "right", right)
		return
	}
	m.logger.Debug("Registered neighbor.", "left", left, "right", right, "edges", edges)
}
