package tileset

import (
	"fmt"
	"maps"
	"slices"

	"github.com/vk/wavetiles/internal/symmetry"
)

// Builder aggregates tile and neighbor declarations into a Tileset. Tiles
// must be declared before any neighbor that references them.
type Builder struct {
	reg   *Registrar
	edges []Edge
}

// NewBuilder returns a builder with its own, empty registrar.
func NewBuilder() *Builder {
	return &Builder{reg: NewRegistrar()}
}

// AddTile registers a tile. A non-nil error means the declaration was
// skipped and contributed no orientations.
func (b *Builder) AddTile(name string, class symmetry.Class, weight float64) (NameEntry, error) {
	return b.reg.Register(name, class, weight)
}

// AddNeighbor parses and resolves both sides of a neighbor declaration and
// appends the four expanded edges. On error nothing is appended.
func (b *Builder) AddNeighbor(left, right string) ([Directions]Edge, error) {
	var none [Directions]Edge

	ls, err := ParseSide(left)
	if err != nil {
		return none, fmt.Errorf("left: %w", err)
	}
	rs, err := ParseSide(right)
	if err != nil {
		return none, fmt.Errorf("right: %w", err)
	}
	lo, err := b.reg.Resolve(ls)
	if err != nil {
		return none, fmt.Errorf("left: %w", err)
	}
	ro, err := b.reg.Resolve(rs)
	if err != nil {
		return none, fmt.Errorf("right: %w", err)
	}

	edges := Expand(b.reg.Actions(), lo, ro)
	b.edges = append(b.edges, edges[:]...)
	return edges, nil
}

// Build snapshots the declarations seen so far into a read-only Tileset.
// The builder may keep accepting declarations afterwards without affecting
// the returned value.
func (b *Builder) Build() *Tileset {
	return &Tileset{
		tiles:   slices.Clone(b.reg.tiles),
		names:   maps.Clone(b.reg.names),
		actions: slices.Clone(b.reg.actions),
		edges:   slices.Clone(b.edges),
	}
}

// Tileset is the finished model handed to the solver. It is immutable and
// safe for concurrent reads.
type Tileset struct {
	tiles   []Tile
	names   map[string]NameEntry
	actions ActionTable
	edges   []Edge
}

// Tiles returns the registered tiles in declaration order.
func (ts *Tileset) Tiles() []Tile {
	return slices.Clone(ts.tiles)
}

// Lookup returns the orientation block of a tile by name.
func (ts *Tileset) Lookup(name string) (NameEntry, bool) {
	e, ok := ts.names[name]
	return e, ok
}

// Actions returns a copy of the full action table.
func (ts *Tileset) Actions() ActionTable {
	return slices.Clone(ts.actions)
}

// Action returns the action row of a single orientation.
func (ts *Tileset) Action(o Orientation) (ActionRow, bool) {
	if o < 0 || int(o) >= len(ts.actions) {
		return ActionRow{}, false
	}
	return ts.actions[o], true
}

// Edges returns a copy of the adjacency edge list, in declaration order.
func (ts *Tileset) Edges() []Edge {
	return slices.Clone(ts.edges)
}

// OrientationCount is the total number of orientations across all tiles.
func (ts *Tileset) OrientationCount() int {
	return len(ts.actions)
}
