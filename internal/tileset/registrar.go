package tileset

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vk/wavetiles/internal/symmetry"
)

// DefaultWeight is used when a tile declaration carries no weight.
const DefaultWeight = 1.0

// Registrar assigns orientation blocks to tiles in registration order and
// builds the action table. It is not safe for concurrent use; each load owns
// its own Registrar.
type Registrar struct {
	tiles   []Tile
	names   map[string]NameEntry
	actions ActionTable
}

// NewRegistrar returns an empty registrar.
func NewRegistrar() *Registrar {
	return &Registrar{names: make(map[string]NameEntry)}
}

// Register reserves class.Cardinality() fresh orientations for name, starting
// right after the last issued index, and records one action row per
// orientation. A rejected tile reserves nothing.
func (r *Registrar) Register(name string, class symmetry.Class, weight float64) (NameEntry, error) {
	if name == "" {
		return NameEntry{}, fmt.Errorf("tile name: %w", ErrMissingAttribute)
	}
	if _, exists := r.names[name]; exists {
		return NameEntry{}, fmt.Errorf("tile %q: %w", name, ErrDuplicateTile)
	}
	if weight <= 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return NameEntry{}, fmt.Errorf("tile %q weight %v must be a positive finite number: %w", name, weight, ErrInvalidNumber)
	}

	offset := Orientation(len(r.actions))
	n := class.Cardinality()
	entry := NameEntry{Offset: offset, Cardinality: n}
	r.names[name] = entry

	for t := 0; t < n; t++ {
		local := class.Actions(t)
		var row ActionRow
		for k, v := range local {
			row[k] = offset + Orientation(v)
		}
		r.actions = append(r.actions, row)
	}

	r.tiles = append(r.tiles, Tile{
		Name:        name,
		Symmetry:    class,
		Weight:      weight,
		Offset:      offset,
		Cardinality: n,
	})
	return entry, nil
}

// Lookup returns the name index entry for a registered tile.
func (r *Registrar) Lookup(name string) (NameEntry, bool) {
	e, ok := r.names[name]
	return e, ok
}

// Resolve turns a neighbor side into its global orientation.
func (r *Registrar) Resolve(side Side) (Orientation, error) {
	entry, ok := r.names[side.Tile]
	if !ok {
		return 0, fmt.Errorf("%q: %w", side.Tile, ErrUnknownTile)
	}
	if side.Case >= entry.Cardinality {
		return 0, fmt.Errorf("%q case %d, tile has %d orientations: %w", side.Tile, side.Case, entry.Cardinality, ErrCaseOutOfRange)
	}
	return entry.Offset + Orientation(side.Case), nil
}

// Actions returns the action table built so far. The caller must not modify it.
func (r *Registrar) Actions() ActionTable {
	return r.actions
}

// Len returns the number of orientations issued so far.
func (r *Registrar) Len() int {
	return len(r.actions)
}

// ParseWeight parses a weight attribute. An empty value yields DefaultWeight.
func ParseWeight(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultWeight, nil
	}
	w, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("weight %q: %w", raw, ErrInvalidNumber)
	}
	return w, nil
}
