package tileset

import (
	"fmt"

	"github.com/vk/wavetiles/internal/symmetry"
)

// Orientation is a global orientation index, unique across one tileset.
type Orientation int

// ActionRow lists where an orientation maps under each of the eight
// elementary symmetry operations. Index 0 is the identity.
type ActionRow [symmetry.Operations]Orientation

// ActionTable is indexed by Orientation.
type ActionTable []ActionRow

// Tile is an immutable tile definition together with the orientation block
// it was assigned.
type Tile struct {
	Name        string
	Symmetry    symmetry.Class
	Weight      float64
	Offset      Orientation
	Cardinality int
}

// Orientations returns the global indices owned by the tile, in local case order.
func (t Tile) Orientations() []Orientation {
	out := make([]Orientation, t.Cardinality)
	for i := range out {
		out[i] = t.Offset + Orientation(i)
	}
	return out
}

// NameEntry is the name index value for a registered tile: the first
// orientation of its block and the block size.
type NameEntry struct {
	Offset      Orientation
	Cardinality int
}

// Contains reports whether o lies inside the entry's block.
func (e NameEntry) Contains(o Orientation) bool {
	return o >= e.Offset && o < e.Offset+Orientation(e.Cardinality)
}

// Direction is a compass direction between two adjacent cells.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions is the number of compass directions.
const Directions = 4

var directionNames = [Directions]string{"N", "E", "S", "W"}

// String returns the one-letter compass name.
func (d Direction) String() string {
	if d < Directions {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Turn returns the direction reached after k clockwise quarter steps.
func (d Direction) Turn(k int) Direction {
	return Direction(((int(d)+k)%Directions + Directions) % Directions)
}

// Edge states that orientation Right may sit immediately in Direction from
// orientation Left.
type Edge struct {
	Direction Direction
	Left      Orientation
	Right     Orientation
}

// String renders the edge as "E 0->2".
func (e Edge) String() string {
	return fmt.Sprintf("%s %d->%d", e.Direction, e.Left, e.Right)
}
