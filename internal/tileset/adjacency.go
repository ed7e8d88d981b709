package tileset

import (
	"fmt"
	"strconv"
	"strings"
)

// Side is one half of a neighbor declaration: a tile name and a local case
// number inside that tile's orientation block.
type Side struct {
	Tile string
	Case int
	// Explicit is true when the case number was written out.
	Explicit bool
}

// String renders the side the way it appears in tileset files.
func (s Side) String() string {
	if !s.Explicit {
		return s.Tile
	}
	return fmt.Sprintf("%s %d", s.Tile, s.Case)
}

// ParseSide parses "tile" or "tile case". Fields are separated by
// whitespace; a missing case number means case 0 and tokens after the case
// number are ignored.
func ParseSide(raw string) (Side, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Side{}, fmt.Errorf("neighbor side %q has no tile name: %w", raw, ErrMissingAttribute)
	}
	side := Side{Tile: fields[0]}
	if len(fields) > 1 {
		n, err := strconv.Atoi(fields[1])
		if err != nil || n < 0 {
			return Side{}, fmt.Errorf("neighbor side %q case %q: %w", raw, fields[1], ErrInvalidNumber)
		}
		side.Case = n
		side.Explicit = true
	}
	return side, nil
}

// referenceDirection is the direction a declaration states directly: right
// sits East of left.
const referenceDirection = East

// Expand derives the four directed edges implied by "right is East of left".
// Rotation step k rotates both orientations through column k of the action
// table and turns the direction k steps from East. Step 0 carries the
// resolved pair unchanged.
func Expand(actions ActionTable, left, right Orientation) [Directions]Edge {
	var edges [Directions]Edge
	for k := 0; k < Directions; k++ {
		edges[k] = Edge{
			Direction: referenceDirection.Turn(k),
			Left:      actions[left][k],
			Right:     actions[right][k],
		}
	}
	return edges
}
