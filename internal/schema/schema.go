// Package schema holds the fixed, case-sensitive vocabulary of tileset
// documents. Every reader emits events using these names and the loader
// recognizes nothing else.
package schema

// --- Elements ---

const (
	// ElementSet is the document root.
	ElementSet = "set"
	// ElementTiles contains tile declarations.
	ElementTiles = "tiles"
	// ElementTile declares one tile.
	ElementTile = "tile"
	// ElementNeighbors contains neighbor declarations.
	ElementNeighbors = "neighbors"
	// ElementNeighbor declares one adjacency.
	ElementNeighbor = "neighbor"
)

// --- Attributes ---

const (
	AttrName     = "name"
	AttrSymmetry = "symmetry"
	AttrWeight   = "weight"
	AttrLeft     = "left"
	AttrRight    = "right"
)

// attributes lists the attributes each element accepts. Containers accept none.
var attributes = map[string][]string{
	ElementSet:       nil,
	ElementTiles:     nil,
	ElementNeighbors: nil,
	ElementTile:      {AttrName, AttrSymmetry, AttrWeight},
	ElementNeighbor:  {AttrLeft, AttrRight},
}

// KnownElement reports whether name is part of the vocabulary.
func KnownElement(name string) bool {
	_, ok := attributes[name]
	return ok
}

// KnownAttribute reports whether attr is accepted on element.
func KnownAttribute(element, attr string) bool {
	for _, a := range attributes[element] {
		if a == attr {
			return true
		}
	}
	return false
}
