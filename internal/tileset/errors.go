package tileset

import "errors"

// Sentinel errors for declarations the builder rejects. All of them are
// recoverable: the offending declaration is skipped and the load continues.
var (
	// ErrDuplicateTile indicates a tile name was already registered.
	ErrDuplicateTile = errors.New("tileset: duplicate tile name")
	// ErrMissingAttribute indicates a required attribute is absent or empty.
	ErrMissingAttribute = errors.New("tileset: missing required attribute")
	// ErrUnknownSymmetry indicates a symmetry tag outside the six known classes.
	ErrUnknownSymmetry = errors.New("tileset: unknown symmetry class")
	// ErrUnknownTile indicates a neighbor side names a tile that is not registered.
	ErrUnknownTile = errors.New("tileset: unknown tile")
	// ErrCaseOutOfRange indicates a local case number >= the tile's cardinality.
	ErrCaseOutOfRange = errors.New("tileset: case number out of range")
	// ErrInvalidNumber indicates a numeric attribute that could not be parsed or is out of domain.
	ErrInvalidNumber = errors.New("tileset: invalid number")
)
