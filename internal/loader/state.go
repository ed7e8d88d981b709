package loader

import "github.com/vk/wavetiles/internal/schema"

// state is the section the loader is in after an element was opened.
type state int

const (
	stateOff state = iota
	stateSet
	stateTiles
	stateNeighbors
	stateTile
	stateNeighbor
	stateIgnored
)

var stateNames = [...]string{
	stateOff:       "document root",
	stateSet:       schema.ElementSet,
	stateTiles:     schema.ElementTiles,
	stateNeighbors: schema.ElementNeighbors,
	stateTile:      schema.ElementTile,
	stateNeighbor:  schema.ElementNeighbor,
	stateIgnored:   "ignored",
}

func (s state) String() string {
	return stateNames[s]
}

// transition returns the state entered when element opens inside s. The
// second result is false when the element is not accepted there.
func (s state) transition(element string) (state, bool) {
	switch {
	case s == stateOff && element == schema.ElementSet:
		return stateSet, true
	case s == stateSet && element == schema.ElementTiles:
		return stateTiles, true
	case s == stateSet && element == schema.ElementNeighbors:
		return stateNeighbors, true
	case s == stateTiles && element == schema.ElementTile:
		return stateTile, true
	case s == stateNeighbors && element == schema.ElementNeighbor:
		return stateNeighbor, true
	}
	return stateIgnored, false
}
