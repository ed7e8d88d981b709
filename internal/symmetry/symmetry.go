package symmetry

import "fmt"

// Class is one of the six recognized symmetry classes.
type Class uint8

const (
	// X tiles look the same under every rotation and reflection.
	X Class = iota
	// I tiles have two orientations, e.g. a straight line.
	I
	// Diagonal tiles are symmetric about a diagonal. Tagged `\` in tileset files.
	Diagonal
	// T tiles have four orientations and one mirror axis.
	T
	// L tiles have four orientations, mirroring swaps neighbours in the cycle.
	L
	// F tiles have no symmetry at all.
	F
)

// Operations is the number of elementary symmetry operations: four rotations
// times {identity, mirror}.
const Operations = 8

var tags = [...]string{
	X:        "X",
	I:        "I",
	Diagonal: `\`,
	T:        "T",
	L:        "L",
	F:        "F",
}

// Parse maps a symmetry tag to its Class. Unrecognized tags report false and
// resolve to X, which callers treat as a non-fatal fallback.
func Parse(tag string) (Class, bool) {
	for c, s := range tags {
		if s == tag {
			return Class(c), true
		}
	}
	return X, false
}

// Classes returns every recognized class in declaration order.
func Classes() []Class {
	return []Class{X, I, Diagonal, T, L, F}
}

// String returns the tag used for the class in tileset files.
func (c Class) String() string {
	if int(c) < len(tags) {
		return tags[c]
	}
	return fmt.Sprintf("Class(%d)", uint8(c))
}

// MarshalText implements encoding.TextMarshaler so reports print the tag.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Cardinality is the number of visually distinct orientations of the class.
func (c Class) Cardinality() int {
	switch c {
	case I, Diagonal:
		return 2
	case T, L:
		return 4
	case F:
		return 8
	default:
		return 1
	}
}

// Rotate maps local orientation i to the orientation obtained by one
// quarter turn.
func (c Class) Rotate(i int) int {
	switch c {
	case I, Diagonal:
		return 1 - i
	case T, L:
		return (i + 1) % 4
	case F:
		if i < 4 {
			return (i + 1) % 4
		}
		return 4 + (i-1)%4
	default:
		return i
	}
}

// Reflect maps local orientation i to its mirror image.
func (c Class) Reflect(i int) int {
	switch c {
	case Diagonal:
		return 1 - i
	case T:
		if i%2 == 0 {
			return i
		}
		return 4 - i
	case L:
		if i%2 == 0 {
			return i + 1
		}
		return i - 1
	case F:
		if i < 4 {
			return i + 4
		}
		return i - 4
	default:
		return i
	}
}

// Actions returns, for local orientation t, where t lands under each of the
// eight operations: columns 0-3 rotate by 0, 90, 180 and 270 degrees, columns
// 4-7 apply the same rotation followed by a reflection.
func (c Class) Actions(t int) [Operations]int {
	var row [Operations]int
	r := t
	for k := 0; k < 4; k++ {
		row[k] = r
		row[k+4] = c.Reflect(r)
		r = c.Rotate(r)
	}
	return row
}
