package testutil

import (
	"fmt"
	"strings"
)

// XMLTileset renders an XML tileset document. Tiles are "name symmetry" pairs
// and neighbors are "left|right" pairs.
func XMLTileset(tiles []string, neighbors []string) string {
	var b strings.Builder
	b.WriteString("<set>\n  <tiles>\n")
	for _, tile := range tiles {
		name, sym, _ := strings.Cut(tile, " ")
		fmt.Fprintf(&b, "    <tile name=\"%s\" symmetry=\"%s\"/>\n", name, sym)
	}
	b.WriteString("  </tiles>\n  <neighbors>\n")
	for _, n := range neighbors {
		left, right, _ := strings.Cut(n, "|")
		fmt.Fprintf(&b, "    <neighbor left=\"%s\" right=\"%s\"/>\n", left, right)
	}
	b.WriteString("  </neighbors>\n</set>\n")
	return b.String()
}

// HCLTileset renders the same document in HCL syntax.
func HCLTileset(tiles []string, neighbors []string) string {
	var b strings.Builder
	b.WriteString("tiles {\n")
	for _, tile := range tiles {
		name, sym, _ := strings.Cut(tile, " ")
		fmt.Fprintf(&b, "  tile %q {\n    symmetry = %q\n  }\n", name, sym)
	}
	b.WriteString("}\n\nneighbors {\n")
	for _, n := range neighbors {
		left, right, _ := strings.Cut(n, "|")
		fmt.Fprintf(&b, "  neighbor {\n    left  = %q\n    right = %q\n  }\n", left, right)
	}
	b.WriteString("}\n")
	return b.String()
}
