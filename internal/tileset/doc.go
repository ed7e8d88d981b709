// Package tileset builds the numeric model a wave-function-collapse solver
// consumes from a sequence of tile and neighbor declarations.
//
// # Orientations
//
// Every registered tile reserves a contiguous block of global orientation
// indices, one per visually distinct rotation or mirror image of the tile.
// Blocks are handed out in registration order and never reused, so the first
// tile always starts at 0 and a tile's block begins where the previous block
// ended.
//
// # Action table
//
// For each orientation the ActionTable stores an 8-column row giving the
// orientation reached by each elementary symmetry operation (rotate by 0, 90,
// 180 and 270 degrees, then the same four followed by a mirror). Column 0 is
// always the orientation itself and every entry stays inside the owning
// tile's block.
//
// # Adjacency
//
// A neighbor declaration names two sides ("tile" or "tile case"). Both sides
// are resolved to global orientations and the pair is expanded into four
// directed edges, one per compass direction, by rotating both sides through
// the action table. The resolved pair itself is the East edge.
//
// # Ownership
//
// A Builder owns its Registrar exclusively for the duration of one load.
// There is no package-level state: two builders running in separate
// goroutines never share orientation counters. A Tileset returned by Build is
// read-only.
package tileset
