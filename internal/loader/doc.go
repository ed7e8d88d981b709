// Package loader is the composition root of a tileset load. It reads an
// event stream from any source.Opener, tracks which section of the document
// it is in, and feeds tile and neighbor declarations to a tileset.Builder.
//
// A load has exactly two outcomes. Either the tileset is returned together
// with the warnings raised by skipped or patched declarations, or nothing is
// returned and the error says why the input could not be read at all.
package loader
