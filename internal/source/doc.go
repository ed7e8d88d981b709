// Package source defines the format-agnostic event model tileset files are
// read through, along with the interfaces (Opener, EventStream) concrete
// readers implement.
//
// A reader turns a file into a flat, document-ordered sequence of
// ElementStart and ElementEnd events terminated by EndOfDocument. The loader
// package interprets that sequence; it never sees XML or HCL directly.
// Concrete implementations live in separate packages (xmlsource, hcl).
package source
