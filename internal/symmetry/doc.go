// Package symmetry describes how a tile's orientations are permuted by the
// dihedral group of the square (four rotations, each optionally mirrored).
//
// A tile is tagged with one of six symmetry classes. The class fixes how many
// distinct orientations the tile has (its cardinality) and two generators over
// the local index range [0, cardinality):
//
//	class  cardinality  rotate(i)                    reflect(i)
//	X      1            i                            i
//	I      2            1-i                          i
//	\      2            1-i                          1-i
//	T      4            (i+1) mod 4                  i if even, else 4-i
//	L      4            (i+1) mod 4                  i+1 if even, else i-1
//	F      8            (i+1) mod 4, or 4+(i-1) mod 4 for i >= 4
//	                                                 i+4, or i-4 for i >= 4
//
// Every function in this package is pure; a Class is a plain value and safe
// for concurrent use.
package symmetry
