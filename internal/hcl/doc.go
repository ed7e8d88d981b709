// Package hcl provides the HCL implementation of the source.Opener
// interface. It parses a tileset written in HCL syntax and replays it as the
// same element event sequence the XML reader produces, so the loader treats
// both formats identically.
//
// A tileset in HCL looks like:
//
//	tiles {
//	  tile "corner" {
//	    symmetry = "L"
//	    weight   = 0.5
//	  }
//	}
//	neighbors {
//	  neighbor {
//	    left  = "corner 1"
//	    right = "corner"
//	  }
//	}
//
// The document root is implicit. A block's first label becomes its name
// attribute and attribute values of any primitive type are converted to
// strings through cty.
package hcl
