// Package xmlsource provides the XML implementation of the source.Opener
// interface. It streams element start/end tokens from encoding/xml as
// source events and classifies read failures into the source error set.
package xmlsource
