// Package report renders loaded tilesets for people and for other tools.
package report

import (
	"github.com/vk/wavetiles/internal/loader"
	"github.com/vk/wavetiles/internal/symmetry"
	"github.com/vk/wavetiles/internal/tileset"
)

// Summary is the serializable view of one load. It is also the payload sent
// to a solver service and served over HTTP.
type Summary struct {
	Path         string                     `json:"path,omitempty" yaml:"path,omitempty"`
	Tiles        []TileSummary              `json:"tiles" yaml:"tiles"`
	Orientations int                        `json:"orientations" yaml:"orientations"`
	Actions      [][symmetry.Operations]int `json:"actions" yaml:"actions,flow"`
	Edges        []EdgeSummary              `json:"edges" yaml:"edges"`
	Warnings     []string                   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// TileSummary describes one tile and its orientation block.
type TileSummary struct {
	Name        string  `json:"name" yaml:"name"`
	Symmetry    string  `json:"symmetry" yaml:"symmetry"`
	Weight      float64 `json:"weight" yaml:"weight"`
	Offset      int     `json:"offset" yaml:"offset"`
	Cardinality int     `json:"cardinality" yaml:"cardinality"`
}

// EdgeSummary is one adjacency edge: Right may sit in Direction of Left.
type EdgeSummary struct {
	Direction string `json:"direction" yaml:"direction"`
	Left      int    `json:"left" yaml:"left"`
	Right     int    `json:"right" yaml:"right"`
}

// Summarize converts a load result into a Summary.
func Summarize(res *loader.Result) Summary {
	s := FromTileset(res.Tileset)
	s.Path = res.Path
	for _, w := range res.Warnings {
		s.Warnings = append(s.Warnings, w.Error())
	}
	return s
}

// FromTileset converts a tileset without load metadata.
func FromTileset(ts *tileset.Tileset) Summary {
	s := Summary{
		Tiles:        []TileSummary{},
		Orientations: ts.OrientationCount(),
		Actions:      make([][symmetry.Operations]int, 0, ts.OrientationCount()),
		Edges:        []EdgeSummary{},
	}
	for _, t := range ts.Tiles() {
		s.Tiles = append(s.Tiles, TileSummary{
			Name:        t.Name,
			Symmetry:    t.Symmetry.String(),
			Weight:      t.Weight,
			Offset:      int(t.Offset),
			Cardinality: t.Cardinality,
		})
	}
	for _, row := range ts.Actions() {
		var r [symmetry.Operations]int
		for k, o := range row {
			r[k] = int(o)
		}
		s.Actions = append(s.Actions, r)
	}
	for _, e := range ts.Edges() {
		s.Edges = append(s.Edges, EdgeSummary{
			Direction: e.Direction.String(),
			Left:      int(e.Left),
			Right:     int(e.Right),
		})
	}
	return s
}
