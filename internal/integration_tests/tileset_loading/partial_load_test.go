package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/wavetiles/internal/testutil"
)

// TestPartialLoadIsSuccess verifies that recoverable problems are reported as
// warnings while the rest of the tileset still loads.
func TestPartialLoadIsSuccess(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<set>
  <tiles>
    <tile name="grass" symmetry="X" weight="4"/>
    <tile name="grass" symmetry="X"/>
    <tile name="road" symmetry="I" weight="-1"/>
    <tile name="river" symmetry="Z"/>
    <tile symmetry="L"/>
    <tile name="bridge" symmetry="I" texture="bridge.png"/>
  </tiles>
  <decorations>
    <tile name="flower" symmetry="X"/>
  </decorations>
  <neighbors>
    <neighbor left="grass" right="bridge 1"/>
    <neighbor left="grass" right="road"/>
    <neighbor left="bridge 2" right="grass"/>
    <neighbor left="river" right="grass"/>
  </neighbors>
</set>
`
	files := map[string]string{"world.xml": doc}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, "text")

	// --- Assert ---
	require.NoError(t, result.Err, "a load with warnings must succeed")

	summaries := result.App.Summaries()
	require.Len(t, summaries, 1)
	s := summaries[0]

	names := make([]string, 0, len(s.Tiles))
	for _, tile := range s.Tiles {
		names = append(names, tile.Name)
	}
	require.Equal(t, []string{"grass", "river", "bridge"}, names)
	require.Equal(t, "X", s.Tiles[1].Symmetry, "unknown symmetry falls back to X")
	require.Equal(t, 4.0, s.Tiles[0].Weight)

	// grass|bridge 1 and river|grass are accepted.
	require.Len(t, s.Edges, 8)

	expected := []string{
		"line 5: tile \"grass\": tileset: duplicate tile name",
		"line 6: tile \"road\" weight -1 must be a positive finite number: tileset: invalid number",
		"line 7: tile \"river\" symmetry \"Z\", using X: tileset: unknown symmetry class",
		"line 8: <tile> attribute \"name\": tileset: missing required attribute",
		"line 9: loader: unknown attribute: \"texture\" on <tile>",
		"line 11: loader: unknown element: <decorations> inside set",
		"line 16: right: \"road\": tileset: unknown tile",
		"line 17: left: \"bridge\" case 2, tile has 2 orientations: tileset: case number out of range",
	}
	require.Equal(t, expected, s.Warnings)
	require.Contains(t, result.Output, "world.xml: 3 tiles, 4 orientations, 8 edges, 8 warnings")
}
