package tileset

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/wavetiles/internal/symmetry"
)

func newABBuilder(t *testing.T) *Builder {
	t.Helper()
	b := NewBuilder()
	_, err := b.AddTile("A", symmetry.X, 1.0)
	require.NoError(t, err)
	_, err = b.AddTile("B", symmetry.I, 2.5)
	require.NoError(t, err)
	return b
}

func TestBuilder_AddNeighbor(t *testing.T) {
	// --- Arrange ---
	b := newABBuilder(t)

	// --- Act ---
	edges, err := b.AddNeighbor("A", "B 1")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, Edge{Direction: East, Left: 0, Right: 2}, edges[0])

	ts := b.Build()
	require.Len(t, ts.Edges(), 4)
	assert.Equal(t, edges[:], ts.Edges())
}

func TestBuilder_AddNeighborRejections(t *testing.T) {
	testCases := []struct {
		name        string
		left, right string
		expectedErr error
	}{
		{name: "unknown left tile", left: "C", right: "A", expectedErr: ErrUnknownTile},
		{name: "unknown right tile", left: "A", right: "C 0", expectedErr: ErrUnknownTile},
		{name: "case out of range", left: "A 1", right: "B", expectedErr: ErrCaseOutOfRange},
		{name: "empty left", left: "", right: "B", expectedErr: ErrMissingAttribute},
		{name: "bad case number", left: "A", right: "B x", expectedErr: ErrInvalidNumber},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := newABBuilder(t)

			_, err := b.AddNeighbor(tc.left, tc.right)

			require.ErrorIs(t, err, tc.expectedErr)
			assert.Empty(t, b.Build().Edges(), "a rejected declaration yields zero edges")
		})
	}
}

func TestBuilder_DuplicateDeclarationsAreKept(t *testing.T) {
	b := newABBuilder(t)

	_, err := b.AddNeighbor("A", "B")
	require.NoError(t, err)
	_, err = b.AddNeighbor("A", "B")
	require.NoError(t, err)

	edges := b.Build().Edges()
	require.Len(t, edges, 8)
	assert.Equal(t, edges[:4], edges[4:])
}

func TestBuilder_BuildSnapshot(t *testing.T) {
	b := newABBuilder(t)
	ts := b.Build()

	_, err := b.AddTile("C", symmetry.F, 1.0)
	require.NoError(t, err)

	assert.Equal(t, 3, ts.OrientationCount(), "later registrations must not leak into a built tileset")
	_, ok := ts.Lookup("C")
	assert.False(t, ok)
	assert.Equal(t, 11, b.Build().OrientationCount())
}

func TestTileset_Accessors(t *testing.T) {
	ts := newABBuilder(t).Build()

	tiles := ts.Tiles()
	require.Len(t, tiles, 2)
	assert.Equal(t, Tile{Name: "B", Symmetry: symmetry.I, Weight: 2.5, Offset: 1, Cardinality: 2}, tiles[1])

	entry, ok := ts.Lookup("B")
	require.True(t, ok)
	assert.Equal(t, NameEntry{Offset: 1, Cardinality: 2}, entry)

	row, ok := ts.Action(2)
	require.True(t, ok)
	assert.Equal(t, ActionRow{2, 1, 2, 1, 2, 1, 2, 1}, row)
	_, ok = ts.Action(3)
	assert.False(t, ok)
	_, ok = ts.Action(-1)
	assert.False(t, ok)

	// Mutating returned slices must not affect the tileset.
	tiles[0].Name = "mutated"
	actions := ts.Actions()
	actions[0][0] = 99
	assert.Equal(t, "A", ts.Tiles()[0].Name)
	assert.Equal(t, Orientation(0), ts.Actions()[0][0])
}

func TestBuilder_ConcurrentLoadsAreIndependent(t *testing.T) {
	const loads = 8
	results := make([]*Tileset, loads)

	var wg sync.WaitGroup
	for i := 0; i < loads; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := NewBuilder()
			for _, name := range []string{"a", "b", "c"} {
				_, _ = b.AddTile(name, symmetry.T, 1.0)
			}
			_, _ = b.AddNeighbor("a 1", "c 3")
			results[i] = b.Build()
		}(i)
	}
	wg.Wait()

	for _, ts := range results {
		assert.Equal(t, 12, ts.OrientationCount())
		entry, ok := ts.Lookup("c")
		require.True(t, ok)
		assert.Equal(t, Orientation(8), entry.Offset)
		assert.Equal(t, Edge{Direction: East, Left: 1, Right: 11}, ts.Edges()[0])
	}
}
