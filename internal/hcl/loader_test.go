package hcl

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/wavetiles/internal/ctxlog"
	"github.com/vk/wavetiles/internal/source"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// shape reduces events to kind, name and attributes for comparison.
type shape struct {
	Kind  source.EventKind
	Name  string
	Attrs map[string]string
}

func shapes(events []source.Event) []shape {
	out := make([]shape, 0, len(events))
	for _, ev := range events {
		out = append(out, shape{Kind: ev.Kind, Name: ev.Name, Attrs: ev.Attrs})
	}
	return out
}

func TestParse_Tileset(t *testing.T) {
	// --- Arrange ---
	ctx := ctxlog.Discard(context.Background())
	src := `
tiles {
  tile "corner" {
    symmetry = "L"
    weight   = 0.5
  }
  tile "cross" {
    symmetry = "X"
  }
}

neighbors {
  neighbor {
    left  = "corner 1"
    right = "cross"
  }
}
`

	// --- Act ---
	events, err := Parse(ctx, []byte(src), "test.hcl")

	// --- Assert ---
	require.NoError(t, err)
	want := []shape{
		{Kind: source.ElementStart, Name: "set", Attrs: map[string]string{}},
		{Kind: source.ElementStart, Name: "tiles", Attrs: map[string]string{}},
		{Kind: source.ElementStart, Name: "tile", Attrs: map[string]string{"name": "corner", "symmetry": "L", "weight": "0.5"}},
		{Kind: source.ElementEnd, Name: "tile"},
		{Kind: source.ElementStart, Name: "tile", Attrs: map[string]string{"name": "cross", "symmetry": "X"}},
		{Kind: source.ElementEnd, Name: "tile"},
		{Kind: source.ElementEnd, Name: "tiles"},
		{Kind: source.ElementStart, Name: "neighbors", Attrs: map[string]string{}},
		{Kind: source.ElementStart, Name: "neighbor", Attrs: map[string]string{"left": "corner 1", "right": "cross"}},
		{Kind: source.ElementEnd, Name: "neighbor"},
		{Kind: source.ElementEnd, Name: "neighbors"},
		{Kind: source.ElementEnd, Name: "set"},
	}
	if diff := cmp.Diff(want, shapes(events)); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 3, events[2].Line, "tile block line")
	assert.Equal(t, 13, events[8].Line, "neighbor block line")
}

func TestParse_ValueConversion(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want map[string]string
	}{
		{
			name: "integer weight",
			src:  `tile "a" { weight = 2 }`,
			want: map[string]string{"name": "a", "weight": "2"},
		},
		{
			name: "bool value",
			src:  `tile "a" { extra = true }`,
			want: map[string]string{"name": "a", "extra": "true"},
		},
		{
			name: "null is absent",
			src:  `tile "a" { weight = null }`,
			want: map[string]string{"name": "a"},
		},
		{
			name: "escaped backslash symmetry",
			src:  `tile "d" { symmetry = "\\" }`,
			want: map[string]string{"name": "d", "symmetry": `\`},
		},
		{
			name: "name as attribute",
			src:  `tile { name = "b" }`,
			want: map[string]string{"name": "b"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			ctx := ctxlog.Discard(context.Background())

			// --- Act ---
			events, err := Parse(ctx, []byte(tc.src), "test.hcl")

			// --- Assert ---
			require.NoError(t, err)
			require.Len(t, events, 4)
			assert.Equal(t, tc.want, events[1].Attrs)
		})
	}
}

func TestParse_UnknownBlocksAreKept(t *testing.T) {
	// --- Arrange ---
	ctx := ctxlog.Discard(context.Background())
	src := `
palette {
  color = "red"
}
`

	// --- Act ---
	events, err := Parse(ctx, []byte(src), "test.hcl")

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, events, 4)
	assert.Equal(t, "palette", events[1].Name)
	assert.Equal(t, map[string]string{"color": "red"}, events[1].Attrs)
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name string
		src  string
	}{
		{name: "malformed", src: `tiles {`},
		{name: "variable reference", src: `tile "a" { weight = var.w }`},
		{name: "list value", src: `tile "a" { weight = [1, 2] }`},
		{name: "name twice", src: `tile "a" { name = "b" }`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Arrange ---
			ctx := ctxlog.Discard(context.Background())

			// --- Act ---
			_, err := Parse(ctx, []byte(tc.src), "test.hcl")

			// --- Assert ---
			require.Error(t, err)
			assert.ErrorIs(t, err, source.ErrSyntax)
		})
	}
}

func TestOpener_Open(t *testing.T) {
	ctx := ctxlog.Discard(context.Background())

	t.Run("streams the file", func(t *testing.T) {
		// --- Arrange ---
		path := writeFile(t, "set.hcl", "tiles {\n  tile \"a\" {}\n}\n")

		// --- Act ---
		stream, err := NewOpener().Open(ctx, path)
		require.NoError(t, err)
		defer stream.Close()

		// --- Assert ---
		var names []string
		for {
			ev, err := stream.Next()
			if err == io.EOF {
				break
			}
			require.NoError(t, err)
			names = append(names, ev.Kind.String()+":"+ev.Name)
		}
		want := []string{
			"ElementStart:set", "ElementStart:tiles", "ElementStart:tile",
			"ElementEnd:tile", "ElementEnd:tiles", "ElementEnd:set", "EndOfDocument:",
		}
		assert.Equal(t, want, names)
	})

	t.Run("missing file", func(t *testing.T) {
		// --- Act ---
		_, err := NewOpener().Open(ctx, filepath.Join(t.TempDir(), "absent.hcl"))

		// --- Assert ---
		assert.ErrorIs(t, err, source.ErrNotFound)
	})

	t.Run("directory is an i/o failure", func(t *testing.T) {
		// --- Act ---
		_, err := NewOpener().Open(ctx, t.TempDir())

		// --- Assert ---
		assert.ErrorIs(t, err, source.ErrIO)
	})
}
