package integration_tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/wavetiles/internal/loader"
	"github.com/vk/wavetiles/internal/source"
	"github.com/vk/wavetiles/internal/testutil"
)

// TestFatalErrorFailsRun verifies that one unreadable tileset fails the whole
// run and no report is written.
func TestFatalErrorFailsRun(t *testing.T) {
	t.Parallel()

	good := testutil.XMLTileset([]string{"a X"}, nil)

	testCases := []struct {
		name    string
		files   map[string]string
		wantErr error
	}{
		{
			name:    "malformed xml",
			files:   map[string]string{"a.xml": good, "b.xml": "<set><tiles><tile name=\"x\"></tiles></set>"},
			wantErr: source.ErrSyntax,
		},
		{
			name:    "malformed hcl",
			files:   map[string]string{"a.xml": good, "b.hcl": "tiles {\n  tile \"x\" {\n"},
			wantErr: source.ErrSyntax,
		},
		{
			name:    "hcl expression that needs variables",
			files:   map[string]string{"b.hcl": "tiles {\n  tile \"x\" {\n    symmetry = var.sym\n  }\n}\n"},
			wantErr: source.ErrSyntax,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			result := testutil.RunIntegrationTest(t, tc.files, "text")

			// --- Assert ---
			require.Error(t, result.Err)
			require.ErrorIs(t, result.Err, tc.wantErr)
			require.Empty(t, result.Output)
			require.Nil(t, result.App.Summaries())
		})
	}
}

// TestTruncatedFileIsWarning verifies that input cut off mid-document keeps
// what was read.
func TestTruncatedFileIsWarning(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{
		"cut.xml": "<set>\n  <tiles>\n    <tile name=\"a\" symmetry=\"T\"/>\n    <tile name=\"b\" sym",
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, "yaml")

	// --- Assert ---
	require.NoError(t, result.Err)
	summaries := result.App.Summaries()
	require.Len(t, summaries, 1)
	require.Equal(t, 4, summaries[0].Orientations)
	require.Len(t, summaries[0].Warnings, 1)
	require.Contains(t, summaries[0].Warnings[0], "unexpected end of input")
	require.Contains(t, result.LogOutput, "Tileset input ended early")
}

// TestCancelledRun verifies that a cancelled context aborts loading.
func TestCancelledRun(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	files := map[string]string{"a.xml": testutil.XMLTileset([]string{"a X"}, nil)}

	// --- Act ---
	result := testutil.RunIntegrationTestWithContext(ctx, t, files, "text")

	// --- Assert ---
	require.ErrorIs(t, result.Err, context.Canceled)
}

// TestUnsupportedExtensionIsFatal verifies that an explicitly named file of
// an unknown format is rejected.
func TestUnsupportedExtensionIsFatal(t *testing.T) {
	t.Parallel()

	// --- Act ---
	_, err := loader.New().LoadFile(context.Background(), "tiles.json")

	// --- Assert ---
	require.ErrorIs(t, err, loader.ErrUnsupportedFormat)
}
