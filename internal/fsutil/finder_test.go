package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{"b.xml", "a.HCL", "notes.txt", "nested/c.xml", "nested/deeper/d.hcl"} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	// --- Act ---
	files, err := FindFilesByExtension(root, ".xml", ".hcl")

	// --- Assert ---
	require.NoError(t, err)
	want := []string{
		filepath.Join(root, "a.HCL"),
		filepath.Join(root, "b.xml"),
		filepath.Join(root, "nested", "c.xml"),
		filepath.Join(root, "nested", "deeper", "d.hcl"),
	}
	assert.Equal(t, want, files)
}

func TestFindFilesByExtension_MissingRoot(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "absent"), ".xml")
	assert.Error(t, err)
}

func TestFindFilesByExtension_NoExtensionPanics(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir())
	})
}
