// Package testutil provides the harness shared by the integration tests: it
// writes tileset fixtures to a temporary directory and runs the full app
// against them.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/wavetiles/internal/app"
)

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Dir       string
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// Path returns the absolute path of a fixture written by the harness.
func (r *HarnessResult) Path(name string) string {
	return filepath.Join(r.Dir, filepath.FromSlash(name))
}

// RunIntegrationTest provides a standardized harness for running integration
// tests using a default background context. The app loads the whole fixture
// directory with the given output format.
func RunIntegrationTest(t *testing.T, files map[string]string, format string) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, format)
}

// RunIntegrationTestWithContext is RunIntegrationTest with a caller-provided context.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, format string) *HarnessResult {
	t.Helper()

	// 1. Write every fixture below a fresh temporary directory. Names may
	//    contain slashes, which creates the subdirectory structure.
	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	// 2. Configure the app against the whole directory.
	cfg, err := app.NewConfig(app.Config{
		TilesetPaths: []string{tmpDir},
		OutputFormat: format,
		LogFormat:    "text",
		WorkerCount:  4,
	})
	require.NoError(t, err)

	testApp, out, logs := app.SetupAppTest(t, cfg)

	// 3. Run it.
	runErr := testApp.Run(ctx)

	return &HarnessResult{
		Dir:       tmpDir,
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       testApp,
	}
}
