package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maven-depman/internal/app"
	"maven-depman/tests/testutil"
)

// TestGoldenGenerate performs a full generation using the sample fixtures
// and compares the outputs against committed golden files. If the golden
// files do not exist yet (first run), they are written so they can be
// committed.
//
// To update golden files after an intentional change, delete the
// testdata/golden/ directory and re-run the test.
func TestGoldenGenerate(t *testing.T) {
	root := testutil.RepoRoot(t)
	goldenDir := filepath.Join(root, "tests", "integration", "testdata", "golden")

	outDir := t.TempDir()
	service := app.NewService()
	result, err := service.Generate(t.Context(), app.GenerateRequest{
		SpecPath:  filepath.Join(root, "fixtures", "maven-depman.yaml"),
		Output:    filepath.Join(outDir, "pom.xml"),
		ReportDir: outDir,
	})
	require.NoError(t, err)
	assert.Equal(t, "demo-service", result.ProjectName)

	goldenFiles := map[string]string{
		"pom.xml":                     filepath.Join(outDir, "pom.xml"),
		"effective-dependencies.yaml": filepath.Join(outDir, "effective-dependencies.yaml"),
	}

	for name, actualPath := range goldenFiles {
		t.Run(name, func(t *testing.T) {
			actual, err := os.ReadFile(actualPath)
			require.NoError(t, err)

			goldenPath := filepath.Join(goldenDir, name)
			if _, statErr := os.Stat(goldenPath); os.IsNotExist(statErr) {
				// Golden file doesn't exist yet -- write it.
				require.NoError(t, os.MkdirAll(goldenDir, 0o755))
				require.NoError(t, os.WriteFile(goldenPath, actual, 0o644))
				t.Logf("golden file written: %s (commit it)", goldenPath)
				return
			}

			expected, err := os.ReadFile(goldenPath)
			require.NoError(t, err)
			assert.Equal(t, string(expected), string(actual),
				"golden mismatch for %s -- delete testdata/golden/ and re-run to regenerate", name)
		})
	}
}
