package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"maven-depman/internal/types"
)

func TestWriteEffectiveReport(t *testing.T) {
	dir := t.TempDir()
	adapter := NewOutputFileAdapter(filepath.Join(dir, "out"))

	report := types.EffectiveReport{
		Project: "demo-service",
		Entries: []types.EffectiveReportEntry{
			{GroupID: "org.springframework", ArtifactID: "spring-core", Version: "4.3.13.RELEASE"},
			{
				GroupID:    "com.google.guava",
				ArtifactID: "guava",
				Version:    "18.0",
				Exclusions: []types.Exclusion{{GroupID: "com.google.code.findbugs", ArtifactID: "jsr305"}},
			},
		},
	}
	require.NoError(t, adapter.WriteEffectiveReport(report))

	data, err := os.ReadFile(filepath.Join(dir, "out", "effective-dependencies.yaml"))
	require.NoError(t, err)

	var loaded types.EffectiveReport
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, report, loaded)
}
