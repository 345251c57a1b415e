package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveResolvesManagedTable(t *testing.T) {
	service := NewService()
	result, err := service.Effective(t.Context(), EffectiveRequest{
		SpecPath: fixtureSpecPath(t),
	})
	require.NoError(t, err)
	assert.Equal(t, "demo-service", result.ProjectName)

	versions := map[string]string{}
	for _, entry := range result.Entries {
		versions[entry.GroupID+":"+entry.ArtifactID] = entry.Version
	}

	// Override wins over anything a BOM would manage.
	assert.Equal(t, "18.0", versions["com.google.guava:guava"])
	// The dev profile pins spring.version.
	assert.Equal(t, "4.3.5.RELEASE", versions["org.springframework:spring-core"])
	// The spec's inline property overrides the BOM default.
	assert.Equal(t, "2.8.0", versions["com.google.code.gson:gson"])
}

func TestEffectiveWithExtraProfile(t *testing.T) {
	service := NewService()

	// Explicit profiles layer on top of the ones the spec names.
	result, err := service.Effective(t.Context(), EffectiveRequest{
		SpecPath: fixtureSpecPath(t),
		Profiles: []string{"profiles/dev.yaml"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, result.Entries)
}
