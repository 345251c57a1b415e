package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestValidateApp(t *testing.T) {
	service := NewService()
	result, err := service.Validate(t.Context(), ValidateRequest{
		SpecPath: fixtureSpecPath(t),
	})
	require.NoError(t, err)
	if diff := cmp.Diff("demo-service", result.ProjectName); diff != "" {
		t.Fatalf("unexpected project name (-want +got):\n%s", diff)
	}
}

func TestValidateAppRequiresPath(t *testing.T) {
	_, err := NewService().Validate(t.Context(), ValidateRequest{})
	require.Error(t, err)
}
