package core

import (
	"context"
	"fmt"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"maven-depman/internal/policies"
	"maven-depman/internal/types"
)

type SpecCompiler struct{}

func NewSpecCompiler() SpecCompiler {
	return SpecCompiler{}
}

func (c SpecCompiler) ValidateSpec(ctx context.Context, spec types.Spec) error {
	assert.NotEmpty(ctx, spec.APIVersion, "api_version must be set")
	assert.NotEmpty(ctx, string(spec.Kind), "kind must be set")
	assert.NotEmpty(ctx, spec.Metadata.Name, "metadata.name must be set")
	if spec.Kind != types.SpecKindProject {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec kind must be project")
	}
	if len(spec.Imports) == 0 && len(spec.Overrides) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec must declare at least one import or override")
	}
	if err := c.validateRepository(spec.Repository, len(spec.Imports) > 0); err != nil {
		return err
	}
	for _, imported := range spec.Imports {
		coordinates := imported.Coordinates
		if _, err := types.NewCoordinates(coordinates.GroupID, coordinates.ArtifactID, coordinates.Version); err != nil {
			return err
		}
		if strings.TrimSpace(coordinates.Version) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("bom import %s requires a version", coordinates.ArtifactKey()))
		}
	}
	for _, override := range spec.Overrides {
		if _, err := policies.ApplyOverride(override.RequestedBy, override.GroupID, override.ArtifactID, override.Version, override.Scope, override.Type, override.Exclusions); err != nil {
			return err
		}
		for _, exclusion := range override.Exclusions {
			if _, err := types.NewExclusion(exclusion.GroupID, exclusion.ArtifactID); err != nil {
				return err
			}
		}
	}
	if spec.Customization.CustomizationEnabled() && strings.TrimSpace(spec.Pom) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec must name the pom to customize")
	}
	return nil
}

func (c SpecCompiler) validateRepository(repository types.RepositorySpec, required bool) error {
	switch repository.Kind {
	case types.RepositoryKindFile:
		if strings.TrimSpace(repository.Path) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("file repository requires a path")
		}
	case types.RepositoryKindHTTP:
		if strings.TrimSpace(repository.URL) == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("http repository requires a url")
		}
	case "":
		if required {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("spec with bom imports requires a repository")
		}
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown repository kind: %s", repository.Kind))
	}
	return nil
}
