package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"maven-depman/internal/adapters"
	"maven-depman/internal/core"
	"maven-depman/internal/types"
)

func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	spec, _, err := s.loadSpec(ctx, req.SpecPath, req.Profiles)
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{ProjectName: spec.Metadata.Name}, nil
}

// loadSpec loads and validates the project spec and flattens its property
// overlay. Profile paths are resolved relative to the spec file.
func (s Service) loadSpec(ctx context.Context, specPath string, profiles []string) (types.Spec, map[string]string, error) {
	specPath = strings.TrimSpace(specPath)
	if specPath == "" {
		return types.Spec{}, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project spec path is required")
	}
	spec, err := s.SpecLoader.LoadProject(specPath)
	if err != nil {
		return types.Spec{}, nil, err
	}
	if err := core.NewSpecCompiler().ValidateSpec(ctx, spec); err != nil {
		return types.Spec{}, nil, err
	}
	dir := filepath.Dir(specPath)
	source := adapters.NewProfileSourceAdapter(dir)
	overlay, err := source.LoadProperties(spec, profiles)
	if err != nil {
		return types.Spec{}, nil, err
	}

	// Paths inside the spec are relative to the spec file.
	spec.Pom = resolvePath(dir, spec.Pom)
	spec.Repository.Path = resolvePath(dir, spec.Repository.Path)
	spec.Customization.Output = resolvePath(dir, spec.Customization.Output)
	return spec, overlay, nil
}

func resolvePath(dir string, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
