package app

import (
	"context"
	"strings"

	"maven-depman/internal/policies"
	"maven-depman/internal/properties"
	"maven-depman/internal/types"
)

// Effective resolves the project's dependency management without touching
// the manifest and returns the flattened table. When the spec names a
// manifest, its classified declarations drive classifier expansion.
func (s Service) Effective(ctx context.Context, req EffectiveRequest) (EffectiveResult, error) {
	spec, overlay, err := s.loadSpec(ctx, req.SpecPath, req.Profiles)
	if err != nil {
		return EffectiveResult{}, err
	}

	container, _, err := s.buildContainer(spec)
	if err != nil {
		return EffectiveResult{}, err
	}

	effective, err := container.EffectiveManagement(ctx, properties.MapSource(overlay))
	if err != nil {
		return EffectiveResult{}, err
	}

	var declarations []types.DependencyDeclaration
	if strings.TrimSpace(spec.Pom) != "" {
		if doc, err := s.PomFiles.LoadPom(spec.Pom); err == nil {
			if declared, err := s.Declarations.ClassifiedDeclarations(doc); err == nil {
				declarations = declared
			}
		}
	}
	effective = policies.ExpandClassifiers(effective, declarations)

	if dir := strings.TrimSpace(req.OutputDir); dir != "" {
		if err := s.writeReport(dir, spec.Metadata.Name, effective); err != nil {
			return EffectiveResult{}, err
		}
	}

	result := EffectiveResult{ProjectName: spec.Metadata.Name}
	for _, entry := range effective {
		result.Entries = append(result.Entries, types.ReportEntry(entry))
	}
	return result, nil
}
