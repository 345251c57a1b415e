package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"maven-depman/internal/adapters"
	"maven-depman/internal/core"
	"maven-depman/internal/policies"
	"maven-depman/internal/properties"
	"maven-depman/internal/types"
)

// Generate resolves the project's dependency management and rewrites the
// target manifest: BOM imports, explicit overrides, property-override
// pins, and classifier expansions are appended to its dependencyManagement
// block.
func (s Service) Generate(ctx context.Context, req GenerateRequest) (GenerateResult, error) {
	spec, overlay, err := s.loadSpec(ctx, req.SpecPath, req.Profiles)
	if err != nil {
		return GenerateResult{}, err
	}

	container, resolver, err := s.buildContainer(spec)
	if err != nil {
		return GenerateResult{}, err
	}
	current := properties.MapSource(overlay)

	pomPath := strings.TrimSpace(req.Pom)
	if pomPath == "" {
		pomPath = spec.Pom
	}
	doc, err := s.PomFiles.LoadPom(pomPath)
	if err != nil {
		return GenerateResult{}, err
	}
	declarations, err := s.Declarations.ClassifiedDeclarations(doc)
	if err != nil {
		return GenerateResult{}, err
	}

	settings := core.PomCustomizationSettings{Enabled: spec.Customization.CustomizationEnabled()}
	configurer := core.NewPomConfigurerCore(container, core.NewOverrideDiffCore(resolver), settings)
	if err := configurer.ConfigurePom(ctx, current, declarations, doc); err != nil {
		return GenerateResult{}, err
	}

	outputPath := strings.TrimSpace(req.Output)
	if outputPath == "" {
		outputPath = strings.TrimSpace(spec.Customization.Output)
	}
	if outputPath == "" {
		outputPath = pomPath
	}
	if err := s.PomFiles.WritePom(doc, outputPath); err != nil {
		return GenerateResult{}, err
	}

	effective, err := container.EffectiveManagement(ctx, current)
	if err != nil {
		return GenerateResult{}, err
	}
	effective = policies.ExpandClassifiers(effective, declarations)

	if dir := strings.TrimSpace(req.ReportDir); dir != "" {
		if err := s.writeReport(dir, spec.Metadata.Name, effective); err != nil {
			return GenerateResult{}, err
		}
	}

	log.Ctx(ctx).Info().
		Str("project", spec.Metadata.Name).
		Str("pom", outputPath).
		Int("managed", len(effective)).
		Msg("dependency management generated")
	return GenerateResult{
		ProjectName: spec.Metadata.Name,
		PomPath:     outputPath,
		Managed:     len(effective),
	}, nil
}

func (s Service) buildContainer(spec types.Spec) (*core.DependencyManagementContainer, *core.BomResolverCore, error) {
	resolver := core.NewBomResolverCore(s.repository(spec))
	container := core.NewDependencyManagementContainer(resolver)
	for _, record := range spec.Imports {
		if err := container.ImportBom(record.RequestedBy, record.Coordinates, record.Properties); err != nil {
			return nil, nil, err
		}
	}
	for _, override := range spec.Overrides {
		err := container.AddScopedManagedVersion(
			override.RequestedBy,
			override.GroupID,
			override.ArtifactID,
			override.Version,
			override.Scope,
			override.Type,
			override.Exclusions,
		)
		if err != nil {
			return nil, nil, err
		}
	}
	return container, resolver, nil
}

func (s Service) writeReport(dir string, project string, effective []types.ManagedDependency) error {
	report := types.EffectiveReport{Project: project}
	for _, entry := range effective {
		report.Entries = append(report.Entries, types.ReportEntry(entry))
	}
	return adapters.NewOutputFileAdapter(dir).WriteEffectiveReport(report)
}
