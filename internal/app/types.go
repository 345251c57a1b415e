package app

import "maven-depman/internal/types"

type ValidateRequest struct {
	SpecPath string
	Profiles []string
}

type ValidateResult struct {
	ProjectName string
}

type GenerateRequest struct {
	SpecPath string
	Profiles []string

	// Pom overrides the spec's target manifest path.
	Pom string

	// Output is where the rewritten manifest is written; defaults to the
	// spec's customization output, then to rewriting the manifest in place.
	Output string

	// ReportDir, when set, receives the effective management report.
	ReportDir string
}

type GenerateResult struct {
	ProjectName string
	PomPath     string
	Managed     int
}

type EffectiveRequest struct {
	SpecPath string
	Profiles []string

	// OutputDir, when set, receives the report file as well.
	OutputDir string
}

type EffectiveResult struct {
	ProjectName string
	Entries     []types.EffectiveReportEntry
}
