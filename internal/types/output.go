package types

// EffectiveReport is the serialized form of the effective management table,
// written next to the generated manifest so the resolved state can be
// inspected and diffed in review.
type EffectiveReport struct {
	Project string                 `yaml:"project"`
	Entries []EffectiveReportEntry `yaml:"entries"`
}

type EffectiveReportEntry struct {
	GroupID    string      `yaml:"group"`
	ArtifactID string      `yaml:"artifact"`
	Version    string      `yaml:"version"`
	Classifier string      `yaml:"classifier,omitempty"`
	Scope      string      `yaml:"scope,omitempty"`
	Type       string      `yaml:"type,omitempty"`
	Exclusions []Exclusion `yaml:"exclusions,omitempty"`
}

// ReportEntry converts a managed entry into its report form.
func ReportEntry(m ManagedDependency) EffectiveReportEntry {
	return EffectiveReportEntry{
		GroupID:    m.Coordinates.GroupID,
		ArtifactID: m.Coordinates.ArtifactID,
		Version:    m.Coordinates.Version,
		Classifier: m.Classifier,
		Scope:      m.Scope,
		Type:       m.Type,
		Exclusions: m.Exclusions,
	}
}
