package types

// ManagedDependency is one resolved dependency-management entry: an exact
// version pin with optional classifier, scope, type and exclusions.
type ManagedDependency struct {
	Coordinates Coordinates
	Classifier  string
	Scope       string
	Type        string
	Exclusions  []Exclusion
}

// Key identifies a managed entry for deduplication. Two entries are
// duplicates iff group, artifact and classifier match; version is ignored.
func (m ManagedDependency) Key() string {
	return m.Coordinates.GroupID + ":" + m.Coordinates.ArtifactID + ":" + m.Classifier
}

// ArtifactKey identifies the entry's artifact regardless of version and
// classifier.
func (m ManagedDependency) ArtifactKey() string {
	return m.Coordinates.ArtifactKey()
}

// ImportRecord captures one BOM import together with the property snapshot
// supplied at import time. Records are append-only and never mutated.
type ImportRecord struct {
	RequestedBy string
	Coordinates Coordinates
	Properties  map[string]string
}

// OverrideRecord captures one explicit per-artifact version pin. Records
// are append-only and never mutated.
type OverrideRecord struct {
	RequestedBy string
	GroupID     string
	ArtifactID  string
	Version     string
	Scope       string
	Type        string
	Exclusions  []Exclusion
}

// Managed renders the override as a management-table entry.
func (o OverrideRecord) Managed() ManagedDependency {
	return ManagedDependency{
		Coordinates: Coordinates{GroupID: o.GroupID, ArtifactID: o.ArtifactID, Version: o.Version},
		Scope:       o.Scope,
		Type:        o.Type,
		Exclusions:  append([]Exclusion(nil), o.Exclusions...),
	}
}

// DependencyDeclaration is one (group, artifact, classifier) triple the
// consuming project declares as a build dependency. Only classified
// declarations matter to classifier expansion.
type DependencyDeclaration struct {
	GroupID    string
	ArtifactID string
	Classifier string
}
