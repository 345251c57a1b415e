package types

// PomDocument is the parsed model of a fetched POM: the artifact's own
// coordinates, its declared properties, and its dependencyManagement
// section in document order. Adapters produce it; the resolver consumes it.
type PomDocument struct {
	Coordinates Coordinates
	Properties  map[string]string
	Management  []PomManagedDependency
}

// PomManagedDependency is one raw dependencyManagement entry as written in
// the document, before any property substitution.
type PomManagedDependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
	Scope      string
	Type       string
	Exclusions []Exclusion
}

// IsBomImport reports whether the entry imports another BOM instead of
// pinning an artifact.
func (d PomManagedDependency) IsBomImport() bool {
	return d.Scope == ScopeImport && d.Type == TypePom
}
