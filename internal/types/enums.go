package types

// Wildcard matches any group or artifact in an exclusion.
const Wildcard = "*"

const (
	// ScopeImport marks a dependency-management entry that imports
	// another BOM rather than pinning an artifact.
	ScopeImport = "import"

	// TypePom is the packaging type carried by BOM imports.
	TypePom = "pom"
)

type SpecKind string

const (
	SpecKindProject SpecKind = "project"
	SpecKindProfile SpecKind = "profile"
)

type RepositoryKind string

const (
	RepositoryKindFile RepositoryKind = "file"
	RepositoryKindHTTP RepositoryKind = "http"
)
