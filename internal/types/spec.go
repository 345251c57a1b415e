package types

type Metadata struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Owners      []string `yaml:"owners"`
	Description string   `yaml:"description,omitempty"`
}

// Spec is the declarative project file that drives generation: which BOMs
// to import, which artifact versions to pin explicitly, and which property
// overrides are active while the managed table is resolved.
type Spec struct {
	APIVersion string   `yaml:"api_version"`
	Kind       SpecKind `yaml:"kind"`
	Metadata   Metadata `yaml:"metadata"`

	// Pom is the path to the manifest the configurer rewrites.
	Pom string `yaml:"pom,omitempty"`

	Repository RepositorySpec `yaml:"repository,omitempty"`

	Imports   []ImportSpec   `yaml:"imports,omitempty"`
	Overrides []OverrideSpec `yaml:"overrides,omitempty"`

	// Properties overlay every BOM resolution performed for this project.
	// Later profile files layer on top of these (last file wins).
	Properties map[string]string `yaml:"properties,omitempty"`
	Profiles   []string          `yaml:"profiles,omitempty"`

	Customization CustomizationSpec `yaml:"pom_customization,omitempty"`
}

// RepositorySpec points at the repository BOMs are fetched from. A file
// repository is a local directory in standard Maven layout; an http
// repository is the same layout behind a base URL.
type RepositorySpec struct {
	Kind RepositoryKind `yaml:"kind"`
	Path string         `yaml:"path,omitempty"`
	URL  string         `yaml:"url,omitempty"`

	TimeoutSec   int `yaml:"timeout_sec,omitempty"`
	Retries      int `yaml:"retries,omitempty"`
	RetryDelayMs int `yaml:"retry_delay_ms,omitempty"`
}

// ImportSpec declares one BOM import. Properties form the snapshot recorded
// with the import; they are layered under the project's current overlay at
// resolution time.
type ImportSpec struct {
	RequestedBy string            `yaml:"requested_by,omitempty"`
	Coordinates Coordinates       `yaml:"coordinates"`
	Properties  map[string]string `yaml:"properties,omitempty"`
}

// OverrideSpec declares one explicit managed version. Scope and type are
// only written to the generated manifest when set here.
type OverrideSpec struct {
	RequestedBy string      `yaml:"requested_by,omitempty"`
	GroupID     string      `yaml:"group"`
	ArtifactID  string      `yaml:"artifact"`
	Version     string      `yaml:"version"`
	Scope       string      `yaml:"scope,omitempty"`
	Type        string      `yaml:"type,omitempty"`
	Exclusions  []Exclusion `yaml:"exclusions,omitempty"`
}

// CustomizationSpec controls manifest rewriting. Enabled defaults to true;
// the pointer distinguishes "absent" from an explicit false.
type CustomizationSpec struct {
	Enabled *bool  `yaml:"enabled,omitempty"`
	Output  string `yaml:"output,omitempty"`
}

// CustomizationEnabled applies the default.
func (c CustomizationSpec) CustomizationEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}
