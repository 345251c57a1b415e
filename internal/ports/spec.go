package ports

import "maven-depman/internal/types"

type ProjectSpecPort interface {
	LoadProject(path string) (types.Spec, error)
}

// ProfileSourcePort loads the property profile files a spec references and
// flattens them into one overlay, later files winning.
type ProfileSourcePort interface {
	LoadProperties(spec types.Spec, extra []string) (map[string]string, error)
}
