package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"maven-depman/internal/ports"
	"maven-depman/internal/types"
)

// ProfileSourceAdapter flattens a project's property overlay: the spec's
// inline properties first, then each profile file the spec names, then any
// explicitly supplied extra files. Later sources win.
type ProfileSourceAdapter struct {
	// BaseDir resolves relative profile paths; the spec file's directory.
	BaseDir string
}

func NewProfileSourceAdapter(baseDir string) ProfileSourceAdapter {
	return ProfileSourceAdapter{BaseDir: baseDir}
}

func (a ProfileSourceAdapter) LoadProperties(spec types.Spec, extra []string) (map[string]string, error) {
	merged := map[string]string{}
	for name, value := range spec.Properties {
		merged[name] = value
	}
	paths := append(append([]string{}, spec.Profiles...), extra...)
	for _, path := range paths {
		overlay, err := a.loadProfile(path)
		if err != nil {
			return nil, err
		}
		for name, value := range overlay {
			merged[name] = value
		}
	}
	return merged, nil
}

func (a ProfileSourceAdapter) loadProfile(path string) (map[string]string, error) {
	if !filepath.IsAbs(path) && a.BaseDir != "" {
		path = filepath.Join(a.BaseDir, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("profile file not found").
			WithCause(err)
	}
	var overlay map[string]string
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse profile yaml").
			WithCause(err)
	}
	return overlay, nil
}

var _ ports.ProfileSourcePort = ProfileSourceAdapter{}
