// Package properties provides the layered key/value sources used to
// substitute ${...} placeholders while resolving a BOM. Sources compose
// immutably: layering never mutates either input, so the same base source
// can be reused across resolution attempts with different overlays.
package properties

import (
	"sort"
	"strings"
)

// Source is an ordered, overridable name->value lookup.
type Source interface {
	// Get returns the value for name and whether it is defined.
	Get(name string) (string, bool)

	// Names returns every name visible through this source. Used to build
	// deterministic snapshot hashes for resolution caching.
	Names() []string
}

// MapSource is a plain map-backed source.
type MapSource map[string]string

func (m MapSource) Get(name string) (string, bool) {
	value, ok := m[name]
	return value, ok
}

func (m MapSource) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty is the source with no definitions.
var Empty Source = MapSource{}

type layered struct {
	overlay Source
	base    Source
}

// Layer returns a source where lookups check overlay first and fall back
// to base. Both inputs are left untouched.
func Layer(overlay Source, base Source) Source {
	if overlay == nil {
		return base
	}
	if base == nil {
		return overlay
	}
	return layered{overlay: overlay, base: base}
}

func (l layered) Get(name string) (string, bool) {
	if value, ok := l.overlay.Get(name); ok {
		return value, ok
	}
	return l.base.Get(name)
}

func (l layered) Names() []string {
	seen := map[string]struct{}{}
	var names []string
	for _, source := range []Source{l.overlay, l.base} {
		for _, name := range source.Names() {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Substitute replaces every ${name} occurrence in template with the
// source's value for name. Unresolved placeholders are left in place:
// declared properties are not necessarily used, and a missing name must
// not fail the resolution.
func Substitute(template string, source Source) string {
	if !strings.Contains(template, "${") {
		return template
	}
	var out strings.Builder
	rest := template
	for {
		start := strings.Index(rest, "${")
		if start < 0 {
			out.WriteString(rest)
			return out.String()
		}
		end := strings.Index(rest[start:], "}")
		if end < 0 {
			out.WriteString(rest)
			return out.String()
		}
		end += start
		out.WriteString(rest[:start])
		name := rest[start+2 : end]
		if value, ok := source.Get(name); ok {
			out.WriteString(value)
		} else {
			out.WriteString(rest[start : end+1])
		}
		rest = rest[end+1:]
	}
}
