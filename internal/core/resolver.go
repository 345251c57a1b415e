package core

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"maven-depman/internal/ports"
	"maven-depman/internal/properties"
	"maven-depman/internal/types"
)

// Resolution is the outcome of resolving one BOM: its flattened management
// table (nested imports fully expanded) and the properties the document
// itself declares, unlayered, for use by the override-diff engine.
type Resolution struct {
	Entries    []types.ManagedDependency
	Properties map[string]string
}

// BomResolverCore resolves a BOM coordinate into its management table.
// Resolution is read-only and deterministic for identical inputs, so
// results are cached by (coordinate, property-snapshot hash). The cache is
// safe for concurrent reads.
type BomResolverCore struct {
	Repo ports.PomRepositoryPort

	mu    sync.Mutex
	cache map[string]Resolution
}

func NewBomResolverCore(repo ports.PomRepositoryPort) *BomResolverCore {
	return &BomResolverCore{
		Repo:  repo,
		cache: map[string]Resolution{},
	}
}

// Resolve fetches the POM for coordinates, layers the caller-supplied
// properties over the document's own declarations (caller wins), expands
// nested BOM imports depth-first, and returns the flattened table.
func (r *BomResolverCore) Resolve(ctx context.Context, coordinates types.Coordinates, props properties.Source) (Resolution, error) {
	if r.Repo == nil {
		return Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resolver requires a pom repository port")
	}
	if props == nil {
		props = properties.Empty
	}
	return r.resolve(ctx, coordinates, props, map[string]struct{}{})
}

func (r *BomResolverCore) resolve(ctx context.Context, coordinates types.Coordinates, props properties.Source, active map[string]struct{}) (Resolution, error) {
	key := coordinates.String() + "@" + snapshotHash(props)
	r.mu.Lock()
	if cached, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return copyResolution(cached), nil
	}
	r.mu.Unlock()

	if _, ok := active[coordinates.String()]; ok {
		return Resolution{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("bom import cycle at %s", coordinates))
	}
	active[coordinates.String()] = struct{}{}
	defer delete(active, coordinates.String())

	doc, err := r.Repo.FetchPom(ctx, coordinates)
	if err != nil {
		return Resolution{}, err
	}

	effective := properties.Layer(props, properties.MapSource(doc.Properties))

	var entries []types.ManagedDependency
	for _, raw := range doc.Management {
		groupID := properties.Substitute(raw.GroupID, effective)
		artifactID := properties.Substitute(raw.ArtifactID, effective)
		version := properties.Substitute(raw.Version, effective)

		if raw.IsBomImport() {
			nested, err := types.NewCoordinates(groupID, artifactID, version)
			if err != nil {
				return Resolution{}, err
			}
			imported, err := r.resolve(ctx, nested, effective, active)
			if err != nil {
				return Resolution{}, err
			}
			// Imported entries are spliced in before the entries already
			// collected from this document, so a later sibling import
			// shadows an earlier one under first-seen-wins merging.
			entries = append(imported.Entries, entries...)
			continue
		}

		entries = append(entries, types.ManagedDependency{
			Coordinates: types.Coordinates{GroupID: groupID, ArtifactID: artifactID, Version: version},
			Classifier:  raw.Classifier,
			Scope:       raw.Scope,
			Type:        raw.Type,
			Exclusions:  append([]types.Exclusion(nil), raw.Exclusions...),
		})
	}

	resolution := Resolution{Entries: entries, Properties: doc.Properties}
	r.mu.Lock()
	r.cache[key] = copyResolution(resolution)
	r.mu.Unlock()

	log.Ctx(ctx).Debug().
		Str("bom", coordinates.String()).
		Int("entries", len(entries)).
		Msg("bom resolved")
	return resolution, nil
}

// snapshotHash produces a deterministic digest of every name/value pair
// visible through the source, for cache keying.
func snapshotHash(props properties.Source) string {
	hash := sha256.New()
	for _, name := range props.Names() {
		value, _ := props.Get(name)
		fmt.Fprintf(hash, "%s=%s\n", name, value)
	}
	return hex.EncodeToString(hash.Sum(nil))
}

func copyResolution(resolution Resolution) Resolution {
	entries := make([]types.ManagedDependency, len(resolution.Entries))
	for i, entry := range resolution.Entries {
		entry.Exclusions = append([]types.Exclusion(nil), entry.Exclusions...)
		entries[i] = entry
	}
	props := make(map[string]string, len(resolution.Properties))
	for name, value := range resolution.Properties {
		props[name] = value
	}
	return Resolution{Entries: entries, Properties: props}
}
