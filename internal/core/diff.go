package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"maven-depman/internal/policies"
	"maven-depman/internal/properties"
	"maven-depman/internal/types"
)

// OverrideDiffCore finds the entries of an imported BOM that only exist, or
// only carry their version, because of the current property overlay. A
// consumer of the generated manifest has no access to that overlay, so
// exactly these entries must be pinned explicitly alongside the import.
type OverrideDiffCore struct {
	Resolver *BomResolverCore
}

func NewOverrideDiffCore(resolver *BomResolverCore) OverrideDiffCore {
	return OverrideDiffCore{Resolver: resolver}
}

// Diff resolves the import once under the current overlay (layered over the
// import's own snapshot) and once under the BOM's declared defaults alone,
// and returns the entries of the first table whose version differs from, or
// that are absent from, the second. Entries identical in both are omitted:
// the import alone reproduces them.
func (d OverrideDiffCore) Diff(ctx context.Context, record types.ImportRecord, current properties.Source) ([]types.ManagedDependency, error) {
	if d.Resolver == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("diff engine requires a bom resolver")
	}

	overlay := properties.Layer(current, properties.MapSource(record.Properties))
	overridden, err := d.Resolver.Resolve(ctx, record.Coordinates, overlay)
	if err != nil {
		return nil, err
	}
	defaults, err := d.Resolver.Resolve(ctx, record.Coordinates, properties.Empty)
	if err != nil {
		return nil, err
	}

	baseline := map[string]string{}
	for _, entry := range policies.MergeManaged(defaults.Entries) {
		if _, ok := baseline[entry.ArtifactKey()]; !ok {
			baseline[entry.ArtifactKey()] = entry.Coordinates.Version
		}
	}

	var diff []types.ManagedDependency
	for _, entry := range policies.MergeManaged(overridden.Entries) {
		version, ok := baseline[entry.ArtifactKey()]
		if ok && version == entry.Coordinates.Version {
			continue
		}
		diff = append(diff, entry)
	}
	return diff, nil
}
