package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"maven-depman/internal/policies"
	"maven-depman/internal/properties"
	"maven-depman/internal/types"
)

// DependencyManagementContainer records, in call order, every BOM import
// and every explicit managed-version override. Nothing is resolved at
// record time; the effective table is recomputed on demand so property
// overrides made after an import are still visible at generation time.
type DependencyManagementContainer struct {
	resolver  *BomResolverCore
	imports   []types.ImportRecord
	overrides []types.OverrideRecord
}

func NewDependencyManagementContainer(resolver *BomResolverCore) *DependencyManagementContainer {
	return &DependencyManagementContainer{resolver: resolver}
}

// ImportBom appends an import record with a snapshot of the supplied
// properties. Resolution is deferred until the effective table is asked
// for.
func (c *DependencyManagementContainer) ImportBom(requestedBy string, coordinates types.Coordinates, props map[string]string) error {
	validated, err := types.NewCoordinates(coordinates.GroupID, coordinates.ArtifactID, coordinates.Version)
	if err != nil {
		return err
	}
	snapshot := make(map[string]string, len(props))
	for name, value := range props {
		snapshot[name] = value
	}
	c.imports = append(c.imports, types.ImportRecord{
		RequestedBy: requestedBy,
		Coordinates: validated,
		Properties:  snapshot,
	})
	return nil
}

// AddManagedVersion appends an explicit version pin with no scope or type.
func (c *DependencyManagementContainer) AddManagedVersion(requestedBy string, groupID string, artifactID string, version string, exclusions []types.Exclusion) error {
	return c.AddScopedManagedVersion(requestedBy, groupID, artifactID, version, "", "", exclusions)
}

// AddScopedManagedVersion appends an explicit version pin carrying the
// supplied scope and type verbatim.
func (c *DependencyManagementContainer) AddScopedManagedVersion(requestedBy string, groupID string, artifactID string, version string, scope string, depType string, exclusions []types.Exclusion) error {
	record, err := policies.ApplyOverride(requestedBy, groupID, artifactID, version, scope, depType, exclusions)
	if err != nil {
		return err
	}
	c.overrides = append(c.overrides, record)
	return nil
}

// Imports returns the import records in insertion order.
func (c *DependencyManagementContainer) Imports() []types.ImportRecord {
	return append([]types.ImportRecord(nil), c.imports...)
}

// Overrides returns the override records in insertion order.
func (c *DependencyManagementContainer) Overrides() []types.OverrideRecord {
	return append([]types.OverrideRecord(nil), c.overrides...)
}

// EffectiveManagement resolves every import under the current property
// overlay and layers explicit overrides on top. Imports are resolved in
// reverse insertion order so the most recently imported BOM wins; explicit
// overrides win over any BOM entry; duplicates by (group, artifact,
// classifier) are discarded first-seen-wins.
func (c *DependencyManagementContainer) EffectiveManagement(ctx context.Context, current properties.Source) ([]types.ManagedDependency, error) {
	if c.resolver == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("container requires a bom resolver")
	}

	var entries []types.ManagedDependency
	for i := len(c.overrides) - 1; i >= 0; i-- {
		entries = append(entries, c.overrides[i].Managed())
	}
	for i := len(c.imports) - 1; i >= 0; i-- {
		record := c.imports[i]
		overlay := properties.Layer(current, properties.MapSource(record.Properties))
		resolution, err := c.resolver.Resolve(ctx, record.Coordinates, overlay)
		if err != nil {
			return nil, err
		}
		entries = append(entries, resolution.Entries...)
	}

	merged := policies.MergeManaged(entries)
	log.Ctx(ctx).Debug().
		Int("imports", len(c.imports)).
		Int("overrides", len(c.overrides)).
		Int("effective", len(merged)).
		Msg("effective management computed")
	return merged, nil
}
