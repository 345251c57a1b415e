package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"
	"github.com/rs/zerolog/log"

	"maven-depman/internal/policies"
	"maven-depman/internal/properties"
	"maven-depman/internal/types"
)

// PomCustomizationSettings controls whether the generated manifest is
// rewritten at all.
type PomCustomizationSettings struct {
	Enabled bool
}

func NewPomCustomizationSettings() PomCustomizationSettings {
	return PomCustomizationSettings{Enabled: true}
}

// PomConfigurerCore writes the container's dependency management into the
// dependencyManagement block of a manifest tree. Pre-existing entries are
// left untouched; new nodes are appended. All nodes are computed before
// the tree is mutated, so a resolution failure leaves the tree unchanged.
type PomConfigurerCore struct {
	Container *DependencyManagementContainer
	Diff      OverrideDiffCore
	Settings  PomCustomizationSettings
}

func NewPomConfigurerCore(container *DependencyManagementContainer, diff OverrideDiffCore, settings PomCustomizationSettings) PomConfigurerCore {
	return PomConfigurerCore{Container: container, Diff: diff, Settings: settings}
}

// ConfigurePom appends, in order: one node per property-override diff entry
// (most recently imported BOM first), one import node per BOM (most recent
// first, scope=import/type=pom), one node per explicit override, and the
// classifier expansions for the supplied build declarations.
func (c PomConfigurerCore) ConfigurePom(ctx context.Context, current properties.Source, declarations []types.DependencyDeclaration, doc *etree.Document) error {
	if !c.Settings.Enabled {
		return nil
	}
	if doc == nil || doc.Root() == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("target pom has no root element")
	}
	if c.Container == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("configurer requires a dependency management container")
	}

	nodes, err := c.collectNodes(ctx, current, declarations)
	if err != nil {
		return err
	}

	dependencies := locateDependencies(doc.Root())
	for _, node := range nodes {
		dependencies.AddChild(node)
	}
	log.Ctx(ctx).Debug().Int("nodes", len(nodes)).Msg("pom dependency management configured")
	return nil
}

func (c PomConfigurerCore) collectNodes(ctx context.Context, current properties.Source, declarations []types.DependencyDeclaration) ([]*etree.Element, error) {
	overrides := c.Container.Overrides()
	imports := c.Container.Imports()

	// Explicit overrides take final precedence: a diff-derived pin for the
	// same artifact would be shadowed anyway, so it is not emitted.
	shadowed := map[string]struct{}{}
	for _, record := range overrides {
		shadowed[record.GroupID+":"+record.ArtifactID] = struct{}{}
	}

	var nodes []*etree.Element
	emitted := map[string]struct{}{}
	for i := len(imports) - 1; i >= 0; i-- {
		diff, err := c.Diff.Diff(ctx, imports[i], current)
		if err != nil {
			return nil, err
		}
		for _, entry := range diff {
			if _, ok := shadowed[entry.ArtifactKey()]; ok {
				continue
			}
			if _, ok := emitted[entry.Key()]; ok {
				continue
			}
			emitted[entry.Key()] = struct{}{}
			nodes = append(nodes, dependencyElement(entry))
		}
	}

	for i := len(imports) - 1; i >= 0; i-- {
		record := imports[i]
		nodes = append(nodes, dependencyElement(types.ManagedDependency{
			Coordinates: record.Coordinates,
			Scope:       types.ScopeImport,
			Type:        types.TypePom,
		}))
	}

	for _, record := range overrides {
		nodes = append(nodes, dependencyElement(record.Managed()))
	}

	effective, err := c.Container.EffectiveManagement(ctx, current)
	if err != nil {
		return nil, err
	}
	expanded := policies.ExpandClassifiers(effective, declarations)
	for _, entry := range expanded[len(effective):] {
		nodes = append(nodes, dependencyElement(entry))
	}

	return nodes, nil
}

func dependencyElement(entry types.ManagedDependency) *etree.Element {
	node := etree.NewElement("dependency")
	node.CreateElement("groupId").SetText(entry.Coordinates.GroupID)
	node.CreateElement("artifactId").SetText(entry.Coordinates.ArtifactID)
	node.CreateElement("version").SetText(entry.Coordinates.Version)
	if entry.Classifier != "" {
		node.CreateElement("classifier").SetText(entry.Classifier)
	}
	if entry.Scope != "" {
		node.CreateElement("scope").SetText(entry.Scope)
	}
	if entry.Type != "" {
		node.CreateElement("type").SetText(entry.Type)
	}
	if len(entry.Exclusions) > 0 {
		exclusions := node.CreateElement("exclusions")
		for _, exclusion := range entry.Exclusions {
			child := exclusions.CreateElement("exclusion")
			child.CreateElement("groupId").SetText(exclusion.GroupID)
			child.CreateElement("artifactId").SetText(exclusion.ArtifactID)
		}
	}
	return node
}

func locateDependencies(root *etree.Element) *etree.Element {
	management := root.SelectElement("dependencyManagement")
	if management == nil {
		management = root.CreateElement("dependencyManagement")
	}
	dependencies := management.SelectElement("dependencies")
	if dependencies == nil {
		dependencies = management.CreateElement("dependencies")
	}
	return dependencies
}
