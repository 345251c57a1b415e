package adapters

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"

	"maven-depman/internal/ports"
	"maven-depman/internal/types"
)

// DeclarationsPomAdapter extracts the classified dependency declarations
// from the project's own dependencies block. Only entries carrying a
// classifier matter here: they drive the classifier expansion of the
// managed table.
type DeclarationsPomAdapter struct{}

func NewDeclarationsPomAdapter() DeclarationsPomAdapter {
	return DeclarationsPomAdapter{}
}

func (a DeclarationsPomAdapter) ClassifiedDeclarations(doc *etree.Document) ([]types.DependencyDeclaration, error) {
	if doc == nil || doc.Root() == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pom document has no root element")
	}

	var declarations []types.DependencyDeclaration
	for _, node := range doc.FindElements("project/dependencies/dependency") {
		classifier := childText(node, "classifier")
		if classifier == "" {
			continue
		}
		declarations = append(declarations, types.DependencyDeclaration{
			GroupID:    childText(node, "groupId"),
			ArtifactID: childText(node, "artifactId"),
			Classifier: classifier,
		})
	}
	return declarations, nil
}

func childText(node *etree.Element, name string) string {
	child := node.SelectElement(name)
	if child == nil {
		return ""
	}
	return strings.TrimSpace(child.Text())
}

var _ ports.DeclarationsPort = DeclarationsPomAdapter{}
