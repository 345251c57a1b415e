package ports

import (
	"github.com/beevik/etree"

	"maven-depman/internal/types"
)

// PomFilePort loads and writes the target manifest tree.
type PomFilePort interface {
	LoadPom(path string) (*etree.Document, error)
	WritePom(doc *etree.Document, path string) error
}

// DeclarationsPort supplies the (group, artifact, classifier) triples the
// consuming project declares as build dependencies.
type DeclarationsPort interface {
	ClassifiedDeclarations(doc *etree.Document) ([]types.DependencyDeclaration, error)
}
