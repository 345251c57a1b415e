package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"

	"maven-depman/internal/ports"
)

// PomFileAdapter reads and writes the target manifest as a mutable XML
// tree, preserving elements the configurer does not touch.
type PomFileAdapter struct{}

func NewPomFileAdapter() PomFileAdapter {
	return PomFileAdapter{}
}

func (a PomFileAdapter) LoadPom(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("failed to read pom file").
			WithCause(err)
	}
	if doc.Root() == nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pom file has no root element")
	}
	return doc, nil
}

func (a PomFileAdapter) WritePom(doc *etree.Document, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create output directory").
				WithCause(err)
		}
	}
	doc.Indent(2)
	if err := doc.WriteToFile(path); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write pom file").
			WithCause(err)
	}
	return nil
}

var _ ports.PomFilePort = PomFileAdapter{}
