package adapters

import (
	"encoding/xml"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"maven-depman/internal/types"
)

type pomXML struct {
	GroupID    string    `xml:"groupId"`
	ArtifactID string    `xml:"artifactId"`
	Version    string    `xml:"version"`
	Parent     parentXML `xml:"parent"`

	Properties           propertiesXML        `xml:"properties"`
	DependencyManagement managementSectionXML `xml:"dependencyManagement"`
}

type parentXML struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
	Version    string `xml:"version"`
}

type managementSectionXML struct {
	Dependencies []dependencyXML `xml:"dependencies>dependency"`
}

type dependencyXML struct {
	GroupID    string         `xml:"groupId"`
	ArtifactID string         `xml:"artifactId"`
	Version    string         `xml:"version"`
	Classifier string         `xml:"classifier"`
	Scope      string         `xml:"scope"`
	Type       string         `xml:"type"`
	Exclusions []exclusionXML `xml:"exclusions>exclusion"`
}

type exclusionXML struct {
	GroupID    string `xml:"groupId"`
	ArtifactID string `xml:"artifactId"`
}

// propertiesXML captures the free-form <properties> block, where every
// child element name is a property name.
type propertiesXML struct {
	values map[string]string
}

func (p *propertiesXML) UnmarshalXML(decoder *xml.Decoder, start xml.StartElement) error {
	p.values = map[string]string{}
	for {
		token, err := decoder.Token()
		if err != nil {
			return err
		}
		switch element := token.(type) {
		case xml.StartElement:
			var value string
			if err := decoder.DecodeElement(&value, &element); err != nil {
				return err
			}
			p.values[element.Name.Local] = strings.TrimSpace(value)
		case xml.EndElement:
			if element.Name == start.Name {
				return nil
			}
		}
	}
}

// ParsePomDocument parses raw POM bytes into the resolver's document model.
// Coordinates missing from the document fall back to the parent block, so
// BOMs that inherit their group or version from a parent still resolve.
// The document's effective coordinates are also published as the implicit
// project.* properties, the way Maven exposes them.
func ParsePomDocument(data []byte) (types.PomDocument, error) {
	var parsed pomXML
	if err := xml.Unmarshal(data, &parsed); err != nil {
		return types.PomDocument{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse pom xml").
			WithCause(err)
	}

	group := strings.TrimSpace(parsed.GroupID)
	if group == "" {
		group = strings.TrimSpace(parsed.Parent.GroupID)
	}
	version := strings.TrimSpace(parsed.Version)
	if version == "" {
		version = strings.TrimSpace(parsed.Parent.Version)
	}
	coordinates, err := types.NewCoordinates(group, strings.TrimSpace(parsed.ArtifactID), version)
	if err != nil {
		return types.PomDocument{}, err
	}

	props := map[string]string{
		"project.groupId":    coordinates.GroupID,
		"project.artifactId": coordinates.ArtifactID,
		"project.version":    coordinates.Version,
	}
	for name, value := range parsed.Properties.values {
		props[name] = value
	}

	doc := types.PomDocument{
		Coordinates: coordinates,
		Properties:  props,
	}
	for _, dep := range parsed.DependencyManagement.Dependencies {
		entry := types.PomManagedDependency{
			GroupID:    strings.TrimSpace(dep.GroupID),
			ArtifactID: strings.TrimSpace(dep.ArtifactID),
			Version:    strings.TrimSpace(dep.Version),
			Classifier: strings.TrimSpace(dep.Classifier),
			Scope:      strings.TrimSpace(dep.Scope),
			Type:       strings.TrimSpace(dep.Type),
		}
		for _, exclusion := range dep.Exclusions {
			entry.Exclusions = append(entry.Exclusions, types.Exclusion{
				GroupID:    strings.TrimSpace(exclusion.GroupID),
				ArtifactID: strings.TrimSpace(exclusion.ArtifactID),
			})
		}
		doc.Management = append(doc.Management, entry)
	}
	return doc, nil
}
