package types

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// Coordinates identifies a published artifact by its Maven
// group/artifact/version triple. The zero value is invalid; use
// NewCoordinates for validated construction.
type Coordinates struct {
	GroupID    string `yaml:"group"`
	ArtifactID string `yaml:"artifact"`
	Version    string `yaml:"version"`
}

func NewCoordinates(groupID string, artifactID string, version string) (Coordinates, error) {
	groupID = strings.TrimSpace(groupID)
	artifactID = strings.TrimSpace(artifactID)
	version = strings.TrimSpace(version)
	if groupID == "" || artifactID == "" {
		return Coordinates{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("coordinates require a group and artifact")
	}
	return Coordinates{GroupID: groupID, ArtifactID: artifactID, Version: version}, nil
}

// String renders the conventional group:artifact:version form.
func (c Coordinates) String() string {
	return fmt.Sprintf("%s:%s:%s", c.GroupID, c.ArtifactID, c.Version)
}

// ArtifactKey identifies the artifact regardless of version, used when
// matching "same artifact, any version".
func (c Coordinates) ArtifactKey() string {
	return c.GroupID + ":" + c.ArtifactID
}

// ParseCoordinates splits a "group:artifact:version" string. The version
// segment is optional.
func ParseCoordinates(raw string) (Coordinates, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	switch len(parts) {
	case 2:
		return NewCoordinates(parts[0], parts[1], "")
	case 3:
		return NewCoordinates(parts[0], parts[1], parts[2])
	default:
		return Coordinates{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid coordinates: %s", raw))
	}
}

// Exclusion is a group/artifact pair excluded from a managed dependency.
// Either field may be the wildcard "*".
type Exclusion struct {
	GroupID    string `yaml:"group"`
	ArtifactID string `yaml:"artifact"`
}

func NewExclusion(groupID string, artifactID string) (Exclusion, error) {
	groupID = strings.TrimSpace(groupID)
	artifactID = strings.TrimSpace(artifactID)
	if groupID == "" || artifactID == "" {
		return Exclusion{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("exclusion requires a group and artifact")
	}
	return Exclusion{GroupID: groupID, ArtifactID: artifactID}, nil
}

// Matches reports whether the exclusion applies to the given artifact,
// honoring "*" as match-anything on either field independently.
func (e Exclusion) Matches(groupID string, artifactID string) bool {
	return matchField(e.GroupID, groupID) && matchField(e.ArtifactID, artifactID)
}

func matchField(pattern string, value string) bool {
	return pattern == Wildcard || pattern == value
}
