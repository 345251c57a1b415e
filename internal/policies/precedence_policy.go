package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"maven-depman/internal/types"
)

// MergeManaged deduplicates a management table walked in precedence order:
// the first entry seen for a (group, artifact, classifier) key wins and
// later duplicates are discarded. Callers arrange the walk so that
// explicit overrides precede BOM entries and more recent imports precede
// earlier ones.
func MergeManaged(entries []types.ManagedDependency) []types.ManagedDependency {
	seen := map[string]struct{}{}
	out := make([]types.ManagedDependency, 0, len(entries))
	for _, entry := range entries {
		key := entry.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, entry)
	}
	return out
}

// ExpandClassifiers appends, for every classified build declaration whose
// artifact has a classifier-less managed entry, a copy of that entry with
// the classifier set. The base entry is left unchanged so both the default
// artifact and its classified variant are pinned to the same version.
func ExpandClassifiers(entries []types.ManagedDependency, declarations []types.DependencyDeclaration) []types.ManagedDependency {
	if len(declarations) == 0 {
		return entries
	}
	base := map[string]types.ManagedDependency{}
	for _, entry := range entries {
		if entry.Classifier != "" {
			continue
		}
		if _, ok := base[entry.ArtifactKey()]; !ok {
			base[entry.ArtifactKey()] = entry
		}
	}
	managed := map[string]struct{}{}
	for _, entry := range entries {
		managed[entry.Key()] = struct{}{}
	}
	out := entries
	for _, declaration := range declarations {
		if declaration.Classifier == "" {
			continue
		}
		entry, ok := base[declaration.GroupID+":"+declaration.ArtifactID]
		if !ok {
			continue
		}
		expanded := entry
		expanded.Classifier = declaration.Classifier
		if _, ok := managed[expanded.Key()]; ok {
			continue
		}
		managed[expanded.Key()] = struct{}{}
		out = append(out, expanded)
	}
	return out
}

// ApplyOverride validates an explicit managed-version request and renders
// it as an override record.
func ApplyOverride(requestedBy string, groupID string, artifactID string, version string, scope string, depType string, exclusions []types.Exclusion) (types.OverrideRecord, error) {
	groupID = strings.TrimSpace(groupID)
	artifactID = strings.TrimSpace(artifactID)
	version = strings.TrimSpace(version)
	if groupID == "" || artifactID == "" {
		return types.OverrideRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("managed version requires a group and artifact")
	}
	if version == "" {
		return types.OverrideRecord{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("managed version for %s:%s requires a version", groupID, artifactID))
	}
	return types.OverrideRecord{
		RequestedBy: requestedBy,
		GroupID:     groupID,
		ArtifactID:  artifactID,
		Version:     version,
		Scope:       strings.TrimSpace(scope),
		Type:        strings.TrimSpace(depType),
		Exclusions:  append([]types.Exclusion(nil), exclusions...),
	}, nil
}
