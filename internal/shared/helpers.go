// Package shared provides common utility functions used across multiple
// packages in the maven-depman codebase.
package shared

import (
	"fmt"
	"strings"
)

// GroupPath converts a Maven group id into its repository directory form,
// e.g. "org.springframework" -> "org/springframework".
func GroupPath(groupID string) string {
	return strings.ReplaceAll(strings.TrimSpace(groupID), ".", "/")
}

// PomFileName returns the POM file name for an artifact/version pair in
// standard repository layout.
func PomFileName(artifactID string, version string) string {
	return fmt.Sprintf("%s-%s.pom", artifactID, version)
}

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}
