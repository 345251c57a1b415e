package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupPath(t *testing.T) {
	assert.Equal(t, "org/springframework", GroupPath("org.springframework"))
	assert.Equal(t, "demo", GroupPath(" demo "))
}

func TestPomFileName(t *testing.T) {
	assert.Equal(t, "spring-core-4.3.13.RELEASE.pom", PomFileName("spring-core", "4.3.13.RELEASE"))
}

func TestHTTPStatusError(t *testing.T) {
	err := HTTPStatusError(503, "http://repo/pom")
	assert.Contains(t, err.Error(), "status=503")
	assert.Contains(t, err.Error(), "http://repo/pom")
}
