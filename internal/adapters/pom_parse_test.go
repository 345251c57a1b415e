package adapters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maven-depman/internal/types"
)

func TestParsePomDocument(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<project xmlns="http://maven.apache.org/POM/4.0.0">
  <groupId>io.spring.platform</groupId>
  <artifactId>platform-bom</artifactId>
  <version>1.0.3.RELEASE</version>
  <properties>
    <spring.version>4.3.13.RELEASE</spring.version>
  </properties>
  <dependencyManagement>
    <dependencies>
      <dependency>
        <groupId>org.springframework</groupId>
        <artifactId>spring-core</artifactId>
        <version>${spring.version}</version>
        <exclusions>
          <exclusion>
            <groupId>commons-logging</groupId>
            <artifactId>commons-logging</artifactId>
          </exclusion>
        </exclusions>
      </dependency>
      <dependency>
        <groupId>io.spring.platform</groupId>
        <artifactId>extra-bom</artifactId>
        <version>2.0</version>
        <scope>import</scope>
        <type>pom</type>
      </dependency>
    </dependencies>
  </dependencyManagement>
</project>`)

	doc, err := ParsePomDocument(data)
	require.NoError(t, err)

	assert.Equal(t, "io.spring.platform:platform-bom:1.0.3.RELEASE", doc.Coordinates.String())
	assert.Equal(t, "4.3.13.RELEASE", doc.Properties["spring.version"])

	require.Len(t, doc.Management, 2)
	core := doc.Management[0]
	assert.Equal(t, "${spring.version}", core.Version)
	assert.False(t, core.IsBomImport())
	require.Len(t, core.Exclusions, 1)
	assert.Equal(t, "commons-logging", core.Exclusions[0].GroupID)
	assert.True(t, doc.Management[1].IsBomImport())
}

func TestParsePomDocumentPublishesProjectProperties(t *testing.T) {
	doc, err := ParsePomDocument([]byte(`<project>
  <groupId>demo</groupId>
  <artifactId>thing</artifactId>
  <version>1.0</version>
</project>`))
	require.NoError(t, err)

	assert.Equal(t, "demo", doc.Properties["project.groupId"])
	assert.Equal(t, "thing", doc.Properties["project.artifactId"])
	assert.Equal(t, "1.0", doc.Properties["project.version"])
}

func TestParsePomDocumentInheritsFromParent(t *testing.T) {
	doc, err := ParsePomDocument([]byte(`<project>
  <parent>
    <groupId>demo</groupId>
    <artifactId>parent</artifactId>
    <version>3.1</version>
  </parent>
  <artifactId>child-bom</artifactId>
</project>`))
	require.NoError(t, err)

	assert.Equal(t, types.Coordinates{GroupID: "demo", ArtifactID: "child-bom", Version: "3.1"}, doc.Coordinates)
}

func TestParsePomDocumentRejectsInvalidInput(t *testing.T) {
	_, err := ParsePomDocument([]byte("<project><groupId>demo</groupId>"))
	require.Error(t, err)

	_, err = ParsePomDocument([]byte("<project><version>1.0</version></project>"))
	require.Error(t, err)
}
