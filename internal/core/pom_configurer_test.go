package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maven-depman/internal/properties"
	"maven-depman/internal/types"
)

const emptyProject = "<project></project>"

func configurePom(t *testing.T, container *DependencyManagementContainer, resolver *BomResolverCore, current properties.Source, declarations []types.DependencyDeclaration, existing string, settings PomCustomizationSettings) *etree.Document {
	t.Helper()
	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(existing))
	configurer := NewPomConfigurerCore(container, NewOverrideDiffCore(resolver), settings)
	require.NoError(t, configurer.ConfigurePom(t.Context(), current, declarations, doc))
	return doc
}

func textAt(t *testing.T, doc *etree.Document, path string) string {
	t.Helper()
	element := doc.FindElement(path)
	require.NotNil(t, element, "no element at %s", path)
	return element.Text()
}

func managedNodes(doc *etree.Document) []*etree.Element {
	return doc.FindElements("project/dependencyManagement/dependencies/dependency")
}

func TestConfigurePomWritesBomImport(t *testing.T) {
	bom := pom("io.spring.platform", "platform-bom", "1.0.3.RELEASE")
	resolver := NewBomResolverCore(newTestPomRepo(bom))
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.ImportBom("", bom.Coordinates, nil))

	doc := configurePom(t, container, resolver, properties.Empty, nil, emptyProject, NewPomCustomizationSettings())

	prefix := "project/dependencyManagement/dependencies/dependency/"
	assert.Equal(t, "io.spring.platform", textAt(t, doc, prefix+"groupId"))
	assert.Equal(t, "platform-bom", textAt(t, doc, prefix+"artifactId"))
	assert.Equal(t, "1.0.3.RELEASE", textAt(t, doc, prefix+"version"))
	assert.Equal(t, "import", textAt(t, doc, prefix+"scope"))
	assert.Equal(t, "pom", textAt(t, doc, prefix+"type"))
}

func TestConfigurePomWritesImportsInReverseOrder(t *testing.T) {
	bravo := pom("test", "bravo-bom", "1.0")
	alpha := pom("test", "alpha-bom", "1.0")
	resolver := NewBomResolverCore(newTestPomRepo(bravo, alpha))
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.ImportBom("", bravo.Coordinates, nil))
	require.NoError(t, container.ImportBom("", alpha.Coordinates, nil))

	doc := configurePom(t, container, resolver, properties.Empty, nil, emptyProject, NewPomCustomizationSettings())

	base := "project/dependencyManagement/dependencies/"
	assert.Equal(t, "alpha-bom", textAt(t, doc, base+"dependency[1]/artifactId"))
	assert.Equal(t, "bravo-bom", textAt(t, doc, base+"dependency[2]/artifactId"))
}

func TestConfigurePomDisabled(t *testing.T) {
	bom := pom("io.spring.platform", "platform-bom", "1.0.3.RELEASE")
	resolver := NewBomResolverCore(newTestPomRepo(bom))
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.ImportBom("", bom.Coordinates, nil))

	doc := configurePom(t, container, resolver, properties.Empty, nil, emptyProject, PomCustomizationSettings{Enabled: false})
	assert.Empty(t, managedNodes(doc))
}

func TestConfigurePomWritesPlainOverrideWithoutScopeOrType(t *testing.T) {
	resolver := NewBomResolverCore(newTestPomRepo())
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.AddManagedVersion("", "org.springframework", "spring-core", "4.1.3.RELEASE", nil))

	doc := configurePom(t, container, resolver, properties.Empty, nil, emptyProject, NewPomCustomizationSettings())

	prefix := "project/dependencyManagement/dependencies/dependency/"
	assert.Equal(t, "org.springframework", textAt(t, doc, prefix+"groupId"))
	assert.Equal(t, "spring-core", textAt(t, doc, prefix+"artifactId"))
	assert.Equal(t, "4.1.3.RELEASE", textAt(t, doc, prefix+"version"))
	assert.Nil(t, doc.FindElement(prefix+"scope"))
	assert.Nil(t, doc.FindElement(prefix+"type"))
}

func TestConfigurePomWritesExclusions(t *testing.T) {
	resolver := NewBomResolverCore(newTestPomRepo())
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.AddManagedVersion("", "org.springframework", "spring-core", "4.1.3.RELEASE", []types.Exclusion{
		{GroupID: "commons-logging", ArtifactID: "commons-logging"},
		{GroupID: "com.example", ArtifactID: "*"},
	}))

	doc := configurePom(t, container, resolver, properties.Empty, nil, emptyProject, NewPomCustomizationSettings())

	base := "project/dependencyManagement/dependencies/dependency/exclusions/"
	assert.Equal(t, "commons-logging", textAt(t, doc, base+"exclusion[1]/groupId"))
	assert.Equal(t, "commons-logging", textAt(t, doc, base+"exclusion[1]/artifactId"))
	assert.Equal(t, "com.example", textAt(t, doc, base+"exclusion[2]/groupId"))
	assert.Equal(t, "*", textAt(t, doc, base+"exclusion[2]/artifactId"))
}

func TestConfigurePomAugmentsExistingDependencyManagement(t *testing.T) {
	bom := pom("io.spring.platform", "platform-bom", "1.0.3.RELEASE")
	resolver := NewBomResolverCore(newTestPomRepo(bom))
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.ImportBom("", bom.Coordinates, nil))

	existing := "<project><dependencyManagement><dependencies>" +
		"<dependency><groupId>test</groupId><artifactId>manual</artifactId><version>1.0</version></dependency>" +
		"</dependencies></dependencyManagement></project>"
	doc := configurePom(t, container, resolver, properties.Empty, nil, existing, NewPomCustomizationSettings())

	nodes := managedNodes(doc)
	require.Len(t, nodes, 2)
	// Pre-existing manually-authored entries stay first, untouched.
	base := "project/dependencyManagement/dependencies/"
	assert.Equal(t, "manual", textAt(t, doc, base+"dependency[1]/artifactId"))
	assert.Equal(t, "platform-bom", textAt(t, doc, base+"dependency[2]/artifactId"))
}

func TestConfigurePomEmitsOverrideDiffNodes(t *testing.T) {
	bom := springBom()
	resolver := NewBomResolverCore(newTestPomRepo(bom))
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.ImportBom("", bom.Coordinates, nil))

	current := properties.MapSource{"spring.version": "4.3.5.RELEASE"}
	doc := configurePom(t, container, resolver, current, nil, emptyProject, NewPomCustomizationSettings())

	nodes := managedNodes(doc)
	require.Len(t, nodes, 3)
	base := "project/dependencyManagement/dependencies/"
	for _, prefix := range []string{base + "dependency[1]/", base + "dependency[2]/"} {
		assert.Equal(t, "org.springframework", textAt(t, doc, prefix+"groupId"))
		assert.Equal(t, "4.3.5.RELEASE", textAt(t, doc, prefix+"version"))
	}
	assert.Equal(t, "spring-boot-dependencies", textAt(t, doc, base+"dependency[3]/artifactId"))
	assert.Equal(t, "import", textAt(t, doc, base+"dependency[3]/scope"))
}

func TestConfigurePomEmitsNewlyManagedArtifactOnce(t *testing.T) {
	branch1 := pom("demo", "branch-bom", "1.0")
	branch1.Management = []types.PomManagedDependency{entry("demo", "feature", "1.0")}
	branch2 := pom("demo", "branch-bom", "2.0")
	branch2.Management = []types.PomManagedDependency{
		entry("demo", "feature", "1.0"),
		entry("demo", "extra", "2.0"),
	}
	parent := pom("demo", "parent-bom", "1.0")
	parent.Properties = map[string]string{"branch.version": "1.0"}
	parent.Management = []types.PomManagedDependency{
		bomImport("demo", "branch-bom", "${branch.version}"),
	}
	resolver := NewBomResolverCore(newTestPomRepo(branch1, branch2, parent))
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.ImportBom("", parent.Coordinates, nil))

	current := properties.MapSource{"branch.version": "2.0"}
	doc := configurePom(t, container, resolver, current, nil, emptyProject, NewPomCustomizationSettings())

	count := 0
	for _, node := range managedNodes(doc) {
		if artifact := node.SelectElement("artifactId"); artifact != nil && artifact.Text() == "extra" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestConfigurePomBomOverridingBomNeedsNoExplicitOverride(t *testing.T) {
	first, second := firstAlphaBoms()
	resolver := NewBomResolverCore(newTestPomRepo(first, second))
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.ImportBom("", first.Coordinates, nil))
	require.NoError(t, container.ImportBom("", second.Coordinates, nil))

	doc := configurePom(t, container, resolver, properties.Empty, nil, emptyProject, NewPomCustomizationSettings())
	assert.Len(t, managedNodes(doc), 2)
}

func TestConfigurePomExplicitOverrideShadowsDiffNode(t *testing.T) {
	bom := springBom()
	resolver := NewBomResolverCore(newTestPomRepo(bom))
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.ImportBom("", bom.Coordinates, nil))
	require.NoError(t, container.AddManagedVersion("", "org.springframework", "spring-core", "4.0.0.RELEASE", nil))

	current := properties.MapSource{"spring.version": "4.3.5.RELEASE"}
	doc := configurePom(t, container, resolver, current, nil, emptyProject, NewPomCustomizationSettings())

	var versions []string
	for _, node := range managedNodes(doc) {
		if artifact := node.SelectElement("artifactId"); artifact != nil && artifact.Text() == "spring-core" {
			versions = append(versions, node.SelectElement("version").Text())
		}
	}
	assert.Equal(t, []string{"4.0.0.RELEASE"}, versions)
}

func TestConfigurePomExpandsClassifiers(t *testing.T) {
	resolver := NewBomResolverCore(newTestPomRepo())
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.AddManagedVersion("", "org.apache.logging.log4j", "log4j-core", "2.6", nil))

	declarations := []types.DependencyDeclaration{
		{GroupID: "org.apache.logging.log4j", ArtifactID: "log4j-core", Classifier: "test"},
	}
	doc := configurePom(t, container, resolver, properties.Empty, declarations, emptyProject, NewPomCustomizationSettings())

	nodes := managedNodes(doc)
	require.Len(t, nodes, 2)
	base := "project/dependencyManagement/dependencies/"
	assert.Nil(t, doc.FindElement(base+"dependency[1]/classifier"))
	assert.Equal(t, "2.6", textAt(t, doc, base+"dependency[1]/version"))
	assert.Equal(t, "test", textAt(t, doc, base+"dependency[2]/classifier"))
	assert.Equal(t, "2.6", textAt(t, doc, base+"dependency[2]/version"))
}

func TestConfigurePomFailsWithoutRoot(t *testing.T) {
	resolver := NewBomResolverCore(newTestPomRepo())
	container := NewDependencyManagementContainer(resolver)
	configurer := NewPomConfigurerCore(container, NewOverrideDiffCore(resolver), NewPomCustomizationSettings())

	err := configurer.ConfigurePom(t.Context(), properties.Empty, nil, etree.NewDocument())
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}

func TestConfigurePomLeavesTreeUntouchedOnResolutionFailure(t *testing.T) {
	resolver := NewBomResolverCore(newTestPomRepo())
	container := NewDependencyManagementContainer(resolver)
	require.NoError(t, container.ImportBom("", types.Coordinates{GroupID: "demo", ArtifactID: "gone", Version: "1.0"}, nil))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromString(emptyProject))
	before, err := doc.WriteToString()
	require.NoError(t, err)

	configurer := NewPomConfigurerCore(container, NewOverrideDiffCore(resolver), NewPomCustomizationSettings())
	require.Error(t, configurer.ConfigurePom(t.Context(), properties.Empty, nil, doc))

	after, err := doc.WriteToString()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
