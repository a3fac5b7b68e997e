package release

import "strings"

// Snippet kinds.
const (
	Gradle = "gradle"
	Maven  = "maven"
)

// Snippet is a build-tool dependency declaration for one version.
type Snippet struct {
	Kind  string `json:"kind"`  // Gradle or Maven
	Label string `json:"label"` // Display title
	Code  string `json:"code"`
}

const gradleTemplate = `repositories {
    maven {
        url = "{url}"
    }
}

dependencies {
    implementation '{group}:{artifact}:{version}'
}`

const mavenTemplate = `<repository>
    <id>{id}</id>
    <url>{url}</url>
</repository>

<dependency>
    <groupId>{group}</groupId>
    <artifactId>{artifact}</artifactId>
    <version>{version}</version>
</dependency>`

// Snippets returns the Gradle and Maven snippets for version, in that order.
func (p Project) Snippets(version string) []Snippet {
	r := strings.NewReplacer(
		"{version}", version,
		"{url}", p.PagesURL,
		"{group}", p.GroupID,
		"{artifact}", p.ArtifactID,
		"{id}", p.RepositoryID(),
	)
	return []Snippet{
		{Kind: Gradle, Label: "Gradle", Code: r.Replace(gradleTemplate)},
		{Kind: Maven, Label: "Maven", Code: r.Replace(mavenTemplate)},
	}
}

// Snippet returns the snippet of the given kind ("gradle" or "maven").
func (p Project) Snippet(version, kind string) (Snippet, bool) {
	kind = strings.ToLower(kind)
	for _, s := range p.Snippets(version) {
		if s.Kind == kind {
			return s, true
		}
	}
	return Snippet{}, false
}
