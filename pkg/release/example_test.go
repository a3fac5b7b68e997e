package release_test

import (
	"fmt"

	"github.com/matzehuels/releasedeck/pkg/integrations/github"
	"github.com/matzehuels/releasedeck/pkg/release"
)

func ExampleFromTags() {
	p := release.DefaultProject()
	releases := release.FromTags(p, []github.Tag{
		{Name: "v2.0"},
		{Name: "v1.1"},
		{Name: "v1.0"},
	})

	for _, r := range releases {
		fmt.Println(r.ID, r.Name)
	}
	fmt.Println("latest:", release.Latest(releases, nil))
	// Output:
	// 1 v2.0
	// 2 v1.1
	// 3 v1.0
	// latest: v2.0
}

func ExampleProject_ArtifactURL() {
	p := release.DefaultProject()
	fmt.Println(p.ArtifactURL("1.0.0"))
	fmt.Println(p.ReleasePageURL("1.0.0"))
	// Output:
	// https://sandro642.github.io/connectlib/jar/fr/sandro642/github/ConnectLib/1.0.0/ConnectLib-1.0.0.jar
	// https://github.com/Sandro642/ConnectLib/releases/tag/1.0.0
}

func ExampleProject_Snippets() {
	s, _ := release.DefaultProject().Snippet("1.0.0", release.Maven)
	fmt.Println(s.Code)
	// Output:
	// <repository>
	//     <id>connectlib</id>
	//     <url>https://sandro642.github.io/connectlib/jar</url>
	// </repository>
	//
	// <dependency>
	//     <groupId>fr.sandro642.github</groupId>
	//     <artifactId>ConnectLib</artifactId>
	//     <version>1.0.0</version>
	// </dependency>
}
