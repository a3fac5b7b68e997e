package browser_test

import (
	"fmt"

	"github.com/matzehuels/releasedeck/pkg/browser"
	"github.com/matzehuels/releasedeck/pkg/integrations/github"
	"github.com/matzehuels/releasedeck/pkg/release"
)

func ExampleReduce() {
	p := release.DefaultProject()
	rs := release.FromTags(p, []github.Tag{{Name: "v2.0"}, {Name: "v1.1"}, {Name: "v1.0"}})

	s := browser.New()
	s = browser.Reduce(s, browser.FetchStarted{RequestID: "a"})
	s = browser.Reduce(s, browser.FetchSucceeded{RequestID: "a", Releases: rs})
	s = browser.Reduce(s, browser.QueryChanged{Query: "v1"})

	for _, r := range s.Visible() {
		fmt.Println(r.ID, r.Name)
	}
	fmt.Println("pages:", s.PageCount())

	s = browser.Reduce(s, browser.Select{ID: 2})
	fmt.Println("view:", s.View(), s.Selected.Name)
	// Output:
	// 2 v1.1
	// 3 v1.0
	// pages: 1
	// view: detail v1.1
}
