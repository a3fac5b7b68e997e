// Package pkg provides the libraries behind releasedeck, a terminal release
// browser for a published JVM library.
//
// # Overview
//
// releasedeck reads a repository's tags from the GitHub API, turns each tag
// into a release with build-tool snippets and download links, and lets the
// user search, page through and open them. The pkg directory is organized
// into three areas:
//
//  1. Domain logic: [release] (tag mapping, snippets, links) and [browser]
//     (view state, reducer, text rendering)
//  2. [integrations] - External API clients (GitHub tags)
//  3. Infrastructure: [cache], [httputil], [errors], [observability],
//     [buildinfo]
//
// # Architecture
//
// The data flow through releasedeck:
//
//	GitHub /repos/{owner}/{repo}/tags
//	         ↓
//	    [integrations/github] (fetch, cache, retry)
//	         ↓
//	    [release] (FromTags: IDs, artifact URLs)
//	         ↓
//	    [browser] (Reduce: query, page, selection)
//	         ↓
//	    Render / Snapshot (text or JSON)
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/releasedeck/pkg/browser"
//	    "github.com/matzehuels/releasedeck/pkg/integrations/github"
//	    "github.com/matzehuels/releasedeck/pkg/release"
//	)
//
//	p := release.DefaultProject()
//	client := github.NewClient(github.Options{})
//	tags, err := client.ListTags(ctx, p.Owner, p.Repo, false)
//
//	s := browser.New()
//	s = browser.Reduce(s, browser.FetchStarted{RequestID: "1"})
//	if err != nil {
//	    s = browser.Reduce(s, browser.FetchFailed{RequestID: "1", Err: err})
//	} else {
//	    s = browser.Reduce(s, browser.FetchSucceeded{RequestID: "1", Releases: release.FromTags(p, tags)})
//	}
//	s = browser.Reduce(s, browser.QueryChanged{Query: "1."})
//	fmt.Print(browser.Render(s, p, browser.RenderOptions{}))
//
// # Main Packages
//
// [release] - The release record derived from a tag, the project
// coordinates (owner, repository, Maven group and artifact) and the
// Gradle/Maven snippets and download links built from them.
//
// [browser] - A pure reducer over an explicit view state. Fetch results
// carry a request ID so results from superseded or disposed fetches are
// dropped. Rendering and JSON snapshots are derived from the state only.
//
// [integrations] - Shared HTTP client plumbing; [integrations/github]
// lists repository tags.
//
// [cache] - Cache backends for HTTP responses: filesystem, Redis and a
// no-op backend.
//
// # Error Handling
//
// Errors carry a [errors.Code] for programmatic handling. Network and
// decode failures never reach the browser view; they are logged and the
// list is shown empty.
//
// [release]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/release
// [browser]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/browser
// [integrations]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/integrations
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/integrations/github
// [cache]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/errors
// [errors.Code]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/errors#Code
// [observability]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/releasedeck/pkg/buildinfo
package pkg
