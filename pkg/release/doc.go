// Package release maps repository tags into the release records shown by
// the browser.
//
// # Overview
//
// A [Release] is derived, never persisted: [FromTags] builds the list from
// the raw GitHub tags in upstream order (newest first) and assigns each
// entry a 1-based ID. A new fetch replaces the whole list.
//
// # Project Coordinates
//
// [Project] carries the GitHub repository and the Maven coordinates the
// library is published under. It derives everything a detail view needs:
//
//	p := release.DefaultProject()
//	p.ArtifactURL("v1.2")    // JAR on the pages-hosted Maven repository
//	p.ReleasePageURL("v1.2") // GitHub release page
//	p.Snippets("v1.2")       // Gradle and Maven dependency snippets
//	p.Links(r)               // JAR, ZIP, TAR, release page
//
// None of the derived links are checked for existence.
package release
