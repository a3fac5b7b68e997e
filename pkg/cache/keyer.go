package cache

import "strings"

// Keyer generates cache keys.
type Keyer interface {
	// TagsKey generates a key for the tag list of a repository.
	TagsKey(apiURL, owner, repo string) string
}

// DefaultKeyer produces the key layout used by the CLI.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key layout.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// TagsKey hashes the API base URL so that GitHub Enterprise hosts and
// github.com never share entries for the same owner/repo.
func (DefaultKeyer) TagsKey(apiURL, owner, repo string) string {
	return hashKey("tags", strings.TrimRight(apiURL, "/"), strings.ToLower(owner), strings.ToLower(repo))
}
