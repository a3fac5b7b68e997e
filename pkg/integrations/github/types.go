package github

// Tag is one entry of GET /repos/{owner}/{repo}/tags.
type Tag struct {
	Name       string `json:"name"`
	ZipballURL string `json:"zipball_url"`
	TarballURL string `json:"tarball_url"`
	Commit     Commit `json:"commit"`
	NodeID     string `json:"node_id,omitempty"`
}

// Commit is the commit reference attached to a tag.
type Commit struct {
	SHA string `json:"sha"`
	URL string `json:"url"`
}
