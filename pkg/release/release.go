package release

import (
	"strings"

	"github.com/matzehuels/releasedeck/pkg/integrations/github"
)

// Widget labels for [Latest] when there is no version to show.
const (
	NoTagsLabel = "No tags found"
	ErrorLabel  = "Error"
)

// Release is one published version of the library.
type Release struct {
	// ID is the 1-based position among the kept tags. It differs from the
	// upstream array index once an empty or duplicate tag has been dropped.
	ID          int           `json:"id"`
	Name        string        `json:"name"` // Tag name, also the version label
	Commit      github.Commit `json:"commit"`
	ZipballURL  string        `json:"zipball_url"`
	TarballURL  string        `json:"tarball_url"`
	ArtifactURL string        `json:"artifact_url"`
}

// FromTags maps tags into releases, preserving order. Tags with an empty
// name are dropped and duplicate names keep their first occurrence. IDs are
// assigned after filtering so they stay contiguous.
func FromTags(p Project, tags []github.Tag) []Release {
	out := make([]Release, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		name := strings.TrimSpace(t.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, Release{
			ID:          len(out) + 1,
			Name:        name,
			Commit:      t.Commit,
			ZipballURL:  t.ZipballURL,
			TarballURL:  t.TarballURL,
			ArtifactURL: p.ArtifactURL(name),
		})
	}
	return out
}

// Latest returns the label of the newest release. A fetch error yields
// [ErrorLabel]; an empty list yields [NoTagsLabel].
func Latest(releases []Release, err error) string {
	switch {
	case err != nil:
		return ErrorLabel
	case len(releases) == 0:
		return NoTagsLabel
	default:
		return releases[0].Name
	}
}

// Find returns the release with the given tag name.
func Find(releases []Release, name string) (Release, bool) {
	for _, r := range releases {
		if r.Name == name {
			return r, true
		}
	}
	return Release{}, false
}

// ByID returns the release with the given ID.
func ByID(releases []Release, id int) (Release, bool) {
	for _, r := range releases {
		if r.ID == id {
			return r, true
		}
	}
	return Release{}, false
}
