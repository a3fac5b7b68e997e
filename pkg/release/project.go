package release

import (
	"fmt"
	"strings"

	apperr "github.com/matzehuels/releasedeck/pkg/errors"
	"github.com/matzehuels/releasedeck/pkg/integrations/github"
)

// Default coordinates of the published library.
const (
	DefaultOwner      = "Sandro642"
	DefaultRepo       = "ConnectLib"
	DefaultPagesURL   = "https://sandro642.github.io/connectlib/jar"
	DefaultGroupID    = "fr.sandro642.github"
	DefaultArtifactID = "ConnectLib"
)

// Project identifies the repository and Maven coordinates of the library.
type Project struct {
	Owner      string `json:"owner" toml:"owner"`
	Repo       string `json:"repo" toml:"repo"`
	PagesURL   string `json:"pages_url" toml:"pages_url"`     // Maven repository base URL
	GroupID    string `json:"group_id" toml:"group_id"`       // e.g. fr.sandro642.github
	ArtifactID string `json:"artifact_id" toml:"artifact_id"` // e.g. ConnectLib
}

// DefaultProject returns the coordinates of ConnectLib.
func DefaultProject() Project {
	return Project{
		Owner:      DefaultOwner,
		Repo:       DefaultRepo,
		PagesURL:   DefaultPagesURL,
		GroupID:    DefaultGroupID,
		ArtifactID: DefaultArtifactID,
	}
}

// WithDefaults returns a copy of p with empty fields replaced by defaults.
func (p Project) WithDefaults() Project {
	d := DefaultProject()
	if p.Owner == "" {
		p.Owner = d.Owner
	}
	if p.Repo == "" {
		p.Repo = d.Repo
	}
	if p.PagesURL == "" {
		p.PagesURL = d.PagesURL
	}
	if p.GroupID == "" {
		p.GroupID = d.GroupID
	}
	if p.ArtifactID == "" {
		p.ArtifactID = d.ArtifactID
	}
	p.PagesURL = strings.TrimRight(p.PagesURL, "/")
	return p
}

// Validate checks the repository reference and the pages URL.
func (p Project) Validate() error {
	if err := github.ValidateRepoRef(p.Owner, p.Repo); err != nil {
		return err
	}
	if err := apperr.ValidateURL(p.PagesURL); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "project pages_url")
	}
	if p.GroupID == "" || p.ArtifactID == "" {
		return apperr.New(apperr.ErrCodeInvalidConfig, "project group_id and artifact_id are required")
	}
	return nil
}

// Slug returns "owner/repo".
func (p Project) Slug() string {
	return p.Owner + "/" + p.Repo
}

// ArtifactURL returns the JAR location for version name on the pages-hosted
// Maven repository.
func (p Project) ArtifactURL(name string) string {
	group := strings.ReplaceAll(p.GroupID, ".", "/")
	return fmt.Sprintf("%s/%s/%s/%s/%s-%s.jar",
		strings.TrimRight(p.PagesURL, "/"), group, p.ArtifactID, name, p.ArtifactID, name)
}

// ReleasePageURL returns the GitHub release page for tag name.
func (p Project) ReleasePageURL(name string) string {
	return fmt.Sprintf("https://github.com/%s/%s/releases/tag/%s", p.Owner, p.Repo, name)
}

// RepositoryID is the id used in the Maven repository block.
func (p Project) RepositoryID() string {
	return strings.ToLower(p.ArtifactID)
}
