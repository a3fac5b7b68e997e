package github

import (
	"regexp"
	"strings"

	apperr "github.com/matzehuels/releasedeck/pkg/errors"
	"github.com/matzehuels/releasedeck/pkg/integrations"
)

// Regex patterns for GitHub resource validation.
var (
	// GitHub usernames/orgs: 1-39 alphanumeric or hyphen, not starting with hyphen
	validOwner = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{0,38}$`)
	// GitHub repo names: 1-100 alphanumeric, hyphen, underscore, or dot
	validRepo = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,100}$`)
)

// ValidateOwner validates a GitHub username or organization name.
func ValidateOwner(owner string) error {
	if owner == "" {
		return apperr.New(apperr.ErrCodeInvalidRepo, "owner is required")
	}
	if !validOwner.MatchString(owner) {
		return apperr.New(apperr.ErrCodeInvalidRepo, "invalid owner %q: must be 1-39 alphanumeric characters or hyphens, cannot start with hyphen", owner)
	}
	return nil
}

// ValidateRepo validates a GitHub repository name.
func ValidateRepo(repo string) error {
	if repo == "" {
		return apperr.New(apperr.ErrCodeInvalidRepo, "repo is required")
	}
	if repo == "." || repo == ".." || !validRepo.MatchString(repo) {
		return apperr.New(apperr.ErrCodeInvalidRepo, "invalid repo %q: must be 1-100 alphanumeric characters, hyphens, underscores, or dots", repo)
	}
	return nil
}

// ValidateRepoRef validates both owner and repo parameters.
func ValidateRepoRef(owner, repo string) error {
	if err := ValidateOwner(owner); err != nil {
		return err
	}
	return ValidateRepo(repo)
}

// ParseRepoRef parses "owner/repo" or a GitHub repository URL
// (https, git@ or git:// form) and validates both parts.
func ParseRepoRef(ref string) (owner, repo string, err error) {
	ref = integrations.NormalizeRepoURL(ref)
	ref = strings.TrimPrefix(ref, "https://github.com/")
	ref = strings.TrimPrefix(ref, "http://github.com/")
	ref = strings.TrimSuffix(ref, "/")

	parts := strings.Split(ref, "/")
	if len(parts) != 2 {
		return "", "", apperr.New(apperr.ErrCodeInvalidRepo, "invalid repo reference %q: use owner/repo", ref)
	}
	owner, repo = parts[0], parts[1]
	if err := ValidateRepoRef(owner, repo); err != nil {
		return "", "", err
	}
	return owner, repo, nil
}
