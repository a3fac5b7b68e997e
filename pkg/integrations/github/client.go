package github

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/releasedeck/pkg/buildinfo"
	"github.com/matzehuels/releasedeck/pkg/cache"
	apperr "github.com/matzehuels/releasedeck/pkg/errors"
	"github.com/matzehuels/releasedeck/pkg/integrations"
	"github.com/matzehuels/releasedeck/pkg/observability"
)

// DefaultAPIURL is the public GitHub REST API.
const DefaultAPIURL = "https://api.github.com"

// tagsPerPage is sent as per_page. Only the first page is read.
const tagsPerPage = 100

// Options configures a Client.
type Options struct {
	// APIURL overrides DefaultAPIURL (GitHub Enterprise: https://host/api/v3).
	APIURL string

	// Token is an optional personal access token. Unauthenticated requests
	// are limited to 60 per hour.
	Token string

	// Cache stores tag responses. Nil disables caching.
	Cache cache.Cache

	// CacheTTL is how long a cached tag list stays fresh.
	CacheTTL time.Duration

	// Keyer generates cache keys. Nil uses cache.NewDefaultKeyer.
	Keyer cache.Keyer
}

// Client reads repository tags from the GitHub API.
// It handles HTTP requests with caching, automatic retries, and optional authentication.
type Client struct {
	*integrations.Client
	baseURL string
	keyer   cache.Keyer
}

// NewClient creates a GitHub API client.
func NewClient(opts Options) *Client {
	baseURL := strings.TrimRight(opts.APIURL, "/")
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	keyer := opts.Keyer
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}

	headers := map[string]string{
		"Accept":     "application/vnd.github.v3+json",
		"User-Agent": buildinfo.UserAgent(),
	}
	if opts.Token != "" {
		headers["Authorization"] = "Bearer " + opts.Token
	}

	return &Client{
		Client:  integrations.NewClient(opts.Cache, "github:", opts.CacheTTL, headers),
		baseURL: baseURL,
		keyer:   keyer,
	}
}

// BaseURL returns the API base URL in use.
func (c *Client) BaseURL() string { return c.baseURL }

// ListTags returns the repository's tags in API order (newest first).
// If refresh is true, cached data is bypassed.
func (c *Client) ListTags(ctx context.Context, owner, repo string, refresh bool) ([]Tag, error) {
	if err := ValidateRepoRef(owner, repo); err != nil {
		return nil, err
	}

	observability.Fetch().OnFetchStart(ctx, owner, repo)
	start := time.Now()

	var tags []Tag
	err := c.Cached(ctx, c.keyer.TagsKey(c.baseURL, owner, repo), refresh, &tags, func() error {
		return c.fetchTags(ctx, owner, repo, &tags)
	})

	observability.Fetch().OnFetchComplete(ctx, owner, repo, len(tags), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *Client) fetchTags(ctx context.Context, owner, repo string, tags *[]Tag) error {
	url := fmt.Sprintf("%s/repos/%s/%s/tags?per_page=%d", c.baseURL, owner, repo, tagsPerPage)

	var data []Tag
	if err := c.Get(ctx, url, &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return apperr.Wrap(apperr.ErrCodeNotFound, err, "github repo %s/%s", owner, repo)
		}
		return err
	}
	*tags = data
	return nil
}
