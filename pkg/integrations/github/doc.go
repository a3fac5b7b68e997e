// Package github provides an HTTP client for the GitHub tags API.
//
// # Usage
//
//	client := github.NewClient(github.Options{
//	    Token:    os.Getenv("GITHUB_TOKEN"),
//	    Cache:    c,
//	    CacheTTL: time.Hour,
//	})
//
//	tags, err := client.ListTags(ctx, "Sandro642", "ConnectLib", false)
//
// # Authentication
//
// A token is optional. Without one the API allows 60 requests per hour;
// exhausting the quota yields an [errors.RateLimitedError].
//
// # Caching
//
// Tag lists are cached under a key derived from the API URL, owner and repo.
// Pass refresh=true to bypass the cache.
//
// [errors.RateLimitedError]: github.com/matzehuels/releasedeck/pkg/errors.RateLimitedError
package github
