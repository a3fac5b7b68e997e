// Package integrations provides HTTP clients for the remote APIs releasedeck reads.
//
// # Overview
//
// The [Client] type holds the shared plumbing: default headers, a timeout,
// response caching through [cache.Cache], retry of transient failures and
// observability hooks. API-specific clients embed it:
//
//   - [github]: repository tags
//
// # Client Pattern
//
//	client := github.NewClient(github.Options{Cache: c, CacheTTL: time.Hour})
//	tags, err := client.ListTags(ctx, "Sandro642", "ConnectLib", false) // false = use cache
//
// # Errors
//
// Status codes are mapped onto sentinel errors: 404 is [ErrNotFound],
// transport failures and 5xx are retryable [ErrNetwork], and an exhausted
// quota is a [errors.RateLimitedError].
//
// [github]: github.com/matzehuels/releasedeck/pkg/integrations/github
// [cache.Cache]: github.com/matzehuels/releasedeck/pkg/cache.Cache
// [errors.RateLimitedError]: github.com/matzehuels/releasedeck/pkg/errors.RateLimitedError
package integrations
