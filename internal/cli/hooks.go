package cli

import (
	"context"
	"time"

	"github.com/matzehuels/releasedeck/pkg/observability"
)

// registerDebugHooks routes library events to the logger carried on each
// call's context.
func registerDebugHooks() {
	h := debugHooks{}
	observability.SetFetchHooks(h)
	observability.SetCacheHooks(h)
	observability.SetHTTPHooks(h)
}

type debugHooks struct{}

func (debugHooks) OnFetchStart(ctx context.Context, owner, repo string) {
	loggerFromContext(ctx).Debug("fetching tags", "repo", owner+"/"+repo)
}

func (debugHooks) OnFetchComplete(ctx context.Context, owner, repo string, count int, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("fetch failed", "repo", owner+"/"+repo, "took", d.Round(time.Millisecond), "err", err)
		return
	}
	l.Debug("fetched tags", "repo", owner+"/"+repo, "count", count, "took", d.Round(time.Millisecond))
}

func (debugHooks) OnCacheHit(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache hit", "ns", keyType)
}

func (debugHooks) OnCacheMiss(ctx context.Context, keyType string) {
	loggerFromContext(ctx).Debug("cache miss", "ns", keyType)
}

func (debugHooks) OnCacheSet(ctx context.Context, keyType string, size int) {
	loggerFromContext(ctx).Debug("cache set", "ns", keyType, "bytes", size)
}

func (debugHooks) OnRequest(ctx context.Context, method, host, path string) {
	loggerFromContext(ctx).Debug("http request", "method", method, "host", host, "path", path)
}

func (debugHooks) OnResponse(ctx context.Context, method, host, path string, status int, d time.Duration) {
	loggerFromContext(ctx).Debug("http response", "method", method, "path", path, "status", status, "took", d.Round(time.Millisecond))
}

func (debugHooks) OnError(ctx context.Context, method, host, path string, err error) {
	loggerFromContext(ctx).Debug("http error", "method", method, "host", host, "path", path, "err", err)
}
