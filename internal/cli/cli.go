// Package cli implements the releasedeck command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/releasedeck/internal/config"
	"github.com/matzehuels/releasedeck/pkg/cache"
	"github.com/matzehuels/releasedeck/pkg/integrations/github"
	"github.com/matzehuels/releasedeck/pkg/release"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "releasedeck"

	// redisKeyPrefix scopes cache keys on a shared Redis instance.
	redisKeyPrefix = appName + ":"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	logOut io.Writer

	configPath string
	repo       string
	noCache    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), logOut: w}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Deck - per-command wiring
// =============================================================================

// deck bundles what a command needs to fetch and show releases.
type deck struct {
	cfg     *config.Config
	project release.Project
	client  *github.Client
	cache   cache.Cache
	logger  *log.Logger
}

// openDeck loads the configuration, applies the repo argument or flag, and
// builds the cache and GitHub client. Callers must Close the deck.
func (c *CLI) openDeck(ctx context.Context, args []string) (*deck, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	project := cfg.Project
	ref := c.repo
	if len(args) > 0 {
		ref = args[0]
	}
	if ref != "" {
		owner, repo, err := github.ParseRepoRef(ref)
		if err != nil {
			return nil, err
		}
		project.Owner, project.Repo = owner, repo
	}

	store, err := c.newCache(ctx, cfg.Cache)
	if err != nil {
		return nil, err
	}

	var keyer cache.Keyer
	if cfg.Cache.Backend == cache.BackendRedis {
		keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), redisKeyPrefix)
	}

	return &deck{
		cfg:     cfg,
		project: project,
		cache:   store,
		logger:  c.Logger,
		client: github.NewClient(github.Options{
			APIURL:   cfg.GitHub.APIURL,
			Token:    cfg.GitHub.Token,
			Cache:    store,
			CacheTTL: cfg.Cache.TTL.Duration,
			Keyer:    keyer,
		}),
	}, nil
}

// fetch lists the project's tags and maps them into releases.
func (d *deck) fetch(ctx context.Context, refresh bool) ([]release.Release, error) {
	tags, err := d.client.ListTags(ctx, d.project.Owner, d.project.Repo, refresh)
	if err != nil {
		return nil, err
	}
	return release.FromTags(d.project, tags), nil
}

// fetchOrEmpty is fetch with the browser's failure semantics: the error is
// logged and an empty list is returned. Cancellation is still reported.
func (d *deck) fetchOrEmpty(ctx context.Context, refresh bool) ([]release.Release, error) {
	releases, err := d.fetch(ctx, refresh)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		d.logger.Warn("fetch releases failed", "repo", d.project.Slug(), "err", err)
		return []release.Release{}, err
	}
	return releases, nil
}

func (d *deck) Close() error {
	return d.cache.Close()
}

// =============================================================================
// Factories
// =============================================================================

func (c *CLI) loadConfig() (*config.Config, error) {
	if c.configPath != "" {
		return config.Load(c.configPath, true)
	}
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	return config.Load(path, false)
}

// newCache opens the configured backend. --no-cache always wins. A file
// cache that cannot be placed, or a Redis server that does not answer,
// degrades to no caching with a warning.
func (c *CLI) newCache(ctx context.Context, cfg config.Cache) (cache.Cache, error) {
	if c.noCache {
		return cache.NewNullCache(), nil
	}

	switch cfg.Backend {
	case cache.BackendNone:
		return cache.NewNullCache(), nil
	case cache.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cfg.RedisURL)
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "err", err)
			return cache.NewNullCache(), nil
		}
		return rc, nil
	case cache.BackendFile:
		dir, err := cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			c.Logger.Warn("file cache unavailable, continuing without cache", "dir", dir, "err", err)
			return cache.NewNullCache(), nil
		}
		return fc, nil
	default:
		return nil, cache.ErrUnknownBackend
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/releasedeck/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
