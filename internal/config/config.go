// Package config loads the releasedeck configuration file.
//
// The file is TOML, read from $XDG_CONFIG_HOME/releasedeck/config.toml
// (falling back to ~/.config/releasedeck/config.toml):
//
//	[project]
//	owner       = "Sandro642"
//	repo        = "ConnectLib"
//	pages_url   = "https://sandro642.github.io/connectlib/jar"
//	group_id    = "fr.sandro642.github"
//	artifact_id = "ConnectLib"
//
//	[github]
//	api_url = "https://api.github.com"
//	token   = ""
//
//	[cache]
//	backend   = "file" # file, redis or none
//	ttl       = "1h"
//	redis_url = "redis://localhost:6379/0"
//
// Missing keys take their defaults. GITHUB_TOKEN, when set, replaces
// github.token.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/releasedeck/pkg/cache"
	apperr "github.com/matzehuels/releasedeck/pkg/errors"
	"github.com/matzehuels/releasedeck/pkg/integrations/github"
	"github.com/matzehuels/releasedeck/pkg/release"
)

const (
	appName  = "releasedeck"
	fileName = "config.toml"

	// DefaultCacheTTL is how long fetched tag lists are reused.
	DefaultCacheTTL = time.Hour

	// TokenEnv overrides github.token.
	TokenEnv = "GITHUB_TOKEN"
)

// Config is the effective configuration.
type Config struct {
	Project release.Project `toml:"project"`
	GitHub  GitHub          `toml:"github"`
	Cache   Cache           `toml:"cache"`
}

// GitHub holds API access settings.
type GitHub struct {
	APIURL string `toml:"api_url"`
	Token  string `toml:"token,omitempty"`
}

// Cache selects and tunes the response cache backend.
type Cache struct {
	Backend  string   `toml:"backend"`
	TTL      Duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url,omitempty"`
}

// Duration is a time.Duration written as a Go duration string ("90m").
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Project: release.DefaultProject(),
		GitHub:  GitHub{APIURL: github.DefaultAPIURL},
		Cache: Cache{
			Backend: cache.BackendFile,
			TTL:     Duration{DefaultCacheTTL},
		},
	}
}

// DefaultPath returns the config file location following the XDG layout.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Load reads the file at path on top of the defaults. A missing file is not
// an error unless required is set. Environment overrides are applied and the
// result is validated.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !required:
	case err != nil:
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read config %s", path)
	default:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, apperr.New(apperr.ErrCodeInvalidConfig, "unknown config key %q in %s", undecoded[0].String(), path)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML from r on top of the defaults without touching the
// environment.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse config")
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.Project = c.Project.WithDefaults()
	if c.GitHub.APIURL == "" {
		c.GitHub.APIURL = github.DefaultAPIURL
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = cache.BackendFile
	}
}

func (c *Config) applyEnv(getenv func(string) string) {
	if tok := getenv(TokenEnv); tok != "" {
		c.GitHub.Token = tok
	}
}

// Validate rejects settings the commands cannot run with.
func (c *Config) Validate() error {
	if err := c.Project.Validate(); err != nil {
		return err
	}
	if err := apperr.ValidateURL(c.GitHub.APIURL); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "github api_url")
	}

	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendNone:
	case cache.BackendRedis:
		if c.Cache.RedisURL == "" {
			return apperr.New(apperr.ErrCodeInvalidConfig, "cache.redis_url is required for the redis backend")
		}
	default:
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, cache.ErrUnknownBackend, "cache.backend %q", c.Cache.Backend)
	}
	if c.Cache.TTL.Duration <= 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "cache.ttl must be positive, got %s", c.Cache.TTL)
	}
	return nil
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() *Config {
	out := *c
	if out.GitHub.Token != "" {
		out.GitHub.Token = "********"
	}
	return &out
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
