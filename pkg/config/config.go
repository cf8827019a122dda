// Package config loads the krwl tooling configuration from TOML.
//
// Everything has a working default; a config file only needs to override the
// values it cares about. The placement section maps directly onto the engine
// tuning in pkg/callout.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/feileberlin/krwl.in-sub005/pkg/callout"
	"github.com/feileberlin/krwl.in-sub005/pkg/errors"
)

// Config is the full application configuration.
type Config struct {
	Placement callout.Config `toml:"placement"`
	Server    Server         `toml:"server"`
	Bookmarks Bookmarks      `toml:"bookmarks"`
}

// Server configures the HTTP preview API.
type Server struct {
	// Addr is the listen address, e.g. ":8710".
	Addr string `toml:"addr"`
}

// Bookmarks configures the bookmark store backend. RedisAddr takes
// precedence over Path when both are set.
type Bookmarks struct {
	// Path is the directory for the file-backed store.
	Path string `toml:"path"`

	// RedisAddr switches to the redis-backed store when non-empty.
	RedisAddr string `toml:"redis_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Placement: callout.DefaultConfig(),
		Server:    Server{Addr: ":8710"},
	}
}

// Load reads a TOML config file on top of the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}

	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// validate rejects tunings that would break placement invariants.
func validate(cfg Config) error {
	p := cfg.Placement
	if p.Padding < 0 || p.Margin < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "padding and margin must be non-negative")
	}
	if p.CalloutWidth <= 0 || p.CalloutHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "callout dimensions must be positive")
	}
	if p.MinDistance > p.MaxDistance {
		return errors.New(errors.ErrCodeInvalidConfig, "min_distance %g exceeds max_distance %g", p.MinDistance, p.MaxDistance)
	}
	if p.PolarAttempts <= 0 || p.SpiralAttempts <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "attempt budgets must be positive")
	}
	if p.MaxCallouts <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "max_callouts must be positive")
	}
	return nil
}
