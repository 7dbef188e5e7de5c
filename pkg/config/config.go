package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/Nexriel/DsoMiti/pkg/errors"
)

// EnvPrefix is the prefix for environment variable overrides.
// Nesting uses a double underscore: DSOMITI_PATHS__STEAM maps to
// paths.steam, so keys like check_running stay addressable.
const EnvPrefix = "DSOMITI_"

// Config is the fully merged configuration for a migration run.
type Config struct {
	Game      Game      `koanf:"game" toml:"game"`
	Paths     Paths     `koanf:"paths" toml:"paths"`
	CopySets  []CopySet `koanf:"copy_sets" toml:"copy_sets"`
	Shortcuts Shortcuts `koanf:"shortcuts" toml:"shortcuts"`
	Preflight Preflight `koanf:"preflight" toml:"preflight"`
}

// Game identifies the game being migrated.
type Game struct {
	Name string `koanf:"name" toml:"name"`
	// Dir is the game's directory name under steamapps/common.
	Dir string `koanf:"dir" toml:"dir"`
}

// Paths configures installation discovery. Explicit Source/Steam values
// skip probing.
type Paths struct {
	Source           string   `koanf:"source" toml:"source"`
	Steam            string   `koanf:"steam" toml:"steam"`
	SourceCandidates []string `koanf:"source_candidates" toml:"source_candidates"`
	SteamRoots       []string `koanf:"steam_roots" toml:"steam_roots"`
}

// CopySet is one named subtree to migrate. Path is relative to the
// standalone root; "." means the whole installation.
type CopySet struct {
	Name string `koanf:"name" toml:"name"`
	Path string `koanf:"path" toml:"path"`
}

// Shortcuts configures which shortcut names cleanup removes.
type Shortcuts struct {
	Names []string `koanf:"names" toml:"names"`
}

// Preflight configures the pre-migration safety checks.
type Preflight struct {
	CheckRunning bool     `koanf:"check_running" toml:"check_running"`
	Processes    []string `koanf:"processes" toml:"processes"`
}

// LoadOptions control where Load looks for user configuration.
type LoadOptions struct {
	// File is an explicit config file path. When empty, the standard
	// locations are searched.
	File string

	// Overrides are applied last, after env vars. Keys use koanf dot
	// notation ("paths.source"). Used for command-line flag overrides.
	Overrides map[string]interface{}
}

// Load builds the merged configuration.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	path := opts.File
	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if opts.File != "" {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file not readable: %s", path)
			}
		} else if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse config file %s", path)
		}
	}

	// 3. Environment variables
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Flag overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the invariants the rest of the tool relies on.
func (c *Config) Validate() error {
	if c.Game.Dir == "" {
		return errors.New(errors.ErrConfigParse, "game.dir must not be empty")
	}
	if len(c.CopySets) == 0 {
		return errors.New(errors.ErrConfigParse, "at least one copy set is required")
	}
	for _, set := range c.CopySets {
		if set.Name == "" {
			return errors.New(errors.ErrConfigParse, "copy set without a name")
		}
		if set.Path == "" || strings.HasPrefix(set.Path, "/") || strings.Contains(set.Path, "..") {
			return errors.Newf(errors.ErrConfigParse,
				"copy set %q has an invalid path %q: must be relative and inside the source tree",
				set.Name, set.Path)
		}
	}
	return nil
}

// envKey maps DSOMITI_PATHS__STEAM to paths.steam.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// parserFor picks a parser by file extension, defaulting to TOML.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// findConfigFile searches the standard locations for a user config.
func findConfigFile() string {
	names := []string{"dsomiti.toml", "dsomiti.yaml", "dsomiti.yml"}

	for _, name := range names {
		candidate := filepath.Join(xdg.ConfigHome, "dsomiti", name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	for _, name := range names {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}
