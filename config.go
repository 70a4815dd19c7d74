package stash

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultCurrency is the currency label used when none is configured.
const DefaultCurrency = "€"

// Config is the explicit configuration value passed into store and CLI
// construction: the resolved document file path and the currency display
// label. It is built once per process invocation and never mutated after.
type Config struct {
	Path     string `json:"path" koanf:"path"`
	Currency string `json:"currency" koanf:"currency"`
}

// IsZero reports whether no store has been configured yet, i.e. `stash
// init` was never run.
func (c Config) IsZero() bool { return c.Path == "" }

// DefaultConfigFile returns the per-user config file location,
// <user config dir>/stash/config.json.
func DefaultConfigFile() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "stash", "config.json"), nil
}

// LoadConfig loads the configuration, layering defaults, the JSON config
// file (when it exists) and STASH_* environment variables, in increasing
// precedence.
func LoadConfig(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"currency": DefaultCurrency,
	}, "."), nil); err != nil {
		return Config{}, fmt.Errorf("could not load config defaults: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
			return Config{}, fmt.Errorf("could not read config file %q: %w", path, err)
		}
	}

	// STASH_PATH and STASH_CURRENCY override the file.
	if err := k.Load(env.Provider("STASH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "STASH_"))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("could not load environment config: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("could not decode config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to the given file, creating the
// parent directory when needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create config dir for %q: %w", path, err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("could not write config file %q: %w", path, err)
	}
	return nil
}
