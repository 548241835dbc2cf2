// Package config loads notat settings: embedded defaults, then the user's
// TOML file, then NOTAT_* environment variables, each layer overriding the
// previous one.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/staffline/notat/pkg/errors"
)

// Settings holds the resolved configuration
type Settings struct {
	// Verbosity is the default log verbosity when no -v flags are given
	Verbosity int `koanf:"verbosity"`

	Factory FactorySettings `koanf:"factory"`
}

// FactorySettings configures the default stream factory
type FactorySettings struct {
	// Aliases maps alternate names onto registered stream types.
	// They are applied to the default factory at startup.
	Aliases map[string]string `koanf:"aliases"`
}

// Load resolves settings from defaults, the user config file, and the
// environment
func Load() (*Settings, error) {
	return LoadFrom(UserConfigPath())
}

// LoadFrom resolves settings using an explicit user config path. The file
// is optional; defaults and environment still apply when it is absent.
func LoadFrom(path string) (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User config file, if present
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config from %s", path)
			}
		}
	}

	// 3. Environment overrides: NOTAT_VERBOSITY, NOTAT_FACTORY_ALIASES_BAR, ...
	if err := k.Load(env.Provider("NOTAT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "NOTAT_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	if settings.Verbosity < 0 {
		return nil, errors.Newf(errors.ErrConfigValid, "verbosity cannot be negative: %d", settings.Verbosity)
	}

	return &settings, nil
}

// UserConfigPath returns the expected location of the user's config file
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "notat", "notat.toml")
}
