package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"go.trai.ch/gimmisn/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. GIMMISN_OVERPASS__URL.
	EnvPrefix = "GIMMISN_"
	// EnvConfigFile names an explicit config file.
	EnvConfigFile = "GIMMISN_CONFIG"
	// DefaultFile is loaded from the working directory when present.
	DefaultFile = "gimmisn.yaml"
)

// Loader merges defaults, an optional YAML file and environment overrides, in
// increasing order of precedence.
type Loader struct {
	envPrefix string
	path      string
	explicit  bool
}

// NewLoader returns a loader for the given file. An empty path falls back to
// DefaultFile, which may be absent.
func NewLoader(path string) *Loader {
	if path == "" {
		return &Loader{envPrefix: EnvPrefix, path: DefaultFile}
	}
	return &Loader{envPrefix: EnvPrefix, path: path, explicit: true}
}

// FromEnv returns a loader for the file named by GIMMISN_CONFIG.
func FromEnv() *Loader {
	return NewLoader(os.Getenv(EnvConfigFile))
}

// Load assembles the effective configuration.
func (l *Loader) Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(toMap(Default()), "."), nil); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if _, err := os.Stat(l.path); err != nil {
		if !errors.Is(err, os.ErrNotExist) || l.explicit {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", l.path)
		}
	} else if err := k.Load(file.Provider(l.path), yaml.Parser()); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", l.path)
	}

	transform := func(s string) string {
		// Double underscores mark nesting: GIMMISN_CRON__UPDATE_INACTIVE -> cron.update_inactive.
		key := strings.TrimPrefix(s, l.envPrefix)
		return strings.ToLower(strings.ReplaceAll(key, "__", "."))
	}
	if err := k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}
	return &cfg, nil
}

func toMap(cfg Config) map[string]any {
	return map[string]any{
		"workdir":  cfg.Workdir,
		"datadir":  cfg.Datadir,
		"database": cfg.Database,
		"overpass": map[string]any{
			"url":     cfg.Overpass.URL,
			"timeout": cfg.Overpass.Timeout.String(),
		},
		"reference": map[string]any{
			"streets":      cfg.Reference.Streets,
			"housenumbers": cfg.Reference.Housenumbers,
			"citycounts":   cfg.Reference.Citycounts,
		},
		"cron": map[string]any{
			"update_inactive": cfg.Cron.UpdateInactive,
		},
		"metrics": map[string]any{
			"textfile": cfg.Metrics.Textfile,
		},
		"log": map[string]any{
			"format": cfg.Log.Format,
		},
	}
}
