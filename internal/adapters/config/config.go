// Package config loads the runtime configuration of the nightly run.
package config

import "time"

// Config is the effective configuration after defaults, file and environment are merged.
type Config struct {
	// Workdir holds generated per-relation files and the stats directory.
	Workdir string `koanf:"workdir"`
	// Datadir holds relation definitions and query templates.
	Datadir string `koanf:"datadir"`
	// Database is the path of the SQLite store.
	Database string `koanf:"database"`

	Overpass  OverpassConfig  `koanf:"overpass"`
	Reference ReferenceConfig `koanf:"reference"`
	Cron      CronConfig      `koanf:"cron"`
	Metrics   MetricsConfig   `koanf:"metrics"`
	Log       LogConfig       `koanf:"log"`
}

// OverpassConfig configures the query service.
type OverpassConfig struct {
	URL     string        `koanf:"url"`
	Timeout time.Duration `koanf:"timeout"`
}

// ReferenceConfig points at the reference data sets.
type ReferenceConfig struct {
	Streets      string   `koanf:"streets"`
	Housenumbers []string `koanf:"housenumbers"`
	Citycounts   string   `koanf:"citycounts"`
}

// CronConfig tunes the nightly run.
type CronConfig struct {
	// UpdateInactive refreshes inactive relations on every run, not only on the first day of the month.
	UpdateInactive bool `koanf:"update_inactive"`
}

// MetricsConfig configures the metrics textfile.
type MetricsConfig struct {
	// Textfile is written at the end of the run when set.
	Textfile string `koanf:"textfile"`
}

// LogConfig selects the log output.
type LogConfig struct {
	// Format is "pretty" or "json".
	Format string `koanf:"format"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Workdir:  "workdir",
		Datadir:  "data",
		Database: "workdir/state.db",
		Overpass: OverpassConfig{
			URL:     "https://overpass-api.de",
			Timeout: 15 * time.Minute,
		},
		Reference: ReferenceConfig{
			Streets:      "refdir/utcak_20190514.tsv",
			Housenumbers: []string{"refdir/hazszamok_20190511.tsv", "refdir/hazszamok_kieg_20190808.tsv"},
			Citycounts:   "refdir/varosok_count_20190717.tsv",
		},
		Log: LogConfig{Format: "pretty"},
	}
}

// JSONLogs reports whether logs are written as JSON.
func (c *Config) JSONLogs() bool {
	return c.Log.Format == "json"
}
