package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SM0HANTY/System-Monitor-Tool/pkg/collector/proc"
	"github.com/SM0HANTY/System-Monitor-Tool/pkg/collector/system"
	"github.com/SM0HANTY/System-Monitor-Tool/pkg/types"
)

// DefaultInterval is the pause between refresh cycles.
const DefaultInterval = 2 * time.Second

// Config holds runtime settings. Every field has a working default, so the
// program runs with no config file and no arguments.
type Config struct {
	Interval time.Duration
	Rows     int
	ProcRoot string
	Meminfo  string
	Loadavg  string
}

// fileConfig is the YAML shape; the interval is a duration string like "2s".
type fileConfig struct {
	Interval string `yaml:"interval"`
	Rows     *int   `yaml:"rows"`
	ProcRoot string `yaml:"proc_root"`
	Meminfo  string `yaml:"meminfo"`
	Loadavg  string `yaml:"loadavg"`
}

// Default returns the built-in settings: 2s refresh, 25 rows, /proc sources.
func Default() Config {
	return Config{
		Interval: DefaultInterval,
		Rows:     types.DefaultRows,
		ProcRoot: proc.DefaultRoot,
		Meminfo:  system.DefaultMeminfoPath,
		Loadavg:  system.DefaultLoadavgPath,
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; a malformed one returns defaults plus the parse error so callers
// can log it and keep going.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, nil
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if fc.Interval != "" {
		d, err := time.ParseDuration(fc.Interval)
		if err != nil {
			return Default(), fmt.Errorf("parse config %s: interval: %w", path, err)
		}
		cfg.Interval = d
	}
	if fc.Rows != nil {
		cfg.Rows = *fc.Rows
	}
	if fc.ProcRoot != "" {
		cfg.ProcRoot = fc.ProcRoot
	}
	if fc.Meminfo != "" {
		cfg.Meminfo = fc.Meminfo
	}
	if fc.Loadavg != "" {
		cfg.Loadavg = fc.Loadavg
	}
	return cfg.sanitized(), nil
}

// sanitized clamps out-of-range values back to their defaults.
func (c Config) sanitized() Config {
	def := Default()
	if c.Interval <= 0 {
		c.Interval = def.Interval
	}
	if c.Rows <= 0 {
		c.Rows = def.Rows
	}
	return c
}
