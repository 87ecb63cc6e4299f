// Package config resolves callboard settings from defaults, an optional YAML
// file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jwulff/callboard/internal/api"
	"github.com/jwulff/callboard/internal/i18n"
	"gopkg.in/yaml.v3"
)

// Data sources.
const (
	SourceHTTP   = "http"
	SourceSQLite = "sqlite"
	SourceMySQL  = "mysql"
)

// DefaultInterval is the poll period of the dashboard.
const DefaultInterval = 5 * time.Second

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CALLBOARD_"

// Config holds runtime configuration.
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	Source         string        `yaml:"source"`
	Database       string        `yaml:"database"`
	Interval       time.Duration `yaml:"interval"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Language       string        `yaml:"language"`
	Title          string        `yaml:"title"`
	LogFile        string        `yaml:"log_file"`
	LogLevel       string        `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		BaseURL:  api.DefaultBaseURL,
		Source:   SourceHTTP,
		Interval: DefaultInterval,
		Language: string(i18n.English),
		LogFile:  filepath.Join(os.TempDir(), "callboard.log"),
		LogLevel: "info",
	}
}

// DefaultPath returns the config file read when none is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "callboard", "config.yaml")
}

// Load layers the YAML file at path and the environment over the defaults.
// An empty path falls back to DefaultPath when that file exists.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case explicit || !errors.Is(err, os.ErrNotExist):
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s%s: %w", EnvPrefix, key, err)
		}
		*dst = d
		return nil
	}

	str("BASE_URL", &c.BaseURL)
	str("SOURCE", &c.Source)
	str("DATABASE", &c.Database)
	str("LANGUAGE", &c.Language)
	str("TITLE", &c.Title)
	str("LOG_FILE", &c.LogFile)
	str("LOG_LEVEL", &c.LogLevel)
	if err := dur("INTERVAL", &c.Interval); err != nil {
		return err
	}
	return dur("REQUEST_TIMEOUT", &c.RequestTimeout)
}

// Validate reports the first setting that cannot be used.
func (c Config) Validate() error {
	switch c.Source {
	case SourceHTTP:
		if c.BaseURL == "" {
			return errors.New("base_url is required for the http source")
		}
	case SourceSQLite, SourceMySQL:
		if c.Database == "" {
			return fmt.Errorf("database is required for the %s source", c.Source)
		}
	default:
		return fmt.Errorf("unknown source %q", c.Source)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", c.Interval)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)
	}
	if _, err := i18n.ParseLanguage(c.Language); err != nil {
		return err
	}
	return nil
}
