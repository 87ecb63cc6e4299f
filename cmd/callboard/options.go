package main

import (
	"time"

	"github.com/jwulff/callboard/internal/config"
)

// Options is the root command. The struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config         string        `short:"f" long:"config" description:"config YAML path"`
	BaseURL        string        `long:"base-url" description:"dashboard API base URL"`
	Source         string        `long:"source" choice:"http" choice:"sqlite" choice:"mysql" description:"where dashboard data comes from"`
	Database       string        `long:"database" description:"SQLite path or MySQL DSN for database sources"`
	Interval       time.Duration `long:"interval" description:"poll interval"`
	RequestTimeout time.Duration `long:"request-timeout" description:"per-request timeout for the http source (0 = none)"`
	Lang           string        `long:"lang" choice:"English" choice:"Arabic" description:"display language"`
	Title          string        `long:"title" description:"dashboard title"`
	LogFile        string        `long:"log-file" description:"log file used by the interactive dashboard"`
	LogLevel       string        `long:"log-level" choice:"debug" choice:"info" choice:"warn" choice:"error" description:"log level"`

	TUI      TUICmd      `command:"tui" description:"Interactive supervisor dashboard (default)"`
	Snapshot SnapshotCmd `command:"snapshot" description:"Poll once and print the dashboard"`
	Export   ExportCmd   `command:"export" description:"Poll once and write an Excel report"`
}

// TUICmd runs the interactive dashboard.
type TUICmd struct{}

// SnapshotCmd prints a single frame.
type SnapshotCmd struct {
	Width int `long:"width" default:"160" description:"frame width in columns"`
}

// ExportCmd writes a workbook.
type ExportCmd struct {
	Output string `short:"o" long:"output" default:"callboard.xlsx" description:"workbook path"`
}

// apply overlays flags that were given onto cfg.
func (o *Options) apply(cfg *config.Config) {
	if o.BaseURL != "" {
		cfg.BaseURL = o.BaseURL
	}
	if o.Source != "" {
		cfg.Source = o.Source
	}
	if o.Database != "" {
		cfg.Database = o.Database
	}
	if o.Interval != 0 {
		cfg.Interval = o.Interval
	}
	if o.RequestTimeout != 0 {
		cfg.RequestTimeout = o.RequestTimeout
	}
	if o.Lang != "" {
		cfg.Language = o.Lang
	}
	if o.Title != "" {
		cfg.Title = o.Title
	}
	if o.LogFile != "" {
		cfg.LogFile = o.LogFile
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
}
