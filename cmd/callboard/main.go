// Command callboard is a terminal supervisor dashboard for the call-center
// assistant.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/jwulff/callboard/internal/api"
	"github.com/jwulff/callboard/internal/app"
	"github.com/jwulff/callboard/internal/config"
	"github.com/jwulff/callboard/internal/dashboard"
	"github.com/jwulff/callboard/internal/db"
	"github.com/jwulff/callboard/internal/export"
	"github.com/jwulff/callboard/internal/i18n"
	"github.com/jwulff/callboard/internal/logger"
)

func main() {
	_ = godotenv.Load() // loads .env

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return
		}
		fmt.Fprintln(os.Stderr, "callboard:", err)
		os.Exit(1)
	}
}

// parseArgs parses args and returns the options with the selected command
// name; no command selects "tui".
func parseArgs(args []string) (*Options, string, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, "", err
	}
	if len(rest) > 0 {
		return nil, "", fmt.Errorf("unknown command %q", rest[0])
	}

	name := "tui"
	if parser.Active != nil {
		name = parser.Active.Name
	}
	return opts, name, nil
}

// resolveConfig layers flags over the file and environment settings.
func resolveConfig(opts *Options) (config.Config, error) {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return config.Config{}, err
	}
	opts.apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts, command, err := parseArgs(args)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	var log *logger.Logger
	if command == "tui" {
		fileLog, closer, err := logger.OpenFile(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer closer.Close()
		log = fileLog
	} else {
		log = logger.New(logger.Options{Level: cfg.LogLevel})
	}

	src, closeSource, err := openSource(cfg)
	if err != nil {
		return err
	}
	defer closeSource()

	lang, _ := i18n.ParseLanguage(cfg.Language)
	appOpts := app.Options{
		Source:   src,
		Logger:   log,
		Catalog:  i18n.Builtin(),
		Interval: cfg.Interval,
		Language: lang,
		Title:    cfg.Title,
	}
	log.WithField("source", cfg.Source).WithField("command", command).Info("starting callboard")

	switch command {
	case "snapshot":
		snap, err := dashboard.Fetch(ctx, src)
		if err != nil {
			return fmt.Errorf("fetch dashboard data: %w", err)
		}
		_, err = fmt.Fprintln(stdout, app.Render(appOpts, snap, opts.Snapshot.Width))
		return err

	case "export":
		snap, err := dashboard.Fetch(ctx, src)
		if err != nil {
			return fmt.Errorf("fetch dashboard data: %w", err)
		}
		if err := export.WriteFile(opts.Export.Output, snap, appOpts.Catalog, lang); err != nil {
			return err
		}
		log.WithField("path", opts.Export.Output).Info("report written")
		return nil

	default:
		return app.Run(ctx, appOpts)
	}
}

// openSource builds the data source named by cfg.
func openSource(cfg config.Config) (dashboard.Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case config.SourceSQLite:
		store, err := db.OpenSQLite(cfg.Database)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	case config.SourceMySQL:
		store, err := db.Open("mysql", cfg.Database)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	default:
		return api.NewClient(cfg.BaseURL, cfg.RequestTimeout), noop, nil
	}
}
