// Package main is the entry point for the textwin viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/textwin/internal/app"
	"github.com/dshills/textwin/internal/config"
	"github.com/dshills/textwin/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts, logLevel := parseFlags()

	logger := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(logLevel),
		Output: os.Stderr,
		Prefix: "textwin",
	})

	term, err := backend.NewTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create terminal: %v\n", err)
		return 1
	}

	application, err := app.New(term, opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Close()

	// Reload the config live while running.
	if opts.ConfigPath != "" {
		watcher, err := config.NewWatcher(opts.ConfigPath, application.ApplyConfig)
		if err != nil {
			logger.Warn("config watch unavailable: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func parseFlags() (app.Options, string) {
	var opts app.Options
	var logLevel string
	var showVersion bool

	flag.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	flag.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "textwin - scrollable text viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: textwin [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if showVersion {
		fmt.Printf("textwin %s (%s)\n", version, commit)
		os.Exit(0)
	}

	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		fmt.Fprintf(os.Stderr, "Error: invalid log level %q\n", logLevel)
		os.Exit(1)
	}

	if flag.NArg() > 0 {
		opts.File = flag.Arg(0)
	}

	return opts, logLevel
}
