package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/legolabs/envreplacer/internal/application"
	"github.com/legolabs/envreplacer/internal/config"
	"github.com/legolabs/envreplacer/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "envreplacer: %v\n", err)
		os.Exit(1)
	}
}

// run parses args, loads configuration and rewrites every configured file.
// Only configuration problems are returned; replacement problems are printed
// as warnings to stdout.
func run(args []string, stdout io.Writer) error {
	kingpinApp := kingpin.New("envreplacer", "Replaces __MARKER__ placeholders in files with matching environment variables")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	logLevel := kingpinApp.Flag("log-level", "Structured log level (debug, info, warn, error)").String()
	files := kingpinApp.Arg("files", "Files to rewrite in place").Strings()

	if _, err := kingpinApp.Parse(args); err != nil {
		return fmt.Errorf("parse arguments: %w", err)
	}

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
		Files:      *files,
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger, stdout)
	if err != nil {
		logger.Error("failed to initialize application", zap.Error(err))
		return err
	}

	app.Run()
	return nil
}
