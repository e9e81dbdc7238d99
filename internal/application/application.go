package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/legolabs/envreplacer/internal/config"
	"github.com/legolabs/envreplacer/internal/logging"
	"github.com/legolabs/envreplacer/internal/lookup"
	"github.com/legolabs/envreplacer/internal/replacer"
	"github.com/legolabs/envreplacer/internal/storage"
)

// App encapsulates the dependencies shared by every file run.
type App struct {
	files   []string
	storage storage.Storage
	lookup  lookup.Func
	warner  *countingWarner
	logger  *zap.Logger
}

// Summary reports what a Run did.
type Summary struct {
	Files    int
	Warnings int
}

// New initializes the application from the provided configuration. Warnings
// are written to out.
func New(cfg config.Config, logger *zap.Logger, out io.Writer) (*App, error) {
	if len(cfg.Files) == 0 {
		return nil, fmt.Errorf("no files to process")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	files := make([]string, len(cfg.Files))
	copy(files, cfg.Files)

	return &App{
		files:   files,
		storage: storage.NewFileStorage(),
		lookup:  lookup.Chain(lookup.Env, lookup.Map(cfg.Defaults)),
		warner:  &countingWarner{next: logging.NewConsoleWarner(out)},
		logger:  logger,
	}, nil
}

// Run rewrites every configured file in order. Each file is handled
// independently; a problem with one never stops the others.
func (a *App) Run() Summary {
	before := a.warner.count
	for _, path := range a.files {
		replacer.New(path,
			replacer.WithLookup(a.lookup),
			replacer.WithStorage(a.storage),
			replacer.WithWarner(a.warner),
			replacer.WithLogger(a.logger),
		).Apply()
	}

	summary := Summary{Files: len(a.files), Warnings: a.warner.count - before}
	a.logger.Info("run complete",
		zap.Int("files", summary.Files),
		zap.Int("warnings", summary.Warnings),
	)
	return summary
}

type countingWarner struct {
	next  logging.Warner
	count int
}

func (w *countingWarner) Warn(msg string) {
	w.count++
	w.next.Warn(msg)
}
