package replacer

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/legolabs/envreplacer/internal/logging"
	"github.com/legolabs/envreplacer/internal/lookup"
	"github.com/legolabs/envreplacer/internal/marker"
	"github.com/legolabs/envreplacer/internal/storage"
)

// Option configures a Replacer.
type Option func(*Replacer)

// WithLookup overrides the process environment as the source of values.
func WithLookup(fn lookup.Func) Option {
	return func(r *Replacer) {
		if fn != nil {
			r.lookup = fn
		}
	}
}

// WithStorage overrides the filesystem access layer.
func WithStorage(s storage.Storage) Option {
	return func(r *Replacer) {
		if s != nil {
			r.storage = s
		}
	}
}

// WithWarner overrides where warnings go. The default prints to stdout.
func WithWarner(w logging.Warner) Option {
	return func(r *Replacer) {
		if w != nil {
			r.warner = w
		}
	}
}

// WithLogger sets the structured logger used for progress entries.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Replacer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithExtractor overrides marker extraction (primarily for tests).
func WithExtractor(fn Extractor) Option {
	return func(r *Replacer) {
		if fn != nil {
			r.extract = fn
		}
	}
}

// Replacer substitutes markers in a single file.
type Replacer struct {
	path    string
	lookup  lookup.Func
	storage storage.Storage
	warner  logging.Warner
	logger  *zap.Logger
	extract Extractor
}

// New creates a Replacer for path. Without options it reads values from the
// process environment, works on the local filesystem and prints warnings to
// stdout.
func New(path string, opts ...Option) *Replacer {
	r := &Replacer{
		path:    path,
		lookup:  lookup.Env,
		storage: storage.NewFileStorage(),
		logger:  zap.NewNop(),
		extract: extractMarkers,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.warner == nil {
		r.warner = logging.NewConsoleWarner(os.Stdout)
	}
	return r
}

// Apply loads the file, substitutes every resolvable marker and writes the
// result back to the same path. Problems are reported as warnings; a failed
// precondition leaves the file untouched.
func (r *Replacer) Apply() {
	diagnostics := r.Process()
	for _, d := range diagnostics {
		r.warner.Warn(d.Message)
	}
}

// Process performs the same work as Apply but returns the diagnostics instead
// of printing them.
func (r *Replacer) Process() []Diagnostic {
	logger := r.logger.With(zap.String("path", r.path))

	content, diag, ok := r.load()
	if !ok {
		logger.Warn("file skipped", zap.Stringer("reason", diag.Kind), zap.Error(diag.Err))
		return []Diagnostic{diag}
	}

	markers, err := r.extract(content)
	if err != nil {
		logger.Warn("file skipped", zap.Stringer("reason", PatternMatchFailure), zap.Error(err))
		return []Diagnostic{{
			Kind:    PatternMatchFailure,
			Path:    r.path,
			Message: fmt.Sprintf("Error on matching regular expression '%s', skipping file", marker.Expr),
			Err:     err,
		}}
	}

	replaced, diagnostics := Substitute(content, markers, r.lookup)
	for i := range diagnostics {
		diagnostics[i].Path = r.path
		logger.Warn("marker unresolved", zap.String("key", diagnostics[i].Key))
	}

	if err := r.storage.Write(r.path, replaced); err != nil {
		logger.Error("rewrite failed", zap.Error(err))
		return append(diagnostics, Diagnostic{
			Kind:    WriteFailure,
			Path:    r.path,
			Message: fmt.Sprintf("File could not be written: '%s'", r.path),
			Err:     err,
		})
	}

	logger.Info("file rewritten",
		zap.Int("markers", len(markers)),
		zap.Int("unresolved", len(diagnostics)),
	)
	return diagnostics
}

func (r *Replacer) load() (string, Diagnostic, bool) {
	if err := r.storage.Check(r.path); err != nil {
		return "", r.checkDiagnostic(err), false
	}

	content, err := r.storage.Read(r.path)
	if err != nil {
		return "", Diagnostic{
			Kind:    ReadFailure,
			Path:    r.path,
			Message: fmt.Sprintf("File could not be read: '%s', skipping", r.path),
			Err:     err,
		}, false
	}
	return content, Diagnostic{}, true
}

func (r *Replacer) checkDiagnostic(err error) Diagnostic {
	d := Diagnostic{Path: r.path, Err: err}
	switch {
	case errors.Is(err, storage.ErrNotFound):
		d.Kind = FileNotFound
		d.Message = fmt.Sprintf("File not found: '%s', skipping", r.path)
	case errors.Is(err, storage.ErrNotReadable):
		d.Kind = NotReadable
		d.Message = fmt.Sprintf("File is not readable: '%s', skipping", r.path)
	case errors.Is(err, storage.ErrNotWritable):
		d.Kind = NotWritable
		d.Message = fmt.Sprintf("File is not writable: '%s', skipping", r.path)
	default:
		d.Kind = ReadFailure
		d.Message = fmt.Sprintf("File could not be read: '%s', skipping", r.path)
	}
	return d
}

func extractMarkers(content string) ([]string, error) {
	return marker.Extract(content), nil
}
