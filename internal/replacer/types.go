package replacer

// Kind classifies a diagnostic.
type Kind int

const (
	// FileNotFound means the target path does not exist.
	FileNotFound Kind = iota + 1
	// NotReadable means the target exists but cannot be read.
	NotReadable
	// NotWritable means the target exists but cannot be written.
	NotWritable
	// ReadFailure means reading failed after the access checks passed.
	ReadFailure
	// PatternMatchFailure means marker extraction itself failed.
	PatternMatchFailure
	// UnresolvedMarker means a marker had no matching environment variable.
	UnresolvedMarker
	// WriteFailure means the rewritten content could not be persisted.
	WriteFailure
)

var kindNames = map[Kind]string{
	FileNotFound:        "file_not_found",
	NotReadable:         "not_readable",
	NotWritable:         "not_writable",
	ReadFailure:         "read_failure",
	PatternMatchFailure: "pattern_match_failure",
	UnresolvedMarker:    "unresolved_marker",
	WriteFailure:        "write_failure",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Aborts reports whether a diagnostic of this kind stops work on the file.
func (k Kind) Aborts() bool {
	return k != UnresolvedMarker
}

// Diagnostic describes one recoverable anomaly met while processing a file.
// Key is set for UnresolvedMarker, Err for failures with an underlying cause.
type Diagnostic struct {
	Kind    Kind
	Path    string
	Key     string
	Message string
	Err     error
}

// Extractor returns the markers found in content, in order of occurrence.
type Extractor func(content string) ([]string, error)
