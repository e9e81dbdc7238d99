// Package lookup resolves environment variable keys against injected,
// read-only sources so callers never depend on process state directly.
package lookup

import "os"

// Func resolves a key. The boolean reports whether the key is present; an
// empty value with true is a valid resolution.
type Func func(key string) (string, bool)

// Env resolves keys against the process environment.
func Env(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map resolves keys against a fixed table. The table is copied.
func Map(values map[string]string) Func {
	table := make(map[string]string, len(values))
	for k, v := range values {
		table[k] = v
	}
	return func(key string) (string, bool) {
		v, ok := table[key]
		return v, ok
	}
}

// Chain returns a Func that consults each source in order and returns the
// first hit. Nil sources are skipped.
func Chain(sources ...Func) Func {
	return func(key string) (string, bool) {
		for _, source := range sources {
			if source == nil {
				continue
			}
			if v, ok := source(key); ok {
				return v, true
			}
		}
		return "", false
	}
}
