package replacer

import (
	"fmt"
	"strings"

	"github.com/legolabs/envreplacer/internal/lookup"
	"github.com/legolabs/envreplacer/internal/marker"
)

// Substitute resolves each marker in order and replaces every occurrence of
// it in content with its value. Each substitution works on the result of the
// previous one. A marker whose key is absent is left intact and yields one
// UnresolvedMarker diagnostic per list entry.
func Substitute(content string, markers []string, resolve lookup.Func) (string, []Diagnostic) {
	var diagnostics []Diagnostic
	for _, m := range markers {
		key := marker.Key(m)
		value, ok := resolve(key)
		if !ok {
			diagnostics = append(diagnostics, Diagnostic{
				Kind:    UnresolvedMarker,
				Key:     key,
				Message: fmt.Sprintf("Environment variable '%s' not found, skipping marker", key),
			})
			continue
		}
		content = strings.ReplaceAll(content, m, value)
	}
	return content, diagnostics
}
