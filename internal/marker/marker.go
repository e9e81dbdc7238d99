package marker

import (
	"regexp"
	"strings"
)

// Expr is the marker expression: two underscores, 5 to 20 characters of
// uppercase letters, digits or underscores, two underscores.
const Expr = `__[A-Z0-9_]{5,20}__`

const delimiter = "__"

// Pattern is the compiled marker expression.
var Pattern = regexp.MustCompile(Expr)

// Extract returns every marker in content in order of occurrence.
// Repeated markers appear once per occurrence.
func Extract(content string) []string {
	found := Pattern.FindAllString(content, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// Key returns the environment variable name for a marker. Every "__" in the
// marker is removed, so __DB__HOST__ resolves to DBHOST.
func Key(marker string) string {
	return strings.ReplaceAll(marker, delimiter, "")
}
