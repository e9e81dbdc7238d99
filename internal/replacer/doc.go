// Package replacer rewrites a file in place, substituting each __NAME__ marker
// with the value of the NAME environment variable.
//
// Substitute is the pure core: it takes content, the ordered marker list and a
// lookup function and returns the new content together with diagnostics.
// Replacer wraps it with file access and prints every diagnostic as a warning;
// nothing is ever returned to the caller as an error.
package replacer
