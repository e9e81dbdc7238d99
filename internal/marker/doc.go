// Package marker recognises placeholder markers of the form __NAME__ in text
// content and derives the environment variable key each marker refers to.
package marker
