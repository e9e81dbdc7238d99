// Package application provides application initialization and dependency wiring.
// It builds the lookup chain, storage and warning output from configuration and
// runs one replacer per configured file, keeping the main package focused on
// CLI parsing.
package application
