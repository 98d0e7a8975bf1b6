// Package cmd implements the should CLI commands using Cobra.
//
// Available commands:
//   - demo: Run the demonstration suite against the configured judge
//   - history: Show recent verdicts from the history database
//   - init: Create a starter config file
//   - version: Show version information
//
// The demo command supports an offline stub backend, JSON output, and a
// watch mode that re-runs the suite when the config file changes.
package cmd
