// Package history stores past verdicts in a local SQLite database so runs
// can be compared over time. Only outcomes are persisted; captured evidence
// is discarded as soon as a verdict is produced.
package history
