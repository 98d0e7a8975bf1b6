// Package capture records the side-channel behavior of a function under test.
//
// A Scope redirects two process-wide channels into an evidence record:
//   - stdout, split into trimmed non-empty lines
//   - the default slog logger, as {message, level, timestamp} entries
//
// Both are restored exactly as they were when the scope ends, on every exit
// path. Because the intercepted channels are global, only one scope can be
// open at a time; Begin blocks until the previous scope has ended.
package capture
