// Package output formats suite run summaries for the CLI: a colored
// console view and a machine-readable JSON view. Both report per-check
// verdicts plus aggregate counters and judge-call latency quantiles.
package output
