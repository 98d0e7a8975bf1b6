// Package runner executes a sequence of AI-judged checks and aggregates
// their verdicts. It distinguishes checks the judge failed from checks
// whose code errored, and tracks judge-call latency quantiles for the
// run summary.
package runner
