// Package prompt renders judgment requests for the AI backend.
//
// A request combines the natural-language expectation with the evidence
// captured during one execution (log records, printed output, return value)
// and states the PASS / FAIL: <reason> response contract. Building a request
// never fails: values that cannot be serialized fall back to a best-effort
// textual form, and oversized values are truncated.
package prompt
