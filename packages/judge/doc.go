// Package judge abstracts the judgment backend and parses its verdicts.
//
// A backend is anything that can turn a text request into a text response:
// an OpenAI-compatible chat endpoint (OpenAIClient), a self-hosted JSON
// endpoint (HTTPClient), or a canned stub (StubClient). Responses follow a
// plain-text convention: PASS, or FAIL: <reason>. Parse is tolerant of
// anything else by failing with the raw text as the reason, and FromError
// turns backend outages into failing verdicts so transport errors never
// escape an assertion.
package judge
