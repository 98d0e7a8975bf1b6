package judge

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Verdict is a parsed backend response: a binary outcome plus the reason
// given for a failure.
type Verdict struct {
	Passed bool
	Reason string
}

// Parse interprets a backend response. A response passes only when its
// trimmed text starts with PASS as a standalone token; "PASSed most checks"
// does not count. Anything else fails with the full trimmed text as the
// reason, so unexpected backend phrasing always surfaces to the caller.
func Parse(response string) Verdict {
	trimmed := strings.TrimSpace(response)

	if rest, ok := strings.CutPrefix(trimmed, "PASS"); ok {
		next, _ := utf8.DecodeRuneInString(rest)
		if rest == "" || !isWordRune(next) {
			return Verdict{Passed: true}
		}
	}

	reason := trimmed
	if reason == "" {
		reason = "empty response from judgment backend"
	}
	return Verdict{Reason: reason}
}

// FromError converts a failed backend call into a failing verdict, so a
// backend outage surfaces as an assertion failure rather than a transport
// error escaping the wrapper.
func FromError(err error) Verdict {
	return Verdict{Reason: fmt.Sprintf("judgment backend call failed: %v", err)}
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
