package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/should/packages/capture"
)

const (
	// MaxValueBytes bounds the rendered return value so a huge or deeply
	// nested result cannot blow up the request payload.
	MaxValueBytes = 8 * 1024

	noLogsMarker   = "(no log output)"
	noOutputMarker = "(no printed output)"
)

// Build renders the judgment request sent to the backend: the expectation
// verbatim, the captured evidence, the return value, and the response
// contract. Deterministic for identical inputs apart from log timestamps.
func Build(condition string, ev capture.Evidence, result any) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Below is the context of one test execution. The expected condition is: %q\n\n", condition)

	b.WriteString("Log records:\n")
	b.WriteString(renderJSON(ev.Logs, len(ev.Logs) == 0, noLogsMarker))
	b.WriteString("\n\n")

	b.WriteString("Printed output:\n")
	b.WriteString(renderJSON(ev.Output, len(ev.Output) == 0, noOutputMarker))
	b.WriteString("\n\n")

	b.WriteString("Return value:\n")
	b.WriteString(renderValue(result))
	b.WriteString("\n\n")

	b.WriteString("Based on the log records, printed output and return value, judge whether the expected condition is satisfied.\n")
	b.WriteString("Reply with exactly:\n")
	b.WriteString("PASS\n")
	b.WriteString("or\n")
	b.WriteString("FAIL: <specific reason>\n")
	b.WriteString("No further explanation.")

	return b.String()
}

func renderJSON(v any, empty bool, marker string) string {
	if empty {
		return marker
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

// renderValue produces a bounded textual projection of an arbitrary return
// value. JSON when possible, %+v for values JSON cannot represent
// (channels, functions, cycles), truncated past MaxValueBytes.
func renderValue(result any) string {
	if result == nil {
		return "nil"
	}

	var rendered string
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		rendered = fmt.Sprintf("%+v", result)
	} else {
		rendered = string(data)
	}

	if len(rendered) > MaxValueBytes {
		rendered = rendered[:MaxValueBytes] + "... (truncated)"
	}
	return rendered
}
