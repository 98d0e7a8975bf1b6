package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/abdul-hamid-achik/should/packages/core/runner"
)

type jsonCheck struct {
	Name       string  `json:"name"`
	Condition  string  `json:"condition"`
	Status     string  `json:"status"` // passed, failed, errored
	Reason     string  `json:"reason,omitempty"`
	Error      string  `json:"error,omitempty"`
	DurationMs int64   `json:"durationMs"`
	Value      any     `json:"value,omitempty"`
}

type jsonSummary struct {
	Checks    []jsonCheck `json:"checks"`
	Passed    int         `json:"passed"`
	Failed    int         `json:"failed"`
	Errored   int         `json:"errored"`
	DurationS float64     `json:"durationSeconds"`
	P50Ms     int64       `json:"judgeLatencyP50Ms"`
	P95Ms     int64       `json:"judgeLatencyP95Ms"`
	P99Ms     int64       `json:"judgeLatencyP99Ms"`
}

type JSONFormatter struct {
	writer io.Writer
}

func NewJSONFormatter(w io.Writer) *JSONFormatter {
	if w == nil {
		w = os.Stdout
	}
	return &JSONFormatter{writer: w}
}

func (f *JSONFormatter) FormatSummary(summary *runner.Summary) error {
	out := jsonSummary{
		Passed:    summary.Passed,
		Failed:    summary.Failed,
		Errored:   summary.Errored,
		DurationS: summary.Duration.Seconds(),
		P50Ms:     summary.P50().Milliseconds(),
		P95Ms:     summary.P95().Milliseconds(),
		P99Ms:     summary.P99().Milliseconds(),
	}

	for _, r := range summary.Results {
		c := jsonCheck{
			Name:       r.Name,
			Condition:  r.Condition,
			DurationMs: r.Duration.Milliseconds(),
			Value:      r.Value,
		}
		switch {
		case r.Err != nil:
			c.Status = "errored"
			c.Error = r.Err.Error()
		case r.Passed:
			c.Status = "passed"
		default:
			c.Status = "failed"
			c.Reason = r.Reason
		}
		out.Checks = append(out.Checks, c)
	}

	enc := json.NewEncoder(f.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
