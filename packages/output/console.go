package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/should/packages/core/runner"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

// FormatSummary renders one suite run: a line per check, then counters and
// judge latency quantiles.
func (f *ConsoleFormatter) FormatSummary(summary *runner.Summary) {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	fmt.Fprintf(f.writer, "\n")

	for _, r := range summary.Results {
		if r.Err != nil {
			fmt.Fprintf(f.writer, "  %s %s %s\n", red("x"), r.Name, red(fmt.Sprintf("(%v)", r.Err)))
			continue
		}

		if r.Passed {
			fmt.Fprintf(f.writer, "  %s %s %s\n", green("✓"), r.Name, cyan(fmt.Sprintf("(%dms)", r.Duration.Milliseconds())))
		} else {
			fmt.Fprintf(f.writer, "  %s %s %s\n", red("✗"), r.Name, cyan(fmt.Sprintf("(%dms)", r.Duration.Milliseconds())))
			fmt.Fprintf(f.writer, "      %s\n", red(r.Reason))
		}

		if f.verbose {
			fmt.Fprintf(f.writer, "      condition: %s\n", r.Condition)
			if r.Value != nil {
				fmt.Fprintf(f.writer, "      returned:  %v\n", r.Value)
			}
		}
	}

	fmt.Fprintf(f.writer, "\n%s %d passed, %d failed, %d errored %s\n",
		bold("Summary:"),
		summary.Passed, summary.Failed, summary.Errored,
		cyan(fmt.Sprintf("(%.2fs)", summary.Duration.Seconds())))

	if len(summary.Results) > 0 {
		fmt.Fprintf(f.writer, "Judge latency: p50=%dms p95=%dms p99=%dms\n",
			summary.P50().Milliseconds(),
			summary.P95().Milliseconds(),
			summary.P99().Milliseconds())
	}
}

// FormatError reports a failure outside any check, e.g. a config problem.
func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
