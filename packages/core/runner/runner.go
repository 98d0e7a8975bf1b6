package runner

import (
	"context"
	"errors"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/abdul-hamid-achik/should/packages/should"
)

// Check is one named, wrapped assertion ready to execute. Run already
// carries the should wrapper, so executing it captures evidence and asks
// the judge.
type Check struct {
	Name      string
	Condition string
	Run       func(ctx context.Context) (any, error)
}

// Result is the outcome of one check. Exactly one of the three states
// holds: passed, failed (the judge rejected the evidence, Reason set), or
// errored (the code under test returned an error, Err set).
type Result struct {
	Name      string
	Condition string
	Passed    bool
	Reason    string
	Err       error
	Value     any
	Duration  time.Duration
}

// Failed reports whether the judge rejected this check's evidence.
func (r *Result) Failed() bool {
	return !r.Passed && r.Err == nil
}

// Summary aggregates a suite run, including judge-call latency quantiles.
type Summary struct {
	Results []*Result
	Passed  int
	Failed  int
	Errored int

	Duration time.Duration

	// latency histogram, 1us to 60s, 3 significant digits
	hist *hdrhistogram.Histogram
}

func (s *Summary) P50() time.Duration { return s.quantile(50) }
func (s *Summary) P95() time.Duration { return s.quantile(95) }
func (s *Summary) P99() time.Duration { return s.quantile(99) }

func (s *Summary) quantile(q float64) time.Duration {
	return time.Duration(s.hist.ValueAtQuantile(q)) * time.Microsecond
}

// Run executes the checks in order. Checks are never run concurrently:
// evidence capture claims process-wide channels, so overlapping runs would
// corrupt each other's records.
func Run(ctx context.Context, checks []Check) *Summary {
	summary := &Summary{
		hist: hdrhistogram.New(1, 60_000_000, 3),
	}

	start := time.Now()
	for _, check := range checks {
		res := &Result{Name: check.Name, Condition: check.Condition}

		checkStart := time.Now()
		value, err := check.Run(ctx)
		res.Duration = time.Since(checkStart)
		res.Value = value

		var aerr *should.AssertionError
		switch {
		case err == nil:
			res.Passed = true
			summary.Passed++
		case errors.As(err, &aerr):
			res.Reason = aerr.Reason
			summary.Failed++
		default:
			res.Err = err
			summary.Errored++
		}

		_ = summary.hist.RecordValue(res.Duration.Microseconds())
		summary.Results = append(summary.Results, res)
	}
	summary.Duration = time.Since(start)

	return summary
}
