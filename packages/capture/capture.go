package capture

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"
)

// LogEntry is one structured log record emitted while a scope was open.
type LogEntry struct {
	Message   string  `json:"message"`
	Level     string  `json:"level"`
	Timestamp float64 `json:"timestamp"` // Unix seconds
}

// Evidence holds everything observed during one capture scope:
// structured log records and non-empty stdout lines, both in emission order.
type Evidence struct {
	Logs   []LogEntry
	Output []string
}

// captureMu serializes capture scopes. Stdout and the default slog logger are
// process-wide, so two overlapping scopes would interleave their evidence.
var captureMu sync.Mutex

// Scope redirects os.Stdout and the default slog logger into an evidence
// record. Open one with Begin and always close it with End.
type Scope struct {
	mu    sync.Mutex
	logs  []LogEntry
	lines []string

	prevOut *os.File
	prevLog *slog.Logger
	pipeR   *os.File
	pipeW   *os.File
	done    chan struct{}
	ended   bool
}

// Begin opens a capture scope. It blocks until any other open scope ends,
// then swaps os.Stdout for a pipe and installs a recording slog handler as
// the process default. Nothing written during the scope reaches the real
// stdout; it is collected and discarded after formatting.
func Begin() (*Scope, error) {
	captureMu.Lock()

	r, w, err := os.Pipe()
	if err != nil {
		captureMu.Unlock()
		return nil, fmt.Errorf("capture: cannot create stdout pipe: %w", err)
	}

	s := &Scope{
		prevOut: os.Stdout,
		prevLog: slog.Default(),
		pipeR:   r,
		pipeW:   w,
		done:    make(chan struct{}),
	}

	os.Stdout = w
	// Replacing the slog default also reroutes the legacy log package.
	slog.SetDefault(slog.New(&recorder{scope: s}))

	go s.collect()
	return s, nil
}

// End restores the previous stdout and default logger exactly as they were,
// drains the pipe so no line is lost, and returns the collected evidence.
// It is safe to call more than once; only the first call does the teardown,
// so it can be both deferred and called explicitly.
func (s *Scope) End() Evidence {
	if !s.ended {
		s.ended = true

		slog.SetDefault(s.prevLog)
		os.Stdout = s.prevOut

		// Closing the write end delivers EOF to the collector.
		_ = s.pipeW.Close()
		<-s.done
		_ = s.pipeR.Close()

		captureMu.Unlock()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return Evidence{Logs: s.logs, Output: s.lines}
}

// collect reads stdout lines until the write end closes. Blank and
// whitespace-only lines are dropped; everything else is kept in order.
// ReadString grows as needed, so a line of any length survives intact and
// the pipe never backs up against an exited reader.
func (s *Scope) collect() {
	defer close(s.done)

	reader := bufio.NewReader(s.pipeR)
	for {
		line, err := reader.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			s.mu.Lock()
			s.lines = append(s.lines, trimmed)
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

func (s *Scope) appendLog(entry LogEntry) {
	s.mu.Lock()
	s.logs = append(s.logs, entry)
	s.mu.Unlock()
}

// recorder is the slog handler installed while a scope is open. It records
// {message, level, timestamp} for records at Info and above; richer
// structured fields are flattened into the message text.
type recorder struct {
	scope *Scope
	attrs []slog.Attr
}

func (r *recorder) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	var b strings.Builder
	b.WriteString(rec.Message)
	for _, a := range r.attrs {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
	rec.Attrs(func(a slog.Attr) bool {
		b.WriteString(" ")
		b.WriteString(a.String())
		return true
	})

	ts := rec.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	r.scope.appendLog(LogEntry{
		Message:   b.String(),
		Level:     rec.Level.String(),
		Timestamp: float64(ts.UnixNano()) / float64(time.Second),
	})
	return nil
}

func (r *recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(r.attrs)+len(attrs))
	merged = append(merged, r.attrs...)
	merged = append(merged, attrs...)
	return &recorder{scope: r.scope, attrs: merged}
}

func (r *recorder) WithGroup(string) slog.Handler {
	return r
}
