package capture

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScope_OutputOrderAndBlankLines(t *testing.T) {
	scope, err := Begin()
	require.NoError(t, err)

	fmt.Println("first line")
	fmt.Println("   ")
	fmt.Println("")
	fmt.Println("  second line  ")
	fmt.Print("third\nfourth\n")

	ev := scope.End()

	assert.Equal(t, []string{"first line", "second line", "third", "fourth"}, ev.Output)
	assert.Empty(t, ev.Logs)
}

func TestScope_UnicodeOutput(t *testing.T) {
	scope, err := Begin()
	require.NoError(t, err)

	fmt.Println("注册成功! 用户ID: abc")

	ev := scope.End()
	require.Len(t, ev.Output, 1)
	assert.Equal(t, "注册成功! 用户ID: abc", ev.Output[0])
}

func TestScope_VeryLongLine(t *testing.T) {
	long := strings.Repeat("a", 1024*1024+1024)

	scope, err := Begin()
	require.NoError(t, err)

	fmt.Println(long)
	fmt.Println("after the long line")

	ev := scope.End()

	require.Len(t, ev.Output, 2)
	assert.Equal(t, long, ev.Output[0])
	assert.Equal(t, "after the long line", ev.Output[1])
}

func TestScope_NothingReachesRealStdout(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	prevOut := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = prevOut }()

	scope, err := Begin()
	require.NoError(t, err)
	fmt.Println("must stay inside the scope")
	slog.Info("so must this")
	ev := scope.End()

	require.Same(t, w, os.Stdout)
	require.NoError(t, w.Close())
	leaked, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.Empty(t, leaked)
	assert.Equal(t, []string{"must stay inside the scope"}, ev.Output)
	require.Len(t, ev.Logs, 1)
}

func TestScope_SlogCapture(t *testing.T) {
	scope, err := Begin()
	require.NoError(t, err)

	slog.Info("user registered", "id", "abc")
	slog.Warn("minor detected")
	slog.Debug("should be below the threshold")
	slog.Error("rejection skipped")

	ev := scope.End()

	require.Len(t, ev.Logs, 3)
	assert.Equal(t, "user registered id=abc", ev.Logs[0].Message)
	assert.Equal(t, "INFO", ev.Logs[0].Level)
	assert.Equal(t, "minor detected", ev.Logs[1].Message)
	assert.Equal(t, "WARN", ev.Logs[1].Level)
	assert.Equal(t, "ERROR", ev.Logs[2].Level)
	assert.Greater(t, ev.Logs[0].Timestamp, 0.0)
}

func TestScope_SlogWithAttrs(t *testing.T) {
	scope, err := Begin()
	require.NoError(t, err)

	slog.Default().With("service", "demo").Info("started")

	ev := scope.End()
	require.Len(t, ev.Logs, 1)
	assert.Equal(t, "started service=demo", ev.Logs[0].Message)
}

func TestScope_RestoresStdoutAndLogger(t *testing.T) {
	prevOut := os.Stdout
	prevLog := slog.Default()

	scope, err := Begin()
	require.NoError(t, err)
	assert.NotSame(t, prevOut, os.Stdout)

	fmt.Println("inside")
	scope.End()

	assert.Same(t, prevOut, os.Stdout)
	assert.Same(t, prevLog, slog.Default())
}

func TestScope_RestoresOnPanicPath(t *testing.T) {
	prevOut := os.Stdout
	prevLog := slog.Default()

	func() {
		scope, err := Begin()
		require.NoError(t, err)
		defer scope.End()
		defer func() { _ = recover() }()

		fmt.Println("before the panic")
		panic("boom")
	}()

	assert.Same(t, prevOut, os.Stdout)
	assert.Same(t, prevLog, slog.Default())
}

func TestScope_EndIsIdempotent(t *testing.T) {
	scope, err := Begin()
	require.NoError(t, err)

	fmt.Println("once")
	first := scope.End()
	second := scope.End()

	assert.Equal(t, first.Output, second.Output)
}

func TestScope_SequentialScopesDoNotLeak(t *testing.T) {
	scope, err := Begin()
	require.NoError(t, err)
	fmt.Println("from the first scope")
	slog.Info("first scope log")
	first := scope.End()

	scope, err = Begin()
	require.NoError(t, err)
	fmt.Println("from the second scope")
	second := scope.End()

	assert.Equal(t, []string{"from the first scope"}, first.Output)
	require.Len(t, first.Logs, 1)
	assert.Equal(t, []string{"from the second scope"}, second.Output)
	assert.Empty(t, second.Logs)
}
