package should

import (
	"context"
	"sync"

	"github.com/abdul-hamid-achik/should/packages/capture"
	"github.com/abdul-hamid-achik/should/packages/judge"
	"github.com/abdul-hamid-achik/should/packages/prompt"
)

var (
	defaultMu     sync.RWMutex
	defaultClient judge.Client
)

// Use registers the process-wide default judgment client for all
// subsequently wrapped assertions. Last write wins. The client is returned
// so registration can be chained with construction:
//
//	llm := should.Use(judge.NewOpenAIClient(key))
func Use(c judge.Client) judge.Client {
	defaultMu.Lock()
	defaultClient = c
	defaultMu.Unlock()
	return c
}

// Option adjusts a single assertion.
type Option func(*settings)

type settings struct {
	client judge.Client
}

// WithClient overrides the default judgment client for one assertion.
func WithClient(c judge.Client) Option {
	return func(s *settings) {
		s.client = c
	}
}

// Wrap turns a synchronous function into an AI-judged assertion. Each call
// of the returned function captures its stdout and log output, asks the
// judgment backend whether the condition holds, and either returns the
// original value unchanged or an *AssertionError carrying the backend's
// reason. An error from fn itself propagates unchanged and is never judged.
//
// Wrap panics with *ConfigError when no client is configured, so a
// misconfigured suite fails when the assertion is built, not when it runs.
func Wrap[T any](condition string, fn func() (T, error), opts ...Option) func() (T, error) {
	client := resolveClient(condition, opts)
	return func() (T, error) {
		return run(context.Background(), client, condition, fn)
	}
}

// WrapContext is the suspending variant of Wrap for functions that wait on
// a context. The wrapper preserves the calling convention: the returned
// function takes the same context, and the judgment call waits on it too.
func WrapContext[T any](condition string, fn func(context.Context) (T, error), opts ...Option) func(context.Context) (T, error) {
	client := resolveClient(condition, opts)
	return func(ctx context.Context) (T, error) {
		return run(ctx, client, condition, func() (T, error) {
			return fn(ctx)
		})
	}
}

func resolveClient(condition string, opts []Option) judge.Client {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.client != nil {
		return s.client
	}

	defaultMu.RLock()
	c := defaultClient
	defaultMu.RUnlock()
	if c == nil {
		panic(&ConfigError{Condition: condition})
	}
	return c
}

// run is the single evaluation pipeline shared by both wrapper variants:
// capture, execute, judge.
func run[T any](ctx context.Context, client judge.Client, condition string, fn func() (T, error)) (T, error) {
	var zero T

	scope, err := capture.Begin()
	if err != nil {
		return zero, err
	}
	// Restoration must hold on every exit path, panics included.
	defer scope.End()

	result, callErr := fn()
	evidence := scope.End()

	if callErr != nil {
		// The code under test failed; there is nothing to judge.
		return result, callErr
	}

	request := prompt.Build(condition, evidence, result)

	var verdict judge.Verdict
	response, invokeErr := client.Invoke(ctx, request)
	if invokeErr != nil {
		verdict = judge.FromError(invokeErr)
	} else {
		verdict = judge.Parse(response)
	}

	if !verdict.Passed {
		return result, &AssertionError{Condition: condition, Reason: verdict.Reason}
	}
	return result, nil
}
