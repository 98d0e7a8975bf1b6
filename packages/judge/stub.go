package judge

import (
	"context"
	"sync"
)

// StubClient returns a canned response or error. It backs tests and the
// CLI's offline demo mode.
type StubClient struct {
	Response string
	Err      error

	mu         sync.Mutex
	calls      int
	lastPrompt string
}

func (s *StubClient) Invoke(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.calls++
	s.lastPrompt = prompt
	s.mu.Unlock()

	if s.Err != nil {
		return "", s.Err
	}
	return s.Response, nil
}

// Calls reports how many judgment requests were sent.
func (s *StubClient) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// LastPrompt returns the most recently received request text.
func (s *StubClient) LastPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPrompt
}
