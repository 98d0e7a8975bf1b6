package judge

import "context"

// Client is the judgment backend capability: one text request in, one text
// response out. Implementations perform no retries and no caching; exactly
// one backend request is sent per assertion invocation.
type Client interface {
	Invoke(ctx context.Context, prompt string) (string, error)
}
