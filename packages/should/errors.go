package should

import "fmt"

// ConfigError means an assertion was built with no judgment client
// available. Wrap panics with it so the mistake surfaces before any test
// runs.
type ConfigError struct {
	Condition string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("should: no judgment client configured for %q; call should.Use or pass should.WithClient", e.Condition)
}

// AssertionError means the judgment backend rejected the captured evidence.
// It is distinct from an error returned by the code under test, which
// propagates through the wrapper unchanged.
type AssertionError struct {
	Condition string
	Reason    string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("ai assertion failed: %s", e.Reason)
}
