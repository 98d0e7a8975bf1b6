// Package should replaces literal equality checks with a natural-language
// judgment made by a language model.
//
// An assertion wraps a function under test. When the wrapped function runs,
// its stdout and structured log output are captured, packaged with its
// return value and a human-written expectation, and sent to a judgment
// backend. The backend answers PASS or FAIL: <reason>; a failing verdict
// becomes an *AssertionError, a passing one returns the original value
// untouched.
//
//	should.Use(judge.NewOpenAIClient(apiKey))
//
//	register := should.Wrap("minors must be rejected", func() (string, error) {
//		return demo.RegisterUser("xiaoming", 16)
//	})
//	if _, err := register(); err != nil {
//		// the judge explains which evidence violated the expectation
//	}
//
// Capture intercepts process-wide channels, so wrapped invocations are
// serialized: two assertions never capture concurrently.
package should
