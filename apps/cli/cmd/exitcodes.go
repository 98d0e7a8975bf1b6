package cmd

// Exit codes for the should CLI
const (
	// ExitSuccess indicates every check passed
	ExitSuccess = 0

	// ExitCheckFailure indicates the judge failed one or more checks
	ExitCheckFailure = 1

	// ExitConfigError indicates a configuration or backend setup error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
