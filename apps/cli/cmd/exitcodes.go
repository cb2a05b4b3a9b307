package cmd

// Exit codes for hitassert CLI
const (
	// ExitSuccess indicates all cases passed
	ExitSuccess = 0

	// ExitTestFailure indicates one or more cases failed
	ExitTestFailure = 1

	// ExitParseError indicates a case file could not be parsed or validated
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)
