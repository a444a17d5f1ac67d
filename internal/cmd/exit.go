// Package cmd provides command implementations for the qlabcsv CLI.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates the plot had FATAL issues or an unexpected
	// error occurred.
	ExitGeneralError = 1

	// ExitUsageError indicates a bad flag, config value or argument.
	ExitUsageError = 2
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitUsageError:
		return "Usage Error"
	default:
		return "Unknown"
	}
}
