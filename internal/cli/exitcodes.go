package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// Exit codes for msgparse.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFindings indicates a check completed and found punycode warnings.
	ExitFindings = 1

	// ExitUsage indicates invalid command-line usage.
	ExitUsage = 2

	// ExitError indicates a configuration, I/O or internal error.
	ExitError = 3
)

// ErrPunycodeFound is returned when a check finds hostnames that need a
// punycode warning. It only signals the exit code.
var ErrPunycodeFound = errors.New("punycode warnings found")

// UsageError marks errors caused by invalid flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// usageArgs marks errors of an argument validator as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// ExitCode maps the error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrPunycodeFound) {
		return ExitFindings
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsage
	}

	return ExitError
}
