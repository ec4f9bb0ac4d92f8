package errors

import "fmt"

// CommandError carries an exit code alongside the error message so that the
// top-level Execute can translate a command failure into a process status.
type CommandError struct {
	ExitCode    int
	CommonError string
}

// Error implements the error interface, returning the message from the common error.
func (e *CommandError) Error() string {
	return e.CommonError
}

// NewCommandError creates a new CommandError wrapping err with the given exit code.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: err.Error(),
	}
}

// NewGateError signals that findings met the configured severity gate.
func NewGateError(count int, gate string, code int) *CommandError {
	return &CommandError{
		ExitCode:    code,
		CommonError: fmt.Sprintf("%d finding(s) at or above severity %q", count, gate),
	}
}
