package entities

import "fmt"

// InputError indicates invalid user input (flag or argument).
type InputError struct {
	Field  string // Flag or argument name
	Value  string // Value as the user gave it
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// ExecutionError indicates that a package manager invocation failed,
// either because the binary is unavailable or because it exited non-zero.
type ExecutionError struct {
	Command string // Full command line that was attempted
	Stderr  string // Captured standard error, if any
	Err     error  // Underlying cause (exec error)
}

func (e *ExecutionError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %q failed: %v: %s", e.Command, e.Err, e.Stderr)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
