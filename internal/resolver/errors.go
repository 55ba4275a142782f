package resolver

import "strings"

// UsageError reports invalid command-line input. It is always detected
// before any pipeline work begins.
type UsageError struct {
	// Flags names the offending flags, if known.
	Flags []string
	msg   string
	err   error
}

func newUsageError(msg string, flags ...string) *UsageError {
	return &UsageError{Flags: flags, msg: msg}
}

// Error returns the user-facing message.
func (e *UsageError) Error() string {
	return e.msg
}

// Unwrap returns the underlying cause, if any.
func (e *UsageError) Unwrap() error {
	return e.err
}

// Mentions reports whether flag is among the offending flags.
func (e *UsageError) Mentions(flag string) bool {
	for _, f := range e.Flags {
		if f == flag {
			return true
		}
	}
	return strings.Contains(e.msg, flag)
}
