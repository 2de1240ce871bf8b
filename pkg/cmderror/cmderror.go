package cmderror

import "fmt"

// Error is a command failure with a stable code and the process exit
// status it maps to.
type Error struct {
	Code       string
	Message    string
	Details    string
	ExitStatus int
	Err        error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code string, message string, details string, status int, err error) *Error {
	return &Error{Code: code, Message: message, Details: details, ExitStatus: status, Err: err}
}
