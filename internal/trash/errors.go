package trash

import (
	"errors"
	"fmt"
)

var (
	// ErrDeletionFailed marks a trash artifact that could not be removed.
	ErrDeletionFailed = errors.New("deletion failed")

	// ErrVolumesUnavailable is returned when mounted volumes cannot be listed.
	ErrVolumesUnavailable = errors.New("volumes unavailable")
)

// DeletionError reports which path stopped a sweep.
type DeletionError struct {
	Path string
	Err  error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("cannot remove %q: %v", e.Path, e.Err)
}

func (e *DeletionError) Unwrap() []error {
	return []error{ErrDeletionFailed, e.Err}
}

// ErrorReporter receives malformed trashinfo fields. Each method is called
// at most once per field per parse.
type ErrorReporter interface {
	UnparsablePath(trashInfoPath string)
	UnparsableDeletionDate(trashInfoPath string)
}

type ignoreErrors struct{}

func (ignoreErrors) UnparsablePath(string)         {}
func (ignoreErrors) UnparsableDeletionDate(string) {}

// IgnoreErrors discards every parse error.
var IgnoreErrors ErrorReporter = ignoreErrors{}
