package intake

import (
	"errors"
	"fmt"
)

// Sentinel errors for the folder-level failures of a scan. A *ScanError
// matches exactly one of them with errors.Is.
var (
	ErrInvalidFolder    = errors.New("invalid input folder")
	ErrEmptyFolder      = errors.New("input folder is empty")
	ErrNoSupportedFiles = errors.New("no supported files")
	ErrAllFilesInvalid  = errors.New("all files invalid")
	ErrReadFailed       = errors.New("reading input folder")
)

// ScanError is a terminal scan failure. No partial result accompanies it.
type ScanError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Reason is a human-readable explanation.
	Reason string
	// Err is the underlying cause, if any.
	Err error
	// Stats holds what was collected before failing; only set for ErrAllFilesInvalid.
	Stats *Stats
}

// Error implements error.
func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}

	return e.Reason
}

// Is reports whether target is the kind of e.
func (e *ScanError) Is(target error) bool {
	return e.Kind == target
}

// Unwrap returns the underlying cause.
func (e *ScanError) Unwrap() error {
	return e.Err
}
