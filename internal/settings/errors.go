package settings

import (
	"errors"
	"fmt"
)

// ErrInvalidProjectIdentifier is the sentinel for a malformed vendor/project
// identifier. It is the only error that aborts a run.
var ErrInvalidProjectIdentifier = errors.New("invalid project identifier")

// KindInvalidProjectIdentifier is the diagnostic kind reported to callers.
const KindInvalidProjectIdentifier = "invalidProjectIdentifier"

// InvalidIdentifierError carries the rejected identifier.
type InvalidIdentifierError struct {
	Value string
}

// Error implements the error interface.
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("%q is not a valid project name, please use \"vendor/project\"", e.Value)
}

// Unwrap returns ErrInvalidProjectIdentifier for errors.Is support.
func (e *InvalidIdentifierError) Unwrap() error {
	return ErrInvalidProjectIdentifier
}

// Kind returns KindInvalidProjectIdentifier.
func (e *InvalidIdentifierError) Kind() string {
	return KindInvalidProjectIdentifier
}
