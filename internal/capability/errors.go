package capability

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors for registry operations
var (
	// ErrNotFound is returned by Dispatch when no definition matches the
	// requested kind and name.
	ErrNotFound = errors.New("capability not found")

	// ErrDuplicateName is returned by Register when a definition with the
	// same kind and name already exists. Registration happens at startup
	// only, so callers treat this as fatal misconfiguration.
	ErrDuplicateName = errors.New("capability already registered")

	// ErrInvalidParams wraps every parameter validation failure.
	ErrInvalidParams = errors.New("invalid parameters")

	// ErrHandlerFailure is returned by Dispatch when a resource handler
	// fails. Resources have no in-band error channel, so the failure is
	// surfaced at the dispatch level instead of inside a result.
	ErrHandlerFailure = errors.New("capability handler failed")
)

// ValidationError reports the parameters that failed schema validation.
type ValidationError struct {
	// Fields holds the names of the offending parameters.
	Fields []string
	// Problems holds one human-readable description per failure.
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameters [%s]: %s",
		strings.Join(e.Fields, ", "), strings.Join(e.Problems, "; "))
}

// Unwrap lets errors.Is(err, ErrInvalidParams) match a ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidParams
}
