package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for the operation taxonomy. Callers match them with
// errors.Is; the wrapped messages carry the offending identifiers.
var (
	// ErrNotFound reports that a referenced section or field id does not
	// exist in the document.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation reports an operation that is semantically
	// nonsensical for its arguments, such as swapping a field with itself.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrMalformedInput reports an import payload that violates the snapshot
	// schema or the document invariants.
	ErrMalformedInput = errors.New("malformed input")
)

func fieldNotFound(id string) error {
	return fmt.Errorf("layout: field %q: %w", id, ErrNotFound)
}

func sectionNotFound(id string) error {
	return fmt.Errorf("layout: section %q: %w", id, ErrNotFound)
}

func invalidOp(format string, args ...any) error {
	return fmt.Errorf("layout: "+format+": %w", append(args, ErrInvalidOperation)...)
}

func malformed(format string, args ...any) error {
	return fmt.Errorf("layout: "+format+": %w", append(args, ErrMalformedInput)...)
}
