package source

import (
	"fmt"
	"strings"

	"nathanbeddoewebdev/wlsync/internal/domain"
)

// MissingColumnError is returned when the source has no column with the
// expected header.
type MissingColumnError struct {
	Column    string
	Available []string
}

func (e *MissingColumnError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("source: column %q not found (sheet has no header row)", e.Column)
	}
	return fmt.Sprintf("source: column %q not found (available: %s)", e.Column, strings.Join(e.Available, ", "))
}

// Is lets callers match the error with errors.Is(err, domain.ErrMissingColumn).
func (e *MissingColumnError) Is(target error) bool { return target == domain.ErrMissingColumn }

// ReadError is returned when the source cannot be opened or parsed.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("source: failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Is lets callers match the error with errors.Is(err, domain.ErrSourceRead).
func (e *ReadError) Is(target error) bool { return target == domain.ErrSourceRead }
