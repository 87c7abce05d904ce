package whitelist

import (
	"fmt"

	"nathanbeddoewebdev/wlsync/internal/domain"
)

// ReadError reports a failure reading an existing allow-list file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("whitelist: failed to read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// Is lets callers match the error with errors.Is(err, domain.ErrWhitelistRead).
func (e *ReadError) Is(target error) bool { return target == domain.ErrWhitelistRead }

// WriteError reports a failure writing the allow-list file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("whitelist: failed to write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is lets callers match the error with errors.Is(err, domain.ErrDestinationWrite).
func (e *WriteError) Is(target error) bool { return target == domain.ErrDestinationWrite }
