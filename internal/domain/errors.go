package domain

import "errors"

// Sentinel errors for classifying sync failures. Packages wrap these so the
// CLI can pick an exit status and message without knowing which reader or
// writer produced the error.
//
//	return fmt.Errorf("failed to open %s: %w", path, domain.ErrSourceRead)
var (
	// ErrMissingColumn indicates the source has no column with the
	// configured header.
	ErrMissingColumn = errors.New("missing column")

	// ErrSourceRead indicates the tabular source could not be opened or
	// parsed.
	ErrSourceRead = errors.New("source unreadable")

	// ErrWhitelistRead indicates an existing allow-list file could not be
	// read.
	ErrWhitelistRead = errors.New("whitelist unreadable")

	// ErrDestinationWrite indicates the allow-list file could not be
	// written.
	ErrDestinationWrite = errors.New("whitelist unwritable")

	// ErrNoInputFile indicates the configured source does not exist. It is
	// not a failure: callers treat it as nothing to do.
	ErrNoInputFile = errors.New("no input file")
)
