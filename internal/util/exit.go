package util

import "fmt"

// ExitError asks the CLI to exit with Code without printing anything more.
// Commands return it after they have already reported the outcome.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
