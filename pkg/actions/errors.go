// pkg/actions/errors.go
package actions

import (
	"errors"
	"fmt"

	"github.com/bauh-project/bauh/pkg/registry"
)

var (
	// ErrGemNotFound indicates no manager is registered for the package gem
	ErrGemNotFound = registry.ErrGemNotFound

	// ErrMethodNotFound indicates the manager does not provide the action method
	ErrMethodNotFound = errors.New("manager method not found")

	// ErrInvalidAction indicates the custom action is malformed
	ErrInvalidAction = errors.New("invalid action")

	// ErrRootRequired indicates the action needs root and no valid password was given
	ErrRootRequired = errors.New("root privileges required")

	// ErrNoInternet indicates the action needs an internet connection
	ErrNoInternet = errors.New("no internet connection")

	// ErrCancelled indicates the user did not confirm the action
	ErrCancelled = errors.New("action cancelled")

	// ErrBackupFailed indicates the pre-action backup did not succeed
	ErrBackupFailed = errors.New("backup failed")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package id if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
