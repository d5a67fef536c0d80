// errors.go
package bauh

import "github.com/bauh-project/bauh/pkg/actions"

// Error wraps an action failure with the operation and package involved
type Error = actions.Error

var (
	// ErrGemNotFound indicates no manager is registered for a gem
	ErrGemNotFound = actions.ErrGemNotFound

	// ErrMethodNotFound indicates the manager does not provide an action method
	ErrMethodNotFound = actions.ErrMethodNotFound

	// ErrInvalidAction indicates the custom action is malformed
	ErrInvalidAction = actions.ErrInvalidAction

	// ErrRootRequired indicates root privileges are needed
	ErrRootRequired = actions.ErrRootRequired

	// ErrNoInternet indicates an internet connection is needed
	ErrNoInternet = actions.ErrNoInternet

	// ErrCancelled indicates the user did not confirm an action
	ErrCancelled = actions.ErrCancelled

	// ErrBackupFailed indicates the pre-action backup failed
	ErrBackupFailed = actions.ErrBackupFailed
)
