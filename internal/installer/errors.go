package installer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOperation is returned when Install, Upgrade or Uninstall is
	// called while the matching capability check is false. The concrete
	// error is an [*OperationError] naming the action and the path.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNoPrimaryInstaller is returned by [NewComposite] when the primary
	// installer is nil.
	ErrNoPrimaryInstaller = errors.New("composite installer requires a primary installer")
)

// OperationError reports a rejected lifecycle action.
type OperationError struct {
	// Action is "install", "upgrade" or "uninstall".
	Action string
	// Path is the install root or scripts directory the action targeted.
	Path string
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("cannot %s from %s", e.Action, e.Path)
}

// Unwrap makes every *OperationError match [ErrInvalidOperation].
func (e *OperationError) Unwrap() error {
	return ErrInvalidOperation
}

func invalidOperation(action, path string) error {
	return &OperationError{Action: action, Path: path}
}
