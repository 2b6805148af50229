package window

import "github.com/pkg/errors"

// CreationError means the host could not provide a canvas in the document.
// Retrying will not help.
type CreationError struct {
	Reason string
	Err    error
}

func newCreationError(reason string, err error) *CreationError {
	return &CreationError{Reason: reason, Err: err}
}

func (e *CreationError) Error() string {
	if e.Err == nil {
		return e.Reason
	}
	return errors.Wrap(e.Err, e.Reason).Error()
}

func (e *CreationError) Unwrap() error {
	return e.Err
}
