package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")
	ErrEmptyWords  = fmt.Errorf("no words have been found")

	ErrInvalidDateTime = fmt.Errorf("invalid date time")
	ErrEmptyName       = fmt.Errorf("event name is empty")
	ErrNotFound        = fmt.Errorf("event not found")
	ErrAlreadyJoined   = fmt.Errorf("participant already joined")
	ErrNotJoined       = fmt.Errorf("participant not joined")
	ErrStorageFailure  = fmt.Errorf("storage failure")
	ErrDeliveryFailure = fmt.Errorf("delivery failure")
	ErrUnknownAction   = fmt.Errorf("unknown action")
)

// Is reports whether any error in err's tree matches target.
// Kept here so callers importing this package don't need the standard one too.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}
