package leave

import "errors"

var (
	ErrRequestNotFound      = errors.New("leave request not found")
	ErrInvalidTransition    = errors.New("transition not allowed from current status")
	ErrForbiddenTransition  = errors.New("actor role cannot perform this transition")
	ErrStaleStatus          = errors.New("leave request status changed since it was read")
	ErrStudentNotFound      = errors.New("student not found")
	ErrEscortNameRequired   = errors.New("escort name is required for this escort category")
	ErrEndBeforeStart       = errors.New("end date must not be before start date")
	ErrRequestAlreadyClosed = errors.New("leave request already completed")
	ErrActualReturnMissing  = errors.New("actual return time has not been recorded")
)
