package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")

	// ErrLeaveAlreadyProcessed guards the terminal states: once a request is
	// approved or rejected its status cannot change again.
	ErrLeaveAlreadyProcessed = errors.New("leave request already processed")

	ErrInvalidStatus = errors.New("valid status (approved/rejected) is required")
)
