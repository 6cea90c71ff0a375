package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrNoEmployeeRecord means the principal has an employee role but no
	// linked employee row; scoped queries must fail loudly, not pass silently.
	ErrNoEmployeeRecord = errors.New("employee record not found")

	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
