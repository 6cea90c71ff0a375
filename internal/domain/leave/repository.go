package leave

import "context"

type LeaveRepository interface {
	// Create inserts a pending leave request.
	Create(ctx context.Context, lr LeaveRequest) (LeaveRequest, error)

	// GetByID retrieves a leave request by ID
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// List retrieves leave requests joined with employee name/department,
	// newest-first.
	List(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)

	// UpdateStatus sets the status of a pending request. Returns
	// ErrLeaveRequestNotFound when no row matches.
	UpdateStatus(ctx context.Context, id string, status string) error

	// Delete removes a leave request. Returns ErrLeaveRequestNotFound when no
	// row matches.
	Delete(ctx context.Context, id string) error
}
