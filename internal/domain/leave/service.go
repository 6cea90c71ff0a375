package leave

import (
	"context"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
)

type LeaveService interface {
	// List returns leave requests visible to the principal, optionally
	// filtered by status.
	List(ctx context.Context, principal auth.Principal, status *string) ([]LeaveResponse, error)

	// Create submits a leave request on behalf of the principal's employee
	// record.
	Create(ctx context.Context, principal auth.Principal, req CreateLeaveRequest) (CreateLeaveResponse, error)

	// UpdateStatus approves or rejects a pending request. Terminal states
	// cannot be overwritten.
	UpdateStatus(ctx context.Context, id string, req UpdateStatusRequest) (MessageResponse, error)

	// Delete removes a leave request.
	Delete(ctx context.Context, id string) error
}
