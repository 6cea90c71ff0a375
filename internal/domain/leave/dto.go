package leave

import (
	"github.com/Marshmallowc/hrms-backend/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	LeaveType string  `json:"leave_type"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	if r.Status != StatusApproved && r.Status != StatusRejected {
		return ErrInvalidStatus
	}
	return nil
}

// ListFilter narrows leave listings. EmployeeID is forced by scoping for
// employee-role principals.
type ListFilter struct {
	EmployeeID *string
	Status     *string
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	LeaveType  string  `json:"leave_type"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Reason     *string `json:"reason"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"created_at"`
	FullName   *string `json:"full_name,omitempty"`
	Department *string `json:"department,omitempty"`
}

type CreateLeaveResponse struct {
	Message string `json:"message"`
	LeaveID string `json:"leaveId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
