package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
	"github.com/Marshmallowc/hrms-backend/internal/domain/leave"
	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
	}
}

func toResponse(lr leave.LeaveRequest) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:         lr.ID,
		EmployeeID: lr.EmployeeID,
		LeaveType:  lr.LeaveType,
		StartDate:  lr.StartDate.Format("2006-01-02"),
		EndDate:    lr.EndDate.Format("2006-01-02"),
		Reason:     lr.Reason,
		Status:     lr.Status,
		CreatedAt:  lr.CreatedAt.Format(time.RFC3339),
		FullName:   lr.EmployeeName,
		Department: lr.Department,
	}
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, principal auth.Principal, status *string) ([]leave.LeaveResponse, error) {
	filter := leave.ListFilter{Status: status}

	if principal.Role == user.RoleEmployee {
		emp, err := s.employeeRepo.GetByUserID(ctx, principal.UserID)
		if err != nil {
			return nil, err
		}
		filter.EmployeeID = &emp.ID
	}

	requests, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, lr := range requests {
		responses = append(responses, toResponse(lr))
	}
	return responses, nil
}

// Create implements leave.LeaveService.
func (s *LeaveServiceImpl) Create(ctx context.Context, principal auth.Principal, req leave.CreateLeaveRequest) (leave.CreateLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.CreateLeaveResponse{}, err
	}

	emp, err := s.employeeRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		return leave.CreateLeaveResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: emp.ID,
		LeaveType:  req.LeaveType,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.CreateLeaveResponse{}, err
	}

	return leave.CreateLeaveResponse{
		Message: "Leave request submitted successfully",
		LeaveID: created.ID,
	}, nil
}

// UpdateStatus implements leave.LeaveService. Approved and rejected are
// terminal; the repository refuses to overwrite them.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, id string, req leave.UpdateStatusRequest) (leave.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.MessageResponse{}, err
	}

	if err := s.leaveRepo.UpdateStatus(ctx, id, req.Status); err != nil {
		return leave.MessageResponse{}, err
	}

	return leave.MessageResponse{
		Message: fmt.Sprintf("Leave request %s successfully", req.Status),
	}, nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}
