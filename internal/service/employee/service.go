package employee

import (
	"context"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func toResponse(e employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:         e.ID,
		UserID:     e.UserID,
		FullName:   e.FullName,
		Department: e.Department,
		Position:   e.Position,
		HireDate:   e.HireDate.Format("2006-01-02"),
		Salary:     e.Salary,
		Status:     e.Status,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(e), nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.CreateEmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	hireDate, _ := time.Parse("2006-01-02", req.HireDate)

	status := req.Status
	if status == "" {
		status = employee.StatusActive
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		UserID:     req.UserID,
		FullName:   req.FullName,
		Department: req.Department,
		Position:   req.Position,
		HireDate:   hireDate,
		Salary:     req.Salary,
		Status:     status,
	})
	if err != nil {
		return employee.CreateEmployeeResponse{}, err
	}

	return employee.CreateEmployeeResponse{
		Message:    "Employee created successfully",
		EmployeeID: created.ID,
	}, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if req.IsEmpty() {
		return employee.ErrNoFieldsToUpdate
	}
	return s.employeeRepo.Update(ctx, id, req)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
