package employee

import (
	"context"
	"testing"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	createFn      func(ctx context.Context, e employee.Employee) (employee.Employee, error)
	getByIDFn     func(ctx context.Context, id string) (employee.Employee, error)
	getByUserIDFn func(ctx context.Context, userID string) (employee.Employee, error)
	listFn        func(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error)
	updateFn      func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error
	deleteFn      func(ctx context.Context, id string) error
	countActiveFn func(ctx context.Context) (int, error)
}

func (s *stubEmployeeRepo) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	return s.createFn(ctx, e)
}

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return s.getByUserIDFn(ctx, userID)
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
	return s.listFn(ctx, filter)
}

func (s *stubEmployeeRepo) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
	return s.updateFn(ctx, id, req)
}

func (s *stubEmployeeRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func (s *stubEmployeeRepo) CountActive(ctx context.Context) (int, error) {
	return s.countActiveFn(ctx)
}

func TestCreate_DefaultsToActiveStatus(t *testing.T) {
	ctx := context.Background()

	var created employee.Employee
	repo := &stubEmployeeRepo{
		createFn: func(ctx context.Context, e employee.Employee) (employee.Employee, error) {
			created = e
			e.ID = "emp-1"
			return e, nil
		},
	}

	svc := NewEmployeeService(repo)

	resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FullName:   "Jane Roe",
		Department: "Engineering",
		Position:   "Developer",
		HireDate:   "2026-01-15",
	})

	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, employee.StatusActive, created.Status)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), created.HireDate)
}

func TestCreate_MissingFields_Rejected(t *testing.T) {
	ctx := context.Background()

	svc := NewEmployeeService(&stubEmployeeRepo{})

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{FullName: "Jane Roe"})

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Len(t, errs, 3)
}

func TestCreate_BadStatus_Rejected(t *testing.T) {
	ctx := context.Background()

	svc := NewEmployeeService(&stubEmployeeRepo{})

	_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FullName:   "Jane Roe",
		Department: "Engineering",
		Position:   "Developer",
		HireDate:   "2026-01-15",
		Status:     "retired",
	})

	var errs validator.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestUpdate_NoFields_Rejected(t *testing.T) {
	ctx := context.Background()

	svc := NewEmployeeService(&stubEmployeeRepo{})

	err := svc.Update(ctx, "emp-1", employee.UpdateEmployeeRequest{})

	assert.ErrorIs(t, err, employee.ErrNoFieldsToUpdate)
}

func TestUpdate_UnknownEmployee_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := &stubEmployeeRepo{
		updateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) error {
			return employee.ErrEmployeeNotFound
		},
	}

	svc := NewEmployeeService(repo)

	name := "Jane Roe"
	err := svc.Update(ctx, "missing", employee.UpdateEmployeeRequest{FullName: &name})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestList_PassesFilterThrough(t *testing.T) {
	ctx := context.Background()

	var gotFilter employee.ListFilter
	repo := &stubEmployeeRepo{
		listFn: func(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, error) {
			gotFilter = filter
			return []employee.Employee{{ID: "emp-1", FullName: "Jane Roe", HireDate: time.Now()}}, nil
		},
	}

	svc := NewEmployeeService(repo)

	dept := "Engineering"
	result, err := svc.List(ctx, employee.ListFilter{Department: &dept})

	require.NoError(t, err)
	require.NotNil(t, gotFilter.Department)
	assert.Equal(t, "Engineering", *gotFilter.Department)
	require.Len(t, result, 1)
	assert.Equal(t, "emp-1", result[0].ID)
}
