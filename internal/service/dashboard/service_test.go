package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/dashboard"
	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboardRepo struct {
	leaveCountsFn         func(ctx context.Context, employeeID *string) (dashboard.OrgLeaveCounts, error)
	reviewAggregatesFn    func(ctx context.Context, employeeID *string) (dashboard.ReviewAggregates, error)
	monthAttendanceFn     func(ctx context.Context, employeeID string, year int, month time.Month) (dashboard.AttendanceAggregates, error)
	activeEmployeeCountFn func(ctx context.Context) (int, error)
	presentCountFn        func(ctx context.Context, date time.Time) (int, error)
	departmentStatsFn     func(ctx context.Context) ([]dashboard.DepartmentStats, error)
}

func (s *stubDashboardRepo) LeaveCounts(ctx context.Context, employeeID *string) (dashboard.OrgLeaveCounts, error) {
	return s.leaveCountsFn(ctx, employeeID)
}

func (s *stubDashboardRepo) ReviewAggregates(ctx context.Context, employeeID *string) (dashboard.ReviewAggregates, error) {
	return s.reviewAggregatesFn(ctx, employeeID)
}

func (s *stubDashboardRepo) MonthAttendance(ctx context.Context, employeeID string, year int, month time.Month) (dashboard.AttendanceAggregates, error) {
	return s.monthAttendanceFn(ctx, employeeID, year, month)
}

func (s *stubDashboardRepo) ActiveEmployeeCount(ctx context.Context) (int, error) {
	return s.activeEmployeeCountFn(ctx)
}

func (s *stubDashboardRepo) PresentCount(ctx context.Context, date time.Time) (int, error) {
	return s.presentCountFn(ctx, date)
}

func (s *stubDashboardRepo) DepartmentStats(ctx context.Context) ([]dashboard.DepartmentStats, error) {
	return s.departmentStatsFn(ctx)
}

type stubEmployeeRepo struct {
	employee.EmployeeRepository
	getByUserIDFn func(ctx context.Context, userID string) (employee.Employee, error)
}

func (s *stubEmployeeRepo) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return s.getByUserIDFn(ctx, userID)
}

func TestBuildDashboard_EmployeeRole(t *testing.T) {
	ctx := context.Background()

	avg := 4.25
	hours := 42.5
	dashboardRepo := &stubDashboardRepo{
		leaveCountsFn: func(ctx context.Context, employeeID *string) (dashboard.OrgLeaveCounts, error) {
			require.NotNil(t, employeeID)
			assert.Equal(t, "emp-1", *employeeID)
			return dashboard.OrgLeaveCounts{Total: 5, Pending: 2, Approved: 3}, nil
		},
		reviewAggregatesFn: func(ctx context.Context, employeeID *string) (dashboard.ReviewAggregates, error) {
			return dashboard.ReviewAggregates{Avg: &avg, Count: 4}, nil
		},
		monthAttendanceFn: func(ctx context.Context, employeeID string, year int, month time.Month) (dashboard.AttendanceAggregates, error) {
			return dashboard.AttendanceAggregates{DaysWorked: 5, Hours: &hours}, nil
		},
	}
	employeeRepo := &stubEmployeeRepo{
		getByUserIDFn: func(ctx context.Context, userID string) (employee.Employee, error) {
			return employee.Employee{ID: "emp-1"}, nil
		},
	}

	svc := NewDashboardService(dashboardRepo, employeeRepo)

	result, err := svc.BuildDashboard(ctx, auth.Principal{UserID: "user-1", Role: user.RoleEmployee})

	require.NoError(t, err)
	summary, ok := result.(dashboard.EmployeeSummary)
	require.True(t, ok)
	assert.Equal(t, 5, summary.Leaves.Total)
	assert.Equal(t, "4.2", summary.Performance.AvgRating)
	assert.Equal(t, 4, summary.Performance.TotalReviews)
	assert.Equal(t, 5, summary.Attendance.DaysWorked)
	assert.Equal(t, "42.5", summary.Attendance.TotalHours)
}

func TestBuildDashboard_EmployeeWithoutRecord_EmptyObject(t *testing.T) {
	ctx := context.Background()

	employeeRepo := &stubEmployeeRepo{
		getByUserIDFn: func(ctx context.Context, userID string) (employee.Employee, error) {
			return employee.Employee{}, employee.ErrNoEmployeeRecord
		},
	}

	svc := NewDashboardService(&stubDashboardRepo{}, employeeRepo)

	result, err := svc.BuildDashboard(ctx, auth.Principal{UserID: "user-1", Role: user.RoleEmployee})

	require.NoError(t, err)
	assert.Equal(t, struct{}{}, result)
}

func TestBuildDashboard_ManagerRole_OrgSummary(t *testing.T) {
	ctx := context.Background()

	dashboardRepo := &stubDashboardRepo{
		activeEmployeeCountFn: func(ctx context.Context) (int, error) { return 10, nil },
		leaveCountsFn: func(ctx context.Context, employeeID *string) (dashboard.OrgLeaveCounts, error) {
			assert.Nil(t, employeeID)
			return dashboard.OrgLeaveCounts{Total: 7, Pending: 1, Approved: 4, Rejected: 2}, nil
		},
		reviewAggregatesFn: func(ctx context.Context, employeeID *string) (dashboard.ReviewAggregates, error) {
			return dashboard.ReviewAggregates{}, nil
		},
		presentCountFn: func(ctx context.Context, date time.Time) (int, error) { return 7, nil },
	}

	svc := NewDashboardService(dashboardRepo, &stubEmployeeRepo{})

	result, err := svc.BuildDashboard(ctx, auth.Principal{UserID: "user-9", Role: user.RoleManager})

	require.NoError(t, err)
	summary, ok := result.(dashboard.OrgSummary)
	require.True(t, ok)
	assert.Equal(t, 10, summary.Employees.Total)
	assert.Equal(t, "70.0", summary.Attendance.AttendanceRate)
	assert.Equal(t, "N/A", summary.Performance.AvgRating)
	assert.Equal(t, 2, summary.Leaves.Rejected)
}

func TestBuildDashboard_NoActiveEmployees_ZeroRate(t *testing.T) {
	ctx := context.Background()

	dashboardRepo := &stubDashboardRepo{
		activeEmployeeCountFn: func(ctx context.Context) (int, error) { return 0, nil },
		leaveCountsFn: func(ctx context.Context, employeeID *string) (dashboard.OrgLeaveCounts, error) {
			return dashboard.OrgLeaveCounts{}, nil
		},
		reviewAggregatesFn: func(ctx context.Context, employeeID *string) (dashboard.ReviewAggregates, error) {
			return dashboard.ReviewAggregates{}, nil
		},
		presentCountFn: func(ctx context.Context, date time.Time) (int, error) { return 0, nil },
	}

	svc := NewDashboardService(dashboardRepo, &stubEmployeeRepo{})

	result, err := svc.BuildDashboard(ctx, auth.Principal{UserID: "user-9", Role: user.RoleAdmin})

	require.NoError(t, err)
	summary := result.(dashboard.OrgSummary)
	assert.Equal(t, "0", summary.Attendance.AttendanceRate)
}
