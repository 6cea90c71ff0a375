package dashboard

import (
	"context"
	"time"
)

// ReviewAggregates are the raw rating aggregates; Avg is nil when no reviews
// exist.
type ReviewAggregates struct {
	Avg   *float64
	Count int
}

// AttendanceAggregates are one employee's raw month totals; Hours is nil when
// no row carries hours.
type AttendanceAggregates struct {
	DaysWorked int
	Hours      *float64
}

type DashboardRepository interface {
	// LeaveCounts aggregates leave requests by status, organization-wide when
	// employeeID is nil.
	LeaveCounts(ctx context.Context, employeeID *string) (OrgLeaveCounts, error)

	// ReviewAggregates computes rating aggregates, organization-wide when
	// employeeID is nil.
	ReviewAggregates(ctx context.Context, employeeID *string) (ReviewAggregates, error)

	// MonthAttendance sums one employee's rows for a calendar month.
	MonthAttendance(ctx context.Context, employeeID string, year int, month time.Month) (AttendanceAggregates, error)

	// ActiveEmployeeCount counts employees with active status.
	ActiveEmployeeCount(ctx context.Context) (int, error)

	// PresentCount counts rows with present status on one date.
	PresentCount(ctx context.Context, date time.Time) (int, error)

	// DepartmentStats aggregates active employees per department, largest
	// first.
	DepartmentStats(ctx context.Context) ([]DepartmentStats, error)
}
