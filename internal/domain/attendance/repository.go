package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Create inserts a clock-in row. The store enforces one row per
	// (employee, date); a concurrent duplicate insert surfaces as
	// ErrAlreadyClockedIn.
	Create(ctx context.Context, a Attendance) (Attendance, error)

	// GetByEmployeeAndDate returns the row for (employee, date), nil when
	// none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetClockOut records the clock-out time and computed hours, exactly once.
	SetClockOut(ctx context.Context, id string, clockOut time.Time, totalHours float64) error

	// List retrieves attendance rows joined with employee name/department,
	// date descending, capped at 100 rows.
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)

	// ListByEmployee retrieves one employee's rows, optionally narrowed to a
	// month, date descending.
	ListByEmployee(ctx context.Context, employeeID string, month MonthFilter) ([]Attendance, error)

	// ListForReport retrieves one employee's rows for a month in calendar
	// order (date ascending).
	ListForReport(ctx context.Context, employeeID string, month MonthFilter) ([]Attendance, error)

	// DayStats counts rows and per-status totals for one date.
	DayStats(ctx context.Context, date time.Time) (DayStats, error)
}
