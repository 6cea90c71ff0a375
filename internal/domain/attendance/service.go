package attendance

import (
	"context"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
)

type AttendanceService interface {
	// List returns attendance rows visible to the principal, optionally
	// filtered by date. Employee-role principals only ever see their own rows.
	List(ctx context.Context, principal auth.Principal, date *string) ([]RecordResponse, error)

	// Today reports the principal's clock state for the current date.
	Today(ctx context.Context, principal auth.Principal) (TodayResponse, error)

	// ListByEmployee returns one employee's rows, optionally narrowed to a month.
	ListByEmployee(ctx context.Context, employeeID string, month MonthFilter) ([]RecordResponse, error)

	// ClockIn opens today's attendance record for the principal.
	ClockIn(ctx context.Context, principal auth.Principal) (ClockInResponse, error)

	// ClockOut closes today's attendance record for the principal.
	ClockOut(ctx context.Context, principal auth.Principal) (ClockOutResponse, error)

	// MonthlyReport returns one employee's month in calendar order plus the
	// aggregated summary.
	MonthlyReport(ctx context.Context, employeeID string, month MonthFilter) (ReportResponse, error)

	// StatsSummary returns today's organization-wide snapshot.
	StatsSummary(ctx context.Context) (StatsSummaryResponse, error)
}
