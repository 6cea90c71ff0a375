package dashboard

import (
	"context"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
)

type DashboardService interface {
	// BuildDashboard composes the role-branched summary: EmployeeSummary for
	// employee principals (an empty object when they have no employee row),
	// OrgSummary for manager/admin.
	BuildDashboard(ctx context.Context, principal auth.Principal) (interface{}, error)

	// DepartmentStats returns per-department aggregates.
	DepartmentStats(ctx context.Context) ([]DepartmentStats, error)
}
