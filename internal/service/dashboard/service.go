package dashboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/dashboard"
	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.DashboardRepository
	employeeRepo  employee.EmployeeRepository
	now           func() time.Time
}

func NewDashboardService(
	dashboardRepo dashboard.DashboardRepository,
	employeeRepo employee.EmployeeRepository,
) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		employeeRepo:  employeeRepo,
		now:           time.Now,
	}
}

// formatAvgRating renders a nullable average as a 1-decimal string, "N/A"
// when no reviews exist.
func formatAvgRating(avg *float64) string {
	if avg == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *avg)
}

// BuildDashboard implements dashboard.DashboardService. Reads only; every
// call recomputes from the store.
func (s *DashboardServiceImpl) BuildDashboard(ctx context.Context, principal auth.Principal) (interface{}, error) {
	if principal.Role == user.RoleEmployee {
		return s.employeeDashboard(ctx, principal)
	}
	return s.orgDashboard(ctx)
}

func (s *DashboardServiceImpl) employeeDashboard(ctx context.Context, principal auth.Principal) (interface{}, error) {
	emp, err := s.employeeRepo.GetByUserID(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, employee.ErrNoEmployeeRecord) {
			// No employee row means no personal stats to show.
			return struct{}{}, nil
		}
		return nil, err
	}

	leaves, err := s.dashboardRepo.LeaveCounts(ctx, &emp.ID)
	if err != nil {
		return nil, err
	}

	reviews, err := s.dashboardRepo.ReviewAggregates(ctx, &emp.ID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	att, err := s.dashboardRepo.MonthAttendance(ctx, emp.ID, now.Year(), now.Month())
	if err != nil {
		return nil, err
	}

	totalHours := "0"
	if att.Hours != nil {
		totalHours = fmt.Sprintf("%.1f", *att.Hours)
	}

	return dashboard.EmployeeSummary{
		Leaves: dashboard.EmployeeLeaveCounts{
			Total:    leaves.Total,
			Pending:  leaves.Pending,
			Approved: leaves.Approved,
		},
		Performance: dashboard.PerformanceStats{
			AvgRating:    formatAvgRating(reviews.Avg),
			TotalReviews: reviews.Count,
		},
		Attendance: dashboard.MonthAttendance{
			DaysWorked: att.DaysWorked,
			TotalHours: totalHours,
		},
	}, nil
}

func (s *DashboardServiceImpl) orgDashboard(ctx context.Context) (interface{}, error) {
	activeCount, err := s.dashboardRepo.ActiveEmployeeCount(ctx)
	if err != nil {
		return nil, err
	}

	leaves, err := s.dashboardRepo.LeaveCounts(ctx, nil)
	if err != nil {
		return nil, err
	}

	reviews, err := s.dashboardRepo.ReviewAggregates(ctx, nil)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	presentToday, err := s.dashboardRepo.PresentCount(ctx, today)
	if err != nil {
		return nil, err
	}

	attendanceRate := "0"
	if activeCount > 0 {
		attendanceRate = fmt.Sprintf("%.1f", float64(presentToday)/float64(activeCount)*100)
	}

	return dashboard.OrgSummary{
		Employees: dashboard.OrgEmployees{
			Total:  activeCount,
			Active: activeCount,
		},
		Leaves: leaves,
		Performance: dashboard.PerformanceStats{
			AvgRating:    formatAvgRating(reviews.Avg),
			TotalReviews: reviews.Count,
		},
		Attendance: dashboard.OrgAttendance{
			TodayPresent:   presentToday,
			TotalEmployees: activeCount,
			AttendanceRate: attendanceRate,
		},
	}, nil
}

// DepartmentStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) DepartmentStats(ctx context.Context) ([]dashboard.DepartmentStats, error) {
	return s.dashboardRepo.DepartmentStats(ctx)
}
