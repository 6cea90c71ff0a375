package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/dashboard"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// LeaveCounts implements dashboard.DashboardRepository.
func (r *dashboardRepository) LeaveCounts(ctx context.Context, employeeID *string) (dashboard.OrgLeaveCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected')
		FROM leave_requests
	`
	args := []interface{}{}
	if employeeID != nil {
		query += ` WHERE employee_id = $1`
		args = append(args, *employeeID)
	}

	var counts dashboard.OrgLeaveCounts
	err := q.QueryRow(ctx, query, args...).Scan(
		&counts.Total, &counts.Pending, &counts.Approved, &counts.Rejected,
	)
	if err != nil {
		return dashboard.OrgLeaveCounts{}, fmt.Errorf("failed to get leave counts: %w", err)
	}

	return counts, nil
}

// ReviewAggregates implements dashboard.DashboardRepository.
func (r *dashboardRepository) ReviewAggregates(ctx context.Context, employeeID *string) (dashboard.ReviewAggregates, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT AVG(rating), COUNT(*) FROM performance_reviews`
	args := []interface{}{}
	if employeeID != nil {
		query += ` WHERE employee_id = $1`
		args = append(args, *employeeID)
	}

	var agg dashboard.ReviewAggregates
	if err := q.QueryRow(ctx, query, args...).Scan(&agg.Avg, &agg.Count); err != nil {
		return dashboard.ReviewAggregates{}, fmt.Errorf("failed to get review aggregates: %w", err)
	}

	return agg, nil
}

// MonthAttendance implements dashboard.DashboardRepository.
func (r *dashboardRepository) MonthAttendance(ctx context.Context, employeeID string, year int, month time.Month) (dashboard.AttendanceAggregates, error) {
	q := GetQuerier(ctx, r.db)

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	query := `
		SELECT COUNT(*), SUM(total_hours)
		FROM attendance
		WHERE employee_id = $1 AND date >= $2 AND date < $3
	`

	var agg dashboard.AttendanceAggregates
	if err := q.QueryRow(ctx, query, employeeID, start, end).Scan(&agg.DaysWorked, &agg.Hours); err != nil {
		return dashboard.AttendanceAggregates{}, fmt.Errorf("failed to get month attendance: %w", err)
	}

	return agg, nil
}

// ActiveEmployeeCount implements dashboard.DashboardRepository.
func (r *dashboardRepository) ActiveEmployeeCount(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = 'active'`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active employees: %w", err)
	}

	return count, nil
}

// PresentCount implements dashboard.DashboardRepository.
func (r *dashboardRepository) PresentCount(ctx context.Context, date time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = 'present'`, date,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count present attendance: %w", err)
	}

	return count, nil
}

// DepartmentStats implements dashboard.DashboardRepository.
func (r *dashboardRepository) DepartmentStats(ctx context.Context) ([]dashboard.DepartmentStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT department, COUNT(*) AS employee_count, AVG(salary) AS avg_salary
		FROM employees
		WHERE status = 'active'
		GROUP BY department
		ORDER BY employee_count DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department stats: %w", err)
	}
	defer rows.Close()

	var stats []dashboard.DepartmentStats
	for rows.Next() {
		var s dashboard.DepartmentStats
		if err := rows.Scan(&s.Department, &s.EmployeeCount, &s.AvgSalary); err != nil {
			return nil, fmt.Errorf("failed to scan department stats: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate department stats: %w", err)
	}

	return stats, nil
}
