package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/attendance"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.AttendanceRepository. A unique index on
// (employee_id, date) makes the one-row-per-day invariant hold under
// concurrent clock-in attempts; the loser surfaces as ErrAlreadyClockedIn.
func (r *attendanceRepository) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	a.ID = uuid.NewString()

	query := `
		INSERT INTO attendance (id, employee_id, date, clock_in, clock_out, total_hours, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := q.Exec(ctx, query,
		a.ID,
		a.EmployeeID,
		a.Date,
		a.ClockIn,
		a.ClockOut,
		a.TotalHours,
		a.Status,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, total_hours, status
		FROM attendance
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var a attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut, &a.TotalHours, &a.Status,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this date
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &a, nil
}

// SetClockOut implements attendance.AttendanceRepository.
func (r *attendanceRepository) SetClockOut(ctx context.Context, id string, clockOut time.Time, totalHours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET clock_out = $1, total_hours = $2
		WHERE id = $3 AND clock_out IS NULL
	`

	tag, err := q.Exec(ctx, query, clockOut, totalHours, id)
	if err != nil {
		return fmt.Errorf("failed to set clock out: %w", err)
	}

	// clock_out IS NULL in the predicate makes the update one-shot even if
	// two clock-out requests race.
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyClockedOut
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND a.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND a.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	query := `
		SELECT a.id, a.employee_id, a.date, a.clock_in, a.clock_out, a.total_hours, a.status,
			   e.full_name, e.department
		FROM attendance a
		JOIN employees e ON a.employee_id = e.id
		WHERE ` + baseWhere + `
		ORDER BY a.date DESC
		LIMIT 100
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut, &a.TotalHours, &a.Status,
			&a.EmployeeName, &a.Department,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

func (r *attendanceRepository) listByEmployee(ctx context.Context, employeeID string, month attendance.MonthFilter, order string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "employee_id = $1"
	args := []interface{}{employeeID}

	if !month.IsZero() {
		start := time.Date(month.Year, time.Month(month.Month), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		baseWhere += " AND date >= $2 AND date < $3"
		args = append(args, start, end)
	}

	query := `
		SELECT id, employee_id, date, clock_in, clock_out, total_hours, status
		FROM attendance
		WHERE ` + baseWhere + `
		ORDER BY date ` + order

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by employee: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		if err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.ClockIn, &a.ClockOut, &a.TotalHours, &a.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, month attendance.MonthFilter) ([]attendance.Attendance, error) {
	return r.listByEmployee(ctx, employeeID, month, "DESC")
}

// ListForReport implements attendance.AttendanceRepository. Calendar order.
func (r *attendanceRepository) ListForReport(ctx context.Context, employeeID string, month attendance.MonthFilter) ([]attendance.Attendance, error) {
	return r.listByEmployee(ctx, employeeID, month, "ASC")
}

// DayStats implements attendance.AttendanceRepository.
func (r *attendanceRepository) DayStats(ctx context.Context, date time.Time) (attendance.DayStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'present'),
			COUNT(*) FILTER (WHERE status = 'late'),
			COUNT(*) FILTER (WHERE status = 'absent')
		FROM attendance
		WHERE date = $1
	`

	var stats attendance.DayStats
	err := q.QueryRow(ctx, query, date).Scan(
		&stats.TotalEmployeesToday, &stats.PresentToday, &stats.LateToday, &stats.AbsentToday,
	)
	if err != nil {
		return attendance.DayStats{}, fmt.Errorf("failed to get day stats: %w", err)
	}

	return stats, nil
}
