package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/attendance"
	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	now            func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		now:            time.Now,
	}
}

// timePtrToClock safely formats a *time.Time as a wall-clock string.
func timePtrToClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

func toRecordResponse(a attendance.Attendance) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		ClockIn:    timePtrToClock(a.ClockIn),
		ClockOut:   timePtrToClock(a.ClockOut),
		TotalHours: a.TotalHours,
		Status:     a.Status,
		FullName:   a.EmployeeName,
		Department: a.Department,
	}
}

func toRecordResponses(records []attendance.Attendance) []attendance.RecordResponse {
	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, toRecordResponse(a))
	}
	return responses
}

// today returns the current date truncated to midnight UTC. Date and
// clock times are same-day wall-clock values throughout.
func (s *AttendanceServiceImpl) today() (time.Time, time.Time) {
	now := s.now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return now, date
}

// ownEmployee resolves the principal's employee record; employee-role
// principals without one get an explicit error, never a silent pass.
func (s *AttendanceServiceImpl) ownEmployee(ctx context.Context, principal auth.Principal) (employee.Employee, error) {
	return s.employeeRepo.GetByUserID(ctx, principal.UserID)
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, principal auth.Principal, date *string) ([]attendance.RecordResponse, error) {
	filter := attendance.ListFilter{Date: date}

	// Employee role is forced to its own rows; a caller-supplied employee
	// filter cannot widen the scope.
	if principal.Role == user.RoleEmployee {
		emp, err := s.ownEmployee(ctx, principal)
		if err != nil {
			return nil, err
		}
		filter.EmployeeID = &emp.ID
	}

	records, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return toRecordResponses(records), nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, principal auth.Principal) (attendance.TodayResponse, error) {
	emp, err := s.ownEmployee(ctx, principal)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	_, date := s.today()
	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	resp := attendance.TodayResponse{
		HasRecord:  record != nil,
		CanClockIn: record == nil,
	}
	if record != nil {
		r := toRecordResponse(*record)
		resp.Record = &r
		resp.CanClockOut = record.ClockOut == nil
	}
	return resp, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, month attendance.MonthFilter) ([]attendance.RecordResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, month)
	if err != nil {
		return nil, err
	}
	return toRecordResponses(records), nil
}

// ClockIn implements attendance.AttendanceService. Status is decided here,
// from the clock-in hour alone, and never revisited at clock-out.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, principal auth.Principal) (attendance.ClockInResponse, error) {
	emp, err := s.ownEmployee(ctx, principal)
	if err != nil {
		return attendance.ClockInResponse{}, err
	}

	now, date := s.today()

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.ClockInResponse{}, err
	}
	if existing != nil {
		return attendance.ClockInResponse{}, attendance.ErrAlreadyClockedIn
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID: emp.ID,
		Date:       date,
		ClockIn:    &now,
		Status:     attendance.ClassifyClockIn(now),
	})
	if err != nil {
		return attendance.ClockInResponse{}, err
	}

	return attendance.ClockInResponse{
		Message:      "Clocked in successfully",
		AttendanceID: created.ID,
		Time:         now.Format("15:04:05"),
	}, nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, principal auth.Principal) (attendance.ClockOutResponse, error) {
	emp, err := s.ownEmployee(ctx, principal)
	if err != nil {
		return attendance.ClockOutResponse{}, err
	}

	now, date := s.today()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.ClockOutResponse{}, err
	}
	if record == nil || record.ClockIn == nil {
		return attendance.ClockOutResponse{}, attendance.ErrNoClockInRecord
	}
	if record.ClockOut != nil {
		return attendance.ClockOutResponse{}, attendance.ErrAlreadyClockedOut
	}

	totalHours := attendance.ElapsedHours(*record.ClockIn, now)
	if err := s.attendanceRepo.SetClockOut(ctx, record.ID, now, totalHours); err != nil {
		return attendance.ClockOutResponse{}, err
	}

	return attendance.ClockOutResponse{
		Message:    "Clocked out successfully",
		Time:       now.Format("15:04:05"),
		TotalHours: fmt.Sprintf("%.2f", totalHours),
	}, nil
}

// MonthlyReport implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MonthlyReport(ctx context.Context, employeeID string, month attendance.MonthFilter) (attendance.ReportResponse, error) {
	if month.Year == 0 || month.Month == 0 {
		return attendance.ReportResponse{}, attendance.ErrMonthYearRequired
	}

	records, err := s.attendanceRepo.ListForReport(ctx, employeeID, month)
	if err != nil {
		return attendance.ReportResponse{}, err
	}

	return attendance.ReportResponse{
		Records: toRecordResponses(records),
		Summary: attendance.Summarize(records, month.Year, time.Month(month.Month)),
	}, nil
}

// StatsSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) StatsSummary(ctx context.Context) (attendance.StatsSummaryResponse, error) {
	_, date := s.today()

	dayStats, err := s.attendanceRepo.DayStats(ctx, date)
	if err != nil {
		return attendance.StatsSummaryResponse{}, err
	}

	activeCount, err := s.employeeRepo.CountActive(ctx)
	if err != nil {
		return attendance.StatsSummaryResponse{}, err
	}

	return attendance.StatsSummaryResponse{
		Today:                dayStats,
		TotalActiveEmployees: activeCount,
		AttendanceRate:       attendance.Rate(dayStats.PresentToday, activeCount),
	}, nil
}
