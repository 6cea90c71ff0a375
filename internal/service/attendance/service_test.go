package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/Marshmallowc/hrms-backend/internal/domain/attendance"
	"github.com/Marshmallowc/hrms-backend/internal/domain/auth"
	"github.com/Marshmallowc/hrms-backend/internal/domain/employee"
	"github.com/Marshmallowc/hrms-backend/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	createFn               func(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error)
	getByEmployeeAndDateFn func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error)
	setClockOutFn          func(ctx context.Context, id string, clockOut time.Time, totalHours float64) error
	listFn                 func(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error)
	listByEmployeeFn       func(ctx context.Context, employeeID string, month attendance.MonthFilter) ([]attendance.Attendance, error)
	listForReportFn        func(ctx context.Context, employeeID string, month attendance.MonthFilter) ([]attendance.Attendance, error)
	dayStatsFn             func(ctx context.Context, date time.Time) (attendance.DayStats, error)
}

func (s *stubAttendanceRepo) Create(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return s.createFn(ctx, a)
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return s.getByEmployeeAndDateFn(ctx, employeeID, date)
}

func (s *stubAttendanceRepo) SetClockOut(ctx context.Context, id string, clockOut time.Time, totalHours float64) error {
	return s.setClockOutFn(ctx, id, clockOut, totalHours)
}

func (s *stubAttendanceRepo) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	return s.listFn(ctx, filter)
}

func (s *stubAttendanceRepo) ListByEmployee(ctx context.Context, employeeID string, month attendance.MonthFilter) ([]attendance.Attendance, error) {
	return s.listByEmployeeFn(ctx, employeeID, month)
}

func (s *stubAttendanceRepo) ListForReport(ctx context.Context, employeeID string, month attendance.MonthFilter) ([]attendance.Attendance, error) {
	return s.listForReportFn(ctx, employeeID, month)
}

func (s *stubAttendanceRepo) DayStats(ctx context.Context, date time.Time) (attendance.DayStats, error) {
	return s.dayStatsFn(ctx, date)
}

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

func ownEmployeeRepo(empID string) *stubEmployeeRepo {
	return &stubEmployeeRepo{
		getByUserIDFn: func(ctx context.Context, userID string) (employee.Employee, error) {
			return employee.Employee{ID: empID, FullName: "Jane Roe", Status: employee.StatusActive}, nil
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var employeePrincipal = auth.Principal{
	UserID:   "user-1",
	Username: "jane",
	Email:    "jane@example.com",
	Role:     user.RoleEmployee,
}

func TestClockIn_BeforeNine_Present(t *testing.T) {
	ctx := context.Background()

	var createdStatus string
	attendanceRepo := &stubAttendanceRepo{
		getByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
			createdStatus = a.Status
			a.ID = "att-1"
			return a, nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, ownEmployeeRepo("emp-1"))
	svc.now = fixedClock(time.Date(2026, 3, 10, 8, 59, 0, 0, time.UTC))

	resp, err := svc.ClockIn(ctx, employeePrincipal)

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusPresent, createdStatus)
	assert.Equal(t, "att-1", resp.AttendanceID)
	assert.Equal(t, "08:59:00", resp.Time)
}

func TestClockIn_AtNine_Late(t *testing.T) {
	ctx := context.Background()

	var createdStatus string
	attendanceRepo := &stubAttendanceRepo{
		getByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
			createdStatus = a.Status
			a.ID = "att-1"
			return a, nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, ownEmployeeRepo("emp-1"))
	svc.now = fixedClock(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))

	_, err := svc.ClockIn(ctx, employeePrincipal)

	require.NoError(t, err)
	assert.Equal(t, attendance.StatusLate, createdStatus)
}

func TestClockIn_Twice_Rejected(t *testing.T) {
	ctx := context.Background()

	now := time.Date(2026, 3, 10, 8, 30, 0, 0, time.UTC)
	attendanceRepo := &stubAttendanceRepo{
		getByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
			return &attendance.Attendance{ID: "att-1", EmployeeID: employeeID, ClockIn: &now}, nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, ownEmployeeRepo("emp-1"))
	svc.now = fixedClock(now.Add(time.Hour))

	_, err := svc.ClockIn(ctx, employeePrincipal)

	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedIn)
}

func TestClockOut_Success(t *testing.T) {
	ctx := context.Background()

	clockIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	var gotHours float64
	attendanceRepo := &stubAttendanceRepo{
		getByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
			return &attendance.Attendance{ID: "att-1", EmployeeID: employeeID, ClockIn: &clockIn}, nil
		},
		setClockOutFn: func(ctx context.Context, id string, clockOut time.Time, totalHours float64) error {
			gotHours = totalHours
			return nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, ownEmployeeRepo("emp-1"))
	svc.now = fixedClock(time.Date(2026, 3, 10, 17, 30, 0, 0, time.UTC))

	resp, err := svc.ClockOut(ctx, employeePrincipal)

	require.NoError(t, err)
	assert.Equal(t, 8.5, gotHours)
	assert.Equal(t, "8.50", resp.TotalHours)
	assert.Equal(t, "17:30:00", resp.Time)
}

func TestClockOut_WithoutClockIn_Rejected(t *testing.T) {
	ctx := context.Background()

	attendanceRepo := &stubAttendanceRepo{
		getByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
			return nil, nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, ownEmployeeRepo("emp-1"))
	svc.now = fixedClock(time.Date(2026, 3, 10, 17, 0, 0, 0, time.UTC))

	_, err := svc.ClockOut(ctx, employeePrincipal)

	assert.ErrorIs(t, err, attendance.ErrNoClockInRecord)
}

func TestClockOut_Twice_Rejected(t *testing.T) {
	ctx := context.Background()

	clockIn := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clockOut := clockIn.Add(8 * time.Hour)
	attendanceRepo := &stubAttendanceRepo{
		getByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
			return &attendance.Attendance{ID: "att-1", ClockIn: &clockIn, ClockOut: &clockOut}, nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, ownEmployeeRepo("emp-1"))
	svc.now = fixedClock(clockOut.Add(time.Hour))

	_, err := svc.ClockOut(ctx, employeePrincipal)

	assert.ErrorIs(t, err, attendance.ErrAlreadyClockedOut)
}

func TestList_EmployeeRole_ScopedToOwnRows(t *testing.T) {
	ctx := context.Background()

	var gotFilter attendance.ListFilter
	attendanceRepo := &stubAttendanceRepo{
		listFn: func(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, ownEmployeeRepo("emp-1"))

	_, err := svc.List(ctx, employeePrincipal, nil)

	require.NoError(t, err)
	require.NotNil(t, gotFilter.EmployeeID)
	assert.Equal(t, "emp-1", *gotFilter.EmployeeID)
}

func TestList_AdminRole_Unscoped(t *testing.T) {
	ctx := context.Background()

	var gotFilter attendance.ListFilter
	attendanceRepo := &stubAttendanceRepo{
		listFn: func(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	admin := auth.Principal{UserID: "user-9", Role: user.RoleAdmin}
	svc := NewAttendanceService(attendanceRepo, &stubEmployeeRepo{})

	_, err := svc.List(ctx, admin, nil)

	require.NoError(t, err)
	assert.Nil(t, gotFilter.EmployeeID)
}

func TestToday_NoRecord(t *testing.T) {
	ctx := context.Background()

	attendanceRepo := &stubAttendanceRepo{
		getByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
			return nil, nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, ownEmployeeRepo("emp-1"))

	resp, err := svc.Today(ctx, employeePrincipal)

	require.NoError(t, err)
	assert.False(t, resp.HasRecord)
	assert.True(t, resp.CanClockIn)
	assert.False(t, resp.CanClockOut)
	assert.Nil(t, resp.Record)
}

func TestToday_ClockedInNotOut(t *testing.T) {
	ctx := context.Background()

	clockIn := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	attendanceRepo := &stubAttendanceRepo{
		getByEmployeeAndDateFn: func(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
			return &attendance.Attendance{ID: "att-1", Date: clockIn, ClockIn: &clockIn, Status: attendance.StatusPresent}, nil
		},
	}

	svc := NewAttendanceService(attendanceRepo, ownEmployeeRepo("emp-1"))

	resp, err := svc.Today(ctx, employeePrincipal)

	require.NoError(t, err)
	assert.True(t, resp.HasRecord)
	assert.False(t, resp.CanClockIn)
	assert.True(t, resp.CanClockOut)
	require.NotNil(t, resp.Record)
	assert.Equal(t, "att-1", resp.Record.ID)
}

func TestMonthlyReport_RequiresMonthAndYear(t *testing.T) {
	ctx := context.Background()

	svc := NewAttendanceService(&stubAttendanceRepo{}, &stubEmployeeRepo{})

	_, err := svc.MonthlyReport(ctx, "emp-1", attendance.MonthFilter{})
	assert.ErrorIs(t, err, attendance.ErrMonthYearRequired)

	_, err = svc.MonthlyReport(ctx, "emp-1", attendance.MonthFilter{Year: 2026})
	assert.ErrorIs(t, err, attendance.ErrMonthYearRequired)

	_, err = svc.MonthlyReport(ctx, "emp-1", attendance.MonthFilter{Month: 3})
	assert.ErrorIs(t, err, attendance.ErrMonthYearRequired)
}

func TestStatsSummary(t *testing.T) {
	ctx := context.Background()

	attendanceRepo := &stubAttendanceRepo{
		dayStatsFn: func(ctx context.Context, date time.Time) (attendance.DayStats, error) {
			return attendance.DayStats{TotalEmployeesToday: 8, PresentToday: 6, LateToday: 2}, nil
		},
	}
	employeeRepo := &stubEmployeeRepo{
		countActiveFn: func(ctx context.Context) (int, error) { return 10, nil },
	}

	svc := NewAttendanceService(attendanceRepo, employeeRepo)

	resp, err := svc.StatsSummary(ctx)

	require.NoError(t, err)
	assert.Equal(t, 10, resp.TotalActiveEmployees)
	assert.Equal(t, 6, resp.Today.PresentToday)
	assert.Equal(t, "60.0", resp.AttendanceRate)
}
