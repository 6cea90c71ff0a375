package attendance

// ListFilter narrows attendance listings. EmployeeID is forced by scoping for
// employee-role principals; callers cannot widen it.
type ListFilter struct {
	EmployeeID *string
	Date       *string // YYYY-MM-DD
}

// MonthFilter selects a calendar month. The filter only applies when both
// fields are set; a half-set filter counts as zero.
type MonthFilter struct {
	Year  int
	Month int
}

func (f MonthFilter) IsZero() bool {
	return f.Year == 0 || f.Month == 0
}

type RecordResponse struct {
	ID         string   `json:"id"`
	EmployeeID string   `json:"employee_id"`
	Date       string   `json:"date"`
	ClockIn    *string  `json:"clock_in"`
	ClockOut   *string  `json:"clock_out"`
	TotalHours *float64 `json:"total_hours"`
	Status     string   `json:"status"`
	FullName   *string  `json:"full_name,omitempty"`
	Department *string  `json:"department,omitempty"`
}

type TodayResponse struct {
	HasRecord   bool            `json:"hasRecord"`
	Record      *RecordResponse `json:"record"`
	CanClockIn  bool            `json:"canClockIn"`
	CanClockOut bool            `json:"canClockOut"`
}

type ClockInResponse struct {
	Message      string `json:"message"`
	AttendanceID string `json:"attendanceId"`
	Time         string `json:"time"`
}

type ClockOutResponse struct {
	Message    string `json:"message"`
	Time       string `json:"time"`
	TotalHours string `json:"totalHours"`
}

type ReportResponse struct {
	Records []RecordResponse `json:"records"`
	Summary MonthlySummary   `json:"summary"`
}

// DayStats are the organization-wide counters for one calendar date.
type DayStats struct {
	TotalEmployeesToday int `json:"total_employees_today"`
	PresentToday        int `json:"present_today"`
	LateToday           int `json:"late_today"`
	AbsentToday         int `json:"absent_today"`
}

type StatsSummaryResponse struct {
	Today                DayStats `json:"today"`
	TotalActiveEmployees int      `json:"totalActiveEmployees"`
	AttendanceRate       string   `json:"attendanceRate"`
}
