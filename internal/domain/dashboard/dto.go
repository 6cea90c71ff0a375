package dashboard

// EmployeeLeaveCounts are the personal leave counters shown to an employee.
type EmployeeLeaveCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
}

// OrgLeaveCounts are the organization-wide leave counters.
type OrgLeaveCounts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// PerformanceStats carries the average rating as a 1-decimal string, "N/A"
// when no reviews exist.
type PerformanceStats struct {
	AvgRating    string `json:"avgRating"`
	TotalReviews int    `json:"totalReviews"`
}

// MonthAttendance is the principal's current-month attendance footprint.
type MonthAttendance struct {
	DaysWorked int    `json:"daysWorked"`
	TotalHours string `json:"totalHours"`
}

// OrgAttendance is today's organization-wide presence snapshot.
type OrgAttendance struct {
	TodayPresent   int    `json:"todayPresent"`
	TotalEmployees int    `json:"totalEmployees"`
	AttendanceRate string `json:"attendanceRate"`
}

type OrgEmployees struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}

// EmployeeSummary is the dashboard for an employee-role principal.
type EmployeeSummary struct {
	Leaves      EmployeeLeaveCounts `json:"leaves"`
	Performance PerformanceStats    `json:"performance"`
	Attendance  MonthAttendance     `json:"attendance"`
}

// OrgSummary is the dashboard for manager/admin principals.
type OrgSummary struct {
	Employees   OrgEmployees     `json:"employees"`
	Leaves      OrgLeaveCounts   `json:"leaves"`
	Performance PerformanceStats `json:"performance"`
	Attendance  OrgAttendance    `json:"attendance"`
}

type DepartmentStats struct {
	Department    string   `json:"department"`
	EmployeeCount int      `json:"employee_count"`
	AvgSalary     *float64 `json:"avg_salary"`
}
