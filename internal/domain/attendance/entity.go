package attendance

import "time"

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	ClockIn    *time.Time
	ClockOut   *time.Time
	TotalHours *float64
	Status     string

	// Join
	EmployeeName *string
	Department   *string
}
