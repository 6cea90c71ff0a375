package employee

import "time"

const (
	StatusActive     = "active"
	StatusInactive   = "inactive"
	StatusTerminated = "terminated"
)

// Statuses lists the valid employee statuses.
var Statuses = []string{StatusActive, StatusInactive, StatusTerminated}

type Employee struct {
	ID         string
	UserID     *string
	FullName   string
	Department string
	Position   string
	HireDate   time.Time
	Salary     *float64
	Status     string
	CreatedAt  time.Time
}
