package performance

import "time"

type Review struct {
	ID         string
	EmployeeID string
	ReviewerID string
	Period     string
	Rating     int
	Goals      *string
	Feedback   *string
	CreatedAt  time.Time

	// Join
	EmployeeName *string
	Department   *string
	ReviewerName *string
}
