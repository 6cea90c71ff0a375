package attendance

import (
	"fmt"
	"math"
	"time"
)

// LateThresholdHour marks the first clock-in hour counted as late. Status is
// decided once, at clock-in, and never re-evaluated on clock-out.
const LateThresholdHour = 9

// ClassifyClockIn returns the day status for a clock-in timestamp.
func ClassifyClockIn(clockIn time.Time) string {
	if clockIn.Hour() >= LateThresholdHour {
		return StatusLate
	}
	return StatusPresent
}

// ElapsedHours computes the worked time between two same-day wall-clock
// timestamps in fractional hours, rounded to 2 decimal places. A clock-out
// sorting before clock-in saturates at 0 instead of going negative.
func ElapsedHours(clockIn, clockOut time.Time) float64 {
	hours := clockOut.Sub(clockIn).Hours()
	if hours < 0 {
		hours = 0
	}
	return math.Round(hours*100) / 100
}

// WorkingDays estimates the business days in a month with the 5-out-of-7
// approximation. It is not a holiday-aware calendar.
func WorkingDays(year int, month time.Month) int {
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return daysInMonth * 5 / 7
}

// MonthlySummary aggregates one employee's attendance rows for a month.
type MonthlySummary struct {
	TotalHours     string `json:"totalHours"`
	DaysPresent    int    `json:"daysPresent"`
	DaysLate       int    `json:"daysLate"`
	DaysAbsent     int    `json:"daysAbsent"`
	TotalDays      int    `json:"totalDays"`
	WorkingDays    int    `json:"workingDays"`
	AttendanceRate string `json:"attendanceRate"`
}

// Summarize computes the monthly summary over the given records, which are
// expected to belong to a single employee within {year, month}. Null hours
// count as 0.
func Summarize(records []Attendance, year int, month time.Month) MonthlySummary {
	var totalHours float64
	var present, late, absent int

	for _, r := range records {
		if r.TotalHours != nil {
			totalHours += *r.TotalHours
		}
		switch r.Status {
		case StatusPresent:
			present++
		case StatusLate:
			late++
		case StatusAbsent:
			absent++
		}
	}

	workingDays := WorkingDays(year, month)

	return MonthlySummary{
		TotalHours:     fmt.Sprintf("%.2f", totalHours),
		DaysPresent:    present,
		DaysLate:       late,
		DaysAbsent:     absent,
		TotalDays:      len(records),
		WorkingDays:    workingDays,
		AttendanceRate: Rate(present, workingDays),
	}
}

// Rate formats count/total as a percentage with 1 decimal place, "0" when
// total is not positive.
func Rate(count, total int) string {
	if total <= 0 {
		return "0"
	}
	return fmt.Sprintf("%.1f", float64(count)/float64(total)*100)
}
