package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2024, time.March, 15, hour, min, sec, 0, time.UTC)
}

func TestClassifyClockIn(t *testing.T) {
	cases := []struct {
		clockIn time.Time
		want    string
	}{
		{at(8, 59, 0), StatusPresent},
		{at(9, 0, 0), StatusLate},
		{at(9, 30, 0), StatusLate},
		{at(0, 0, 0), StatusPresent},
		{at(23, 59, 59), StatusLate},
	}
	for _, c := range cases {
		got := ClassifyClockIn(c.clockIn)
		if got != c.want {
			t.Errorf("ClassifyClockIn(%s) = %q, want %q", c.clockIn.Format("15:04:05"), got, c.want)
		}
	}
}

func TestElapsedHours(t *testing.T) {
	cases := []struct {
		name     string
		in, out  time.Time
		want     float64
	}{
		{"standard day", at(9, 0, 0), at(17, 30, 0), 8.5},
		{"short stint", at(9, 0, 0), at(9, 15, 0), 0.25},
		{"rounds to 2dp", at(9, 0, 0), at(17, 10, 0), 8.17},
		{"zero duration", at(9, 0, 0), at(9, 0, 0), 0},
		{"clock-out before clock-in saturates", at(17, 0, 0), at(9, 0, 0), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, ElapsedHours(c.in, c.out))
		})
	}
}

func TestWorkingDays(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2024, time.January, 22},  // 31 days
		{2024, time.February, 20}, // 29 days (leap)
		{2023, time.February, 20}, // 28 days
		{2024, time.April, 21},    // 30 days
		{2024, time.December, 22}, // year rollover in daysInMonth math
	}
	for _, c := range cases {
		got := WorkingDays(c.year, c.month)
		if got != c.want {
			t.Errorf("WorkingDays(%d, %s) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	hours := func(h float64) *float64 { return &h }

	var records []Attendance
	for i := 0; i < 20; i++ {
		records = append(records, Attendance{Status: StatusPresent, TotalHours: hours(8)})
	}
	for i := 0; i < 2; i++ {
		records = append(records, Attendance{Status: StatusLate, TotalHours: hours(7.5)})
	}
	// A row with no hours recorded yet (clocked in, never out)
	records = append(records, Attendance{Status: StatusPresent})

	summary := Summarize(records, 2024, time.January)

	assert.Equal(t, "175.00", summary.TotalHours)
	assert.Equal(t, 21, summary.DaysPresent)
	assert.Equal(t, 2, summary.DaysLate)
	assert.Equal(t, 0, summary.DaysAbsent)
	assert.Equal(t, 23, summary.TotalDays)
	assert.Equal(t, 22, summary.WorkingDays)
}

func TestSummarizeSpecExample(t *testing.T) {
	// 20 present + 2 late in a 31-day month: rate counts present only.
	var records []Attendance
	for i := 0; i < 20; i++ {
		records = append(records, Attendance{Status: StatusPresent})
	}
	for i := 0; i < 2; i++ {
		records = append(records, Attendance{Status: StatusLate})
	}

	summary := Summarize(records, 2024, time.January)
	assert.Equal(t, 22, summary.WorkingDays)
	assert.Equal(t, "90.9", summary.AttendanceRate)
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil, 2024, time.June)
	assert.Equal(t, "0.00", summary.TotalHours)
	assert.Equal(t, 0, summary.TotalDays)
	assert.Equal(t, 21, summary.WorkingDays)
	assert.Equal(t, "0.0", summary.AttendanceRate)
}

func TestRate(t *testing.T) {
	assert.Equal(t, "0", Rate(5, 0))
	assert.Equal(t, "50.0", Rate(1, 2))
	assert.Equal(t, "90.9", Rate(20, 22))
	assert.Equal(t, "100.0", Rate(10, 10))
}
