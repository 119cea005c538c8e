package attendance

import "time"

// Status is derived once at clock-in and never recomputed afterwards.
type Status string

const (
	StatusNormal     Status = "normal"
	StatusLate       Status = "late"
	StatusAbsent     Status = "absent"
	StatusUnrecorded Status = "unrecorded"
)

// Record is the single per-employee-per-day attendance entry.
// Date is the local calendar day in "2006-01-02" form; ClockIn/ClockOut are
// wall-clock timestamps (single-timezone deployment).
type Record struct {
	ID             string
	EmployeeID     string
	Date           string
	ClockIn        *time.Time
	ClockOut       *time.Time
	WorkingMinutes *int
	Status         Status
	Memo           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// standardClockIn is the cut-off for punctuality: strictly after 09:00:00
// counts as late.
var standardClockIn = struct{ hour, minute, second int }{9, 0, 0}

// StatusOf derives the punctuality status from the clock-in wall-clock time.
// It compares time of day only, not elapsed duration.
func StatusOf(clockIn time.Time) Status {
	cutoff := time.Date(
		clockIn.Year(), clockIn.Month(), clockIn.Day(),
		standardClockIn.hour, standardClockIn.minute, standardClockIn.second, 0,
		clockIn.Location(),
	)
	if clockIn.After(cutoff) {
		return StatusLate
	}
	return StatusNormal
}

// WorkingMinutes returns whole minutes between clock-in and clock-out,
// clamped to zero so clock skew can never produce a negative duration.
func WorkingMinutes(clockIn, clockOut time.Time) int {
	total := int(clockOut.Sub(clockIn).Seconds()) / 60
	if total < 0 {
		return 0
	}
	return total
}

// DateOf formats a timestamp as the calendar day it belongs to.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
