package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, 3, 3, hour, min, sec, 0, time.Local)
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name    string
		clockIn time.Time
		want    Status
	}{
		{"well before nine", at(7, 30, 0), StatusNormal},
		{"exactly nine is on time", at(9, 0, 0), StatusNormal},
		{"one second past nine is late", at(9, 0, 1), StatusLate},
		{"nine fifteen is late", at(9, 15, 0), StatusLate},
		{"afternoon is late", at(14, 0, 0), StatusLate},
		{"midnight is on time", at(0, 0, 0), StatusNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.clockIn))
		})
	}
}

func TestStatusOf_SubSecondPastNine(t *testing.T) {
	clockIn := time.Date(2025, 3, 3, 9, 0, 0, 1, time.Local)
	assert.Equal(t, StatusLate, StatusOf(clockIn))
}

func TestWorkingMinutes(t *testing.T) {
	tests := []struct {
		name     string
		clockIn  time.Time
		clockOut time.Time
		want     int
	}{
		{"full day", at(9, 15, 0), at(18, 0, 0), 525},
		{"seconds are floored", at(9, 0, 0), at(9, 1, 59), 1},
		{"same instant", at(9, 0, 0), at(9, 0, 0), 0},
		{"under a minute", at(9, 0, 0), at(9, 0, 59), 0},
		{"clock skew clamps to zero", at(18, 0, 0), at(9, 0, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkingMinutes(tt.clockIn, tt.clockOut))
		})
	}
}

func TestDateOf(t *testing.T) {
	assert.Equal(t, "2025-03-03", DateOf(at(23, 59, 59)))
}
