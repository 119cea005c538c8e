package employee

import "time"

// DefaultAnnualLeaveDays is granted to every newly registered employee.
const DefaultAnnualLeaveDays = 15

type Employee struct {
	ID              string
	Name            string
	Email           string
	Position        *string
	Department      *string
	Role            string
	AnnualLeaveDays int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
