package domain

import "time"

// Department represents an organizational unit employees belong to.
type Department struct {
	ID          string
	Name        string
	Code        string
	Description *string
	Budget      *float64
	// EmployeeCount is populated on listing: employees referencing the
	// department with employment status Active.
	EmployeeCount int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
