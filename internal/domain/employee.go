package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EmploymentType enumerates contract kinds.
type EmploymentType string

const (
	EmploymentTypeFullTime  EmploymentType = "Full-time"
	EmploymentTypePartTime  EmploymentType = "Part-time"
	EmploymentTypeContract  EmploymentType = "Contract"
	EmploymentTypeTemporary EmploymentType = "Temporary"
)

// EmploymentStatus enumerates lifecycle states of an employment.
type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "Active"
	EmploymentStatusInactive   EmploymentStatus = "Inactive"
	EmploymentStatusOnLeave    EmploymentStatus = "On Leave"
	EmploymentStatusTerminated EmploymentStatus = "Terminated"
)

// ValidEmploymentType reports whether t is a known contract kind.
func ValidEmploymentType(t EmploymentType) bool {
	switch t {
	case EmploymentTypeFullTime, EmploymentTypePartTime, EmploymentTypeContract, EmploymentTypeTemporary:
		return true
	}
	return false
}

// ValidEmploymentStatus reports whether s is a known lifecycle state.
func ValidEmploymentStatus(s EmploymentStatus) bool {
	switch s {
	case EmploymentStatusActive, EmploymentStatusInactive, EmploymentStatusOnLeave, EmploymentStatusTerminated:
		return true
	}
	return false
}

// Employee is the full personnel record.
type Employee struct {
	ID                           string
	EmployeeID                   string
	FirstName                    string
	LastName                     string
	Email                        string
	Phone                        *string
	DateOfBirth                  *time.Time
	Gender                       *string
	Address                      *string
	City                         *string
	State                        *string
	PostalCode                   *string
	Country                      string
	DepartmentID                 *string
	JobTitle                     *string
	EmploymentType               EmploymentType
	EmploymentStatus             EmploymentStatus
	HireDate                     time.Time
	Salary                       *float64
	Currency                     string
	ManagerID                    *string
	NationalInsuranceNumber      *string
	PassportNumber               *string
	VisaStatus                   *string
	EmergencyContactName         *string
	EmergencyContactPhone        *string
	EmergencyContactRelationship *string
	Notes                        *string
	CreatedAt                    time.Time
	UpdatedAt                    time.Time

	// Joined attributes, populated by list/get queries.
	DepartmentName   *string
	ManagerFirstName *string
	ManagerLastName  *string
}

// EmployeeIDPrefix returns the "EMP-<year>-" prefix for a creation year.
func EmployeeIDPrefix(year int) string {
	return fmt.Sprintf("EMP-%d-", year)
}

// NextEmployeeID computes the next sequential identifier for a creation
// year, given the current greatest identifier with that year's prefix.
// lastID == "" means no employee exists for the year yet.
func NextEmployeeID(year int, lastID string) string {
	next := 1
	if lastID != "" {
		parts := strings.Split(lastID, "-")
		if len(parts) == 3 {
			if n, err := strconv.Atoi(parts[2]); err == nil {
				next = n + 1
			}
		}
	}
	return fmt.Sprintf("%s%04d", EmployeeIDPrefix(year), next)
}

// StatusCount is one bucket of the per-status distribution.
type StatusCount struct {
	Status EmploymentStatus
	Count  int64
}

// DepartmentCount is one bucket of the per-department distribution.
type DepartmentCount struct {
	DepartmentName string
	Count          int64
}

// EmployeeStats aggregates workforce numbers for the stats endpoint.
type EmployeeStats struct {
	TotalEmployees         int64
	StatusDistribution     []StatusCount
	DepartmentDistribution []DepartmentCount
	RecentHires            int64
}
