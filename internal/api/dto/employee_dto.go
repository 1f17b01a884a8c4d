package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

const dateLayout = "2006-01-02"

// EmployeeRequest is the full create/update payload. Optional fields default
// at this boundary: country UK, employment type Full-time, employment status
// Active, currency GBP.
type EmployeeRequest struct {
	FirstName                    string   `json:"first_name"`
	LastName                     string   `json:"last_name"`
	Email                        string   `json:"email"`
	Phone                        *string  `json:"phone"`
	DateOfBirth                  *string  `json:"date_of_birth"`
	Gender                       *string  `json:"gender"`
	Address                      *string  `json:"address"`
	City                         *string  `json:"city"`
	State                        *string  `json:"state"`
	PostalCode                   *string  `json:"postal_code"`
	Country                      string   `json:"country"`
	DepartmentID                 *string  `json:"department_id"`
	JobTitle                     *string  `json:"job_title"`
	EmploymentType               string   `json:"employment_type"`
	EmploymentStatus             string   `json:"employment_status"`
	HireDate                     string   `json:"hire_date"`
	Salary                       *float64 `json:"salary"`
	Currency                     string   `json:"currency"`
	ManagerID                    *string  `json:"manager_id"`
	NationalInsuranceNumber      *string  `json:"national_insurance_number"`
	PassportNumber               *string  `json:"passport_number"`
	VisaStatus                   *string  `json:"visa_status"`
	EmergencyContactName         *string  `json:"emergency_contact_name"`
	EmergencyContactPhone        *string  `json:"emergency_contact_phone"`
	EmergencyContactRelationship *string  `json:"emergency_contact_relationship"`
	Notes                        *string  `json:"notes"`

	hireDate    time.Time
	dateOfBirth *time.Time
}

// Validate applies defaults and checks required fields, enumerated values
// and date formats.
func (r *EmployeeRequest) Validate() error {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)

	missing := []string{}
	if r.FirstName == "" {
		missing = append(missing, "first_name")
	}
	if r.LastName == "" {
		missing = append(missing, "last_name")
	}
	if r.Email == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.HireDate) == "" {
		missing = append(missing, "hire_date")
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError(
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")), nil)
	}

	if r.Country == "" {
		r.Country = "UK"
	}
	if r.EmploymentType == "" {
		r.EmploymentType = string(domain.EmploymentTypeFullTime)
	}
	if r.EmploymentStatus == "" {
		r.EmploymentStatus = string(domain.EmploymentStatusActive)
	}
	if r.Currency == "" {
		r.Currency = "GBP"
	}

	if !domain.ValidEmploymentType(domain.EmploymentType(r.EmploymentType)) {
		return apperrors.NewValidationError(
			fmt.Sprintf("invalid employment_type %q", r.EmploymentType), nil)
	}
	if !domain.ValidEmploymentStatus(domain.EmploymentStatus(r.EmploymentStatus)) {
		return apperrors.NewValidationError(
			fmt.Sprintf("invalid employment_status %q", r.EmploymentStatus), nil)
	}

	hireDate, err := time.Parse(dateLayout, strings.TrimSpace(r.HireDate))
	if err != nil {
		return apperrors.NewValidationError("hire_date must be formatted YYYY-MM-DD", nil)
	}
	r.hireDate = hireDate

	if r.DateOfBirth != nil && strings.TrimSpace(*r.DateOfBirth) != "" {
		dob, err := time.Parse(dateLayout, strings.TrimSpace(*r.DateOfBirth))
		if err != nil {
			return apperrors.NewValidationError("date_of_birth must be formatted YYYY-MM-DD", nil)
		}
		r.dateOfBirth = &dob
	}

	return nil
}

// HireDateValue returns the parsed hire date. Valid only after Validate.
func (r *EmployeeRequest) HireDateValue() time.Time {
	return r.hireDate
}

// DateOfBirthValue returns the parsed date of birth, if provided.
func (r *EmployeeRequest) DateOfBirthValue() *time.Time {
	return r.dateOfBirth
}

// EmployeeResponse is the JSON shape of one employee row.
type EmployeeResponse struct {
	ID                           string    `json:"id"`
	EmployeeID                   string    `json:"employee_id"`
	FirstName                    string    `json:"first_name"`
	LastName                     string    `json:"last_name"`
	Email                        string    `json:"email"`
	Phone                        *string   `json:"phone"`
	DateOfBirth                  *string   `json:"date_of_birth"`
	Gender                       *string   `json:"gender"`
	Address                      *string   `json:"address"`
	City                         *string   `json:"city"`
	State                        *string   `json:"state"`
	PostalCode                   *string   `json:"postal_code"`
	Country                      string    `json:"country"`
	DepartmentID                 *string   `json:"department_id"`
	DepartmentName               *string   `json:"department_name"`
	JobTitle                     *string   `json:"job_title"`
	EmploymentType               string    `json:"employment_type"`
	EmploymentStatus             string    `json:"employment_status"`
	HireDate                     string    `json:"hire_date"`
	Salary                       *float64  `json:"salary"`
	Currency                     string    `json:"currency"`
	ManagerID                    *string   `json:"manager_id"`
	ManagerFirstName             *string   `json:"manager_first_name"`
	ManagerLastName              *string   `json:"manager_last_name"`
	NationalInsuranceNumber      *string   `json:"national_insurance_number"`
	PassportNumber               *string   `json:"passport_number"`
	VisaStatus                   *string   `json:"visa_status"`
	EmergencyContactName         *string   `json:"emergency_contact_name"`
	EmergencyContactPhone        *string   `json:"emergency_contact_phone"`
	EmergencyContactRelationship *string   `json:"emergency_contact_relationship"`
	Notes                        *string   `json:"notes"`
	CreatedAt                    time.Time `json:"created_at"`
	UpdatedAt                    time.Time `json:"updated_at"`
}

// NewEmployeeResponse maps a domain employee into its JSON shape.
func NewEmployeeResponse(emp *domain.Employee) EmployeeResponse {
	var dob *string
	if emp.DateOfBirth != nil {
		formatted := emp.DateOfBirth.Format(dateLayout)
		dob = &formatted
	}
	return EmployeeResponse{
		ID:                           emp.ID,
		EmployeeID:                   emp.EmployeeID,
		FirstName:                    emp.FirstName,
		LastName:                     emp.LastName,
		Email:                        emp.Email,
		Phone:                        emp.Phone,
		DateOfBirth:                  dob,
		Gender:                       emp.Gender,
		Address:                      emp.Address,
		City:                         emp.City,
		State:                        emp.State,
		PostalCode:                   emp.PostalCode,
		Country:                      emp.Country,
		DepartmentID:                 emp.DepartmentID,
		DepartmentName:               emp.DepartmentName,
		JobTitle:                     emp.JobTitle,
		EmploymentType:               string(emp.EmploymentType),
		EmploymentStatus:             string(emp.EmploymentStatus),
		HireDate:                     emp.HireDate.Format(dateLayout),
		Salary:                       emp.Salary,
		Currency:                     emp.Currency,
		ManagerID:                    emp.ManagerID,
		ManagerFirstName:             emp.ManagerFirstName,
		ManagerLastName:              emp.ManagerLastName,
		NationalInsuranceNumber:      emp.NationalInsuranceNumber,
		PassportNumber:               emp.PassportNumber,
		VisaStatus:                   emp.VisaStatus,
		EmergencyContactName:         emp.EmergencyContactName,
		EmergencyContactPhone:        emp.EmergencyContactPhone,
		EmergencyContactRelationship: emp.EmergencyContactRelationship,
		Notes:                        emp.Notes,
		CreatedAt:                    emp.CreatedAt,
		UpdatedAt:                    emp.UpdatedAt,
	}
}

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// NewPagination computes page metadata; pages = ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	pages := (total + int64(limit) - 1) / int64(limit)
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// EmployeeListResponse wraps a page of employees.
type EmployeeListResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	Pagination Pagination         `json:"pagination"`
}

// StatusBucket is one per-status count in the stats response.
type StatusBucket struct {
	EmploymentStatus string `json:"employment_status"`
	Count            int64  `json:"count"`
}

// DepartmentBucket is one per-department count in the stats response.
type DepartmentBucket struct {
	DepartmentName string `json:"department_name"`
	Count          int64  `json:"count"`
}

// EmployeeStatsResponse is the aggregate stats shape.
type EmployeeStatsResponse struct {
	TotalEmployees         int64              `json:"totalEmployees"`
	StatusDistribution     []StatusBucket     `json:"statusDistribution"`
	DepartmentDistribution []DepartmentBucket `json:"departmentDistribution"`
	RecentHires            int64              `json:"recentHires"`
}

// NewEmployeeStatsResponse maps domain stats into the response shape.
func NewEmployeeStatsResponse(stats *domain.EmployeeStats) EmployeeStatsResponse {
	resp := EmployeeStatsResponse{
		TotalEmployees:         stats.TotalEmployees,
		StatusDistribution:     make([]StatusBucket, 0, len(stats.StatusDistribution)),
		DepartmentDistribution: make([]DepartmentBucket, 0, len(stats.DepartmentDistribution)),
		RecentHires:            stats.RecentHires,
	}
	for _, bucket := range stats.StatusDistribution {
		resp.StatusDistribution = append(resp.StatusDistribution, StatusBucket{
			EmploymentStatus: string(bucket.Status),
			Count:            bucket.Count,
		})
	}
	for _, bucket := range stats.DepartmentDistribution {
		resp.DepartmentDistribution = append(resp.DepartmentDistribution, DepartmentBucket{
			DepartmentName: bucket.DepartmentName,
			Count:          bucket.Count,
		})
	}
	return resp
}
