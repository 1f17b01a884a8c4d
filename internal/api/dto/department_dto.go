package dto

import (
	"strings"
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// DepartmentRequest is the department creation payload.
type DepartmentRequest struct {
	Name        string   `json:"name"`
	Code        string   `json:"code"`
	Description *string  `json:"description"`
	Budget      *float64 `json:"budget"`
}

// Validate checks required fields.
func (r *DepartmentRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Code = strings.TrimSpace(r.Code)
	if r.Name == "" || r.Code == "" {
		return apperrors.NewValidationError("name and code are required", nil)
	}
	return nil
}

// DepartmentResponse is the JSON shape of one department row.
type DepartmentResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Description   *string   `json:"description"`
	Budget        *float64  `json:"budget"`
	EmployeeCount int64     `json:"employee_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewDepartmentResponse maps a domain department into its JSON shape.
func NewDepartmentResponse(dept *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:            dept.ID,
		Name:          dept.Name,
		Code:          dept.Code,
		Description:   dept.Description,
		Budget:        dept.Budget,
		EmployeeCount: dept.EmployeeCount,
		CreatedAt:     dept.CreatedAt,
		UpdatedAt:     dept.UpdatedAt,
	}
}
