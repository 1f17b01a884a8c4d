package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

func validRequest() EmployeeRequest {
	return EmployeeRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@uni.ac.uk",
		HireDate:  "2024-03-01",
	}
}

func TestEmployeeRequestValidateAppliesDefaults(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())

	require.Equal(t, "UK", req.Country)
	require.Equal(t, string(domain.EmploymentTypeFullTime), req.EmploymentType)
	require.Equal(t, string(domain.EmploymentStatusActive), req.EmploymentStatus)
	require.Equal(t, "GBP", req.Currency)
	require.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), req.HireDateValue())
}

func TestEmployeeRequestValidateKeepsProvidedValues(t *testing.T) {
	req := validRequest()
	req.Country = "FR"
	req.EmploymentType = string(domain.EmploymentTypeContract)
	req.EmploymentStatus = string(domain.EmploymentStatusInactive)
	req.Currency = "EUR"
	require.NoError(t, req.Validate())

	require.Equal(t, "FR", req.Country)
	require.Equal(t, string(domain.EmploymentTypeContract), req.EmploymentType)
	require.Equal(t, string(domain.EmploymentStatusInactive), req.EmploymentStatus)
	require.Equal(t, "EUR", req.Currency)
}

func TestEmployeeRequestValidateMissingFields(t *testing.T) {
	req := EmployeeRequest{Email: "ada@uni.ac.uk"}
	err := req.Validate()
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, 400, domainErr.HTTPStatus)
	require.Contains(t, domainErr.Message, "first_name")
	require.Contains(t, domainErr.Message, "last_name")
	require.Contains(t, domainErr.Message, "hire_date")
}

func TestEmployeeRequestValidateRejectsUnknownStatus(t *testing.T) {
	req := validRequest()
	req.EmploymentStatus = "Retired"
	err := req.Validate()
	require.Error(t, err)
	require.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}

func TestEmployeeRequestValidateRejectsUnknownType(t *testing.T) {
	req := validRequest()
	req.EmploymentType = "Freelance"
	require.Error(t, req.Validate())
}

func TestEmployeeRequestValidateRejectsBadDates(t *testing.T) {
	req := validRequest()
	req.HireDate = "01/03/2024"
	require.Error(t, req.Validate())

	req = validRequest()
	badDOB := "not-a-date"
	req.DateOfBirth = &badDOB
	require.Error(t, req.Validate())
}

func TestEmployeeRequestValidateParsesDateOfBirth(t *testing.T) {
	req := validRequest()
	dob := "1990-12-10"
	req.DateOfBirth = &dob
	require.NoError(t, req.Validate())
	require.NotNil(t, req.DateOfBirthValue())
	require.Equal(t, time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC), *req.DateOfBirthValue())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		want  Pagination
	}{
		{"exact pages", 1, 10, 30, Pagination{Page: 1, Limit: 10, Total: 30, Pages: 3}},
		{"partial last page", 2, 10, 25, Pagination{Page: 2, Limit: 10, Total: 25, Pages: 3}},
		{"empty result", 1, 10, 0, Pagination{Page: 1, Limit: 10, Total: 0, Pages: 0}},
		{"normalizes page and limit", 0, 0, 5, Pagination{Page: 1, Limit: 10, Total: 5, Pages: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}

func TestNewEmployeeResponseFormatsDates(t *testing.T) {
	dob := time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)
	emp := &domain.Employee{
		ID:               "id-1",
		EmployeeID:       "EMP-2024-0001",
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            "ada@uni.ac.uk",
		HireDate:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		DateOfBirth:      &dob,
		EmploymentType:   domain.EmploymentTypeFullTime,
		EmploymentStatus: domain.EmploymentStatusActive,
		Country:          "UK",
		Currency:         "GBP",
	}

	resp := NewEmployeeResponse(emp)
	require.Equal(t, "2024-03-01", resp.HireDate)
	require.NotNil(t, resp.DateOfBirth)
	require.Equal(t, "1990-12-10", *resp.DateOfBirth)
	require.Equal(t, "EMP-2024-0001", resp.EmployeeID)
}
