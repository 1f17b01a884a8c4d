package handlers

import (
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/employee-service/internal/api/dto"
	"github.com/spec-kit/employee-service/internal/auth"
	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/service"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// EmployeesHandler manages employee record endpoints.
type EmployeesHandler struct {
	service *service.EmployeeService
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(employeeService *service.EmployeeService) *EmployeesHandler {
	return &EmployeesHandler{service: employeeService}
}

// List GET /api/employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	params := service.EmployeeListParams{
		Page:         parseInt(c.Query("page"), 1),
		Limit:        parseInt(c.Query("limit"), 10),
		Search:       c.Query("search"),
		DepartmentID: c.Query("department"),
		Status:       c.Query("status"),
	}

	employees, total, err := h.service.List(c.Context(), params)
	if err != nil {
		return err
	}

	items := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		items = append(items, dto.NewEmployeeResponse(&employees[i]))
	}
	return c.JSON(dto.EmployeeListResponse{
		Employees:  items,
		Pagination: dto.NewPagination(params.Page, params.Limit, total),
	})
}

// Stats GET /api/employees/stats.
func (h *EmployeesHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeStatsResponse(stats))
}

// Get GET /api/employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	emp, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewEmployeeResponse(emp))
}

// Create POST /api/employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := h.service.Create(c.Context(), user.ID, employeeInput(&req))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":  "Employee created successfully",
		"employee": dto.NewEmployeeResponse(emp),
	})
}

// Update PUT /api/employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := h.service.Update(c.Context(), user.ID, c.Params("id"), employeeInput(&req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":  "Employee updated successfully",
		"employee": dto.NewEmployeeResponse(emp),
	})
}

// Delete DELETE /api/employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	user, ok := auth.UserFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("Authentication required")
	}

	if err := h.service.Delete(c.Context(), user.ID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
}

func employeeInput(req *dto.EmployeeRequest) service.EmployeeInput {
	return service.EmployeeInput{
		FirstName:                    req.FirstName,
		LastName:                     req.LastName,
		Email:                        req.Email,
		Phone:                        req.Phone,
		DateOfBirth:                  req.DateOfBirthValue(),
		Gender:                       req.Gender,
		Address:                      req.Address,
		City:                         req.City,
		State:                        req.State,
		PostalCode:                   req.PostalCode,
		Country:                      req.Country,
		DepartmentID:                 req.DepartmentID,
		JobTitle:                     req.JobTitle,
		EmploymentType:               domain.EmploymentType(req.EmploymentType),
		EmploymentStatus:             domain.EmploymentStatus(req.EmploymentStatus),
		HireDate:                     req.HireDateValue(),
		Salary:                       req.Salary,
		Currency:                     req.Currency,
		ManagerID:                    req.ManagerID,
		NationalInsuranceNumber:      req.NationalInsuranceNumber,
		PassportNumber:               req.PassportNumber,
		VisaStatus:                   req.VisaStatus,
		EmergencyContactName:         req.EmergencyContactName,
		EmergencyContactPhone:        req.EmergencyContactPhone,
		EmergencyContactRelationship: req.EmergencyContactRelationship,
		Notes:                        req.Notes,
	}
}

func parseInt(val string, def int) int {
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil || parsed <= 0 {
		return def
	}
	return parsed
}
