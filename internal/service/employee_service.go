package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

// EmployeeInput carries a validated full employee payload.
type EmployeeInput struct {
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
	EmploymentType               domain.EmploymentType
	EmploymentStatus             domain.EmploymentStatus
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
}

// EmployeeListParams captures listing parameters before normalization.
type EmployeeListParams struct {
	Page         int
	Limit        int
	Search       string
	DepartmentID string
	Status       string
}

// EmployeeService coordinates employee record operations.
type EmployeeService struct {
	repo       repository.EmployeeRepository
	dispatcher events.Dispatcher
}

// NewEmployeeService builds the service.
func NewEmployeeService(repo repository.EmployeeRepository, dispatcher events.Dispatcher) *EmployeeService {
	return &EmployeeService{repo: repo, dispatcher: dispatcher}
}

// List returns one page of matching employees plus the total matching count.
func (s *EmployeeService) List(ctx context.Context, params EmployeeListParams) ([]domain.Employee, int64, error) {
	page := params.Page
	if page < 1 {
		page = 1
	}
	limit := params.Limit
	if limit <= 0 {
		limit = 10
	}

	filter := repository.EmployeeFilter{
		Search:       params.Search,
		DepartmentID: params.DepartmentID,
		Status:       params.Status,
		Limit:        limit,
		Offset:       (page - 1) * limit,
	}

	employees, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// Get fetches one employee joined with department and manager names.
func (s *EmployeeService) Get(ctx context.Context, id string) (*domain.Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFound("Employee")
		}
		return nil, err
	}
	return emp, nil
}

// Create inserts a new employee, generating the opaque id and the
// sequential employee identifier.
func (s *EmployeeService) Create(ctx context.Context, actorID string, input EmployeeInput) (*domain.Employee, error) {
	emp := employeeFromInput(input)
	emp.ID = uuid.NewString()

	if err := s.repo.Create(ctx, emp); err != nil {
		return nil, mapReferenceError(err)
	}

	created, err := s.repo.GetByID(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventEmployeeCreated, created.ID, actorID, events.EmployeeCreatedPayload{
		EmployeeID:       created.EmployeeID,
		Email:            created.Email,
		DepartmentID:     created.DepartmentID,
		EmploymentStatus: created.EmploymentStatus,
	})
	return created, nil
}

// Update replaces the mutable fields of an employee. The sequential
// identifier and creation time are untouched.
func (s *EmployeeService) Update(ctx context.Context, actorID, id string, input EmployeeInput) (*domain.Employee, error) {
	emp := employeeFromInput(input)
	emp.ID = id

	if err := s.repo.Update(ctx, emp); err != nil {
		if isNoRows(err) {
			return nil, apperrors.NewNotFound("Employee")
		}
		return nil, mapReferenceError(err)
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventEmployeeUpdated, updated.ID, actorID, events.EmployeeUpdatedPayload{
		EmployeeID:       updated.EmployeeID,
		EmploymentStatus: updated.EmploymentStatus,
	})
	return updated, nil
}

// Delete removes an employee row by id.
func (s *EmployeeService) Delete(ctx context.Context, actorID, id string) error {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return apperrors.NewNotFound("Employee")
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if isNoRows(err) {
			return apperrors.NewNotFound("Employee")
		}
		return err
	}

	s.publish(ctx, events.EventEmployeeDeleted, id, actorID, events.EmployeeDeletedPayload{
		EmployeeID: emp.EmployeeID,
	})
	return nil
}

// Stats returns aggregate workforce numbers.
func (s *EmployeeService) Stats(ctx context.Context) (*domain.EmployeeStats, error) {
	return s.repo.Stats(ctx)
}

func (s *EmployeeService) publish(ctx context.Context, eventType events.EventType, entityID, actorID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  entityID,
		ActorID:   actorID,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	})
}

func employeeFromInput(input EmployeeInput) *domain.Employee {
	return &domain.Employee{
		FirstName:                    input.FirstName,
		LastName:                     input.LastName,
		Email:                        input.Email,
		Phone:                        input.Phone,
		DateOfBirth:                  input.DateOfBirth,
		Gender:                       input.Gender,
		Address:                      input.Address,
		City:                         input.City,
		State:                        input.State,
		PostalCode:                   input.PostalCode,
		Country:                      input.Country,
		DepartmentID:                 input.DepartmentID,
		JobTitle:                     input.JobTitle,
		EmploymentType:               input.EmploymentType,
		EmploymentStatus:             input.EmploymentStatus,
		HireDate:                     input.HireDate,
		Salary:                       input.Salary,
		Currency:                     input.Currency,
		ManagerID:                    input.ManagerID,
		NationalInsuranceNumber:      input.NationalInsuranceNumber,
		PassportNumber:               input.PassportNumber,
		VisaStatus:                   input.VisaStatus,
		EmergencyContactName:         input.EmergencyContactName,
		EmergencyContactPhone:        input.EmergencyContactPhone,
		EmergencyContactRelationship: input.EmergencyContactRelationship,
		Notes:                        input.Notes,
	}
}

func mapReferenceError(err error) error {
	switch {
	case errors.Is(err, repository.ErrDepartmentMissing):
		return apperrors.NewValidationError("department_id does not reference an existing department", nil)
	case errors.Is(err, repository.ErrManagerMissing):
		return apperrors.NewValidationError("manager_id does not reference an existing employee", nil)
	default:
		return err
	}
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
