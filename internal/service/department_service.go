package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
)

// DepartmentInput carries a validated department payload.
type DepartmentInput struct {
	Name        string
	Code        string
	Description *string
	Budget      *float64
}

// DepartmentService coordinates department operations.
type DepartmentService struct {
	repo       repository.DepartmentRepository
	dispatcher events.Dispatcher
}

// NewDepartmentService builds the service.
func NewDepartmentService(repo repository.DepartmentRepository, dispatcher events.Dispatcher) *DepartmentService {
	return &DepartmentService{repo: repo, dispatcher: dispatcher}
}

// List returns all departments annotated with active employee counts,
// ordered by name.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	return s.repo.ListWithCounts(ctx)
}

// Create inserts a new department. Code uniqueness is enforced by the store.
func (s *DepartmentService) Create(ctx context.Context, actorID string, input DepartmentInput) (*domain.Department, error) {
	dept := &domain.Department{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Code:        input.Code,
		Description: input.Description,
		Budget:      input.Budget,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventDepartmentCreated,
			EntityID:  dept.ID,
			ActorID:   actorID,
			Timestamp: time.Now().UTC(),
			Payload:   events.DepartmentCreatedPayload{Name: dept.Name, Code: dept.Code},
		})
	}
	return dept, nil
}
