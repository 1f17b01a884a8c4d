package events

import (
	"time"

	"github.com/spec-kit/employee-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventEmployeeCreated   EventType = "employee_created"
	EventEmployeeUpdated   EventType = "employee_updated"
	EventEmployeeDeleted   EventType = "employee_deleted"
	EventDepartmentCreated EventType = "department_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  string      `json:"entity_id"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// EmployeeCreatedPayload payload.
type EmployeeCreatedPayload struct {
	EmployeeID       string                  `json:"employee_id"`
	Email            string                  `json:"email"`
	DepartmentID     *string                 `json:"department_id,omitempty"`
	EmploymentStatus domain.EmploymentStatus `json:"employment_status"`
}

// EmployeeUpdatedPayload payload.
type EmployeeUpdatedPayload struct {
	EmployeeID       string                  `json:"employee_id"`
	EmploymentStatus domain.EmploymentStatus `json:"employment_status"`
}

// EmployeeDeletedPayload payload.
type EmployeeDeletedPayload struct {
	EmployeeID string `json:"employee_id"`
}

// DepartmentCreatedPayload payload.
type DepartmentCreatedPayload struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
