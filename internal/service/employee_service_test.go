package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/events"
	"github.com/spec-kit/employee-service/internal/repository"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

type fakeEmployeeRepo struct {
	byID       map[string]*domain.Employee
	lastID     string
	createErr  error
	updateErr  error
	lastFilter repository.EmployeeFilter
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]*domain.Employee{}}
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp *domain.Employee) error {
	if f.createErr != nil {
		return f.createErr
	}
	emp.EmployeeID = domain.NextEmployeeID(time.Now().Year(), f.lastID)
	f.lastID = emp.EmployeeID
	emp.CreatedAt = time.Now()
	emp.UpdatedAt = emp.CreatedAt
	stored := *emp
	f.byID[emp.ID] = &stored
	return nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp *domain.Employee) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	existing, ok := f.byID[emp.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	emp.EmployeeID = existing.EmployeeID
	emp.CreatedAt = existing.CreatedAt
	emp.UpdatedAt = time.Now()
	stored := *emp
	f.byID[emp.ID] = &stored
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (*domain.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *emp
	return &copied, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter repository.EmployeeFilter) ([]domain.Employee, error) {
	f.lastFilter = filter
	return nil, nil
}

func (f *fakeEmployeeRepo) Count(_ context.Context, filter repository.EmployeeFilter) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeEmployeeRepo) Stats(_ context.Context) (*domain.EmployeeStats, error) {
	return &domain.EmployeeStats{TotalEmployees: int64(len(f.byID))}, nil
}

type fakeDispatcher struct {
	published []events.Event
}

func (f *fakeDispatcher) Publish(_ context.Context, event events.Event) error {
	f.published = append(f.published, event)
	return nil
}

func (f *fakeDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func testInput() EmployeeInput {
	return EmployeeInput{
		FirstName:        "Ada",
		LastName:         "Lovelace",
		Email:            "ada@uni.ac.uk",
		Country:          "UK",
		EmploymentType:   domain.EmploymentTypeFullTime,
		EmploymentStatus: domain.EmploymentStatusActive,
		HireDate:         time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Currency:         "GBP",
	}
}

func TestCreateAssignsIDAndPublishesEvent(t *testing.T) {
	repo := newFakeEmployeeRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewEmployeeService(repo, dispatcher)

	created, err := svc.Create(context.Background(), "actor-1", testInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.EmployeeID)

	require.Len(t, dispatcher.published, 1)
	event := dispatcher.published[0]
	require.Equal(t, events.EventEmployeeCreated, event.Type)
	require.Equal(t, created.ID, event.EntityID)
	require.Equal(t, "actor-1", event.ActorID)
}

func TestCreateMapsMissingDepartment(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.createErr = repository.ErrDepartmentMissing
	svc := NewEmployeeService(repo, &fakeDispatcher{})

	_, err := svc.Create(context.Background(), "actor-1", testInput())
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, http.StatusBadRequest, domainErr.HTTPStatus)
}

func TestCreateMapsMissingManager(t *testing.T) {
	repo := newFakeEmployeeRepo()
	repo.createErr = repository.ErrManagerMissing
	svc := NewEmployeeService(repo, &fakeDispatcher{})

	_, err := svc.Create(context.Background(), "actor-1", testInput())
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, apperrors.ToDomainError(err).HTTPStatus)
}

func TestUpdateUnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), &fakeDispatcher{})

	_, err := svc.Update(context.Background(), "actor-1", "missing-id", testInput())
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestUpdateKeepsEmployeeID(t *testing.T) {
	repo := newFakeEmployeeRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewEmployeeService(repo, dispatcher)

	created, err := svc.Create(context.Background(), "actor-1", testInput())
	require.NoError(t, err)

	input := testInput()
	input.JobTitle = strPtr("Lecturer")
	updated, err := svc.Update(context.Background(), "actor-1", created.ID, input)
	require.NoError(t, err)
	require.Equal(t, created.EmployeeID, updated.EmployeeID)
	require.NotNil(t, updated.JobTitle)

	require.Len(t, dispatcher.published, 2)
	require.Equal(t, events.EventEmployeeUpdated, dispatcher.published[1].Type)
}

func TestDeleteUnknownEmployee(t *testing.T) {
	svc := NewEmployeeService(newFakeEmployeeRepo(), &fakeDispatcher{})

	err := svc.Delete(context.Background(), "actor-1", "missing-id")
	require.Error(t, err)
	require.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)

	// retrying is an idempotent no-op yielding the same result
	err = svc.Delete(context.Background(), "actor-1", "missing-id")
	require.Equal(t, http.StatusNotFound, apperrors.ToDomainError(err).HTTPStatus)
}

func TestDeletePublishesEvent(t *testing.T) {
	repo := newFakeEmployeeRepo()
	dispatcher := &fakeDispatcher{}
	svc := NewEmployeeService(repo, dispatcher)

	created, err := svc.Create(context.Background(), "actor-1", testInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), "actor-1", created.ID))
	require.Len(t, dispatcher.published, 2)
	require.Equal(t, events.EventEmployeeDeleted, dispatcher.published[1].Type)
}

func TestListNormalizesPaging(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := NewEmployeeService(repo, &fakeDispatcher{})

	_, _, err := svc.List(context.Background(), EmployeeListParams{Page: 0, Limit: 0})
	require.NoError(t, err)
	require.Equal(t, 10, repo.lastFilter.Limit)
	require.Equal(t, 0, repo.lastFilter.Offset)

	_, _, err = svc.List(context.Background(), EmployeeListParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 10, repo.lastFilter.Limit)
	require.Equal(t, 10, repo.lastFilter.Offset)

	_, _, err = svc.List(context.Background(), EmployeeListParams{Page: 3, Limit: 25, Search: "ada", Status: "Active"})
	require.NoError(t, err)
	require.Equal(t, 50, repo.lastFilter.Offset)
	require.Equal(t, "ada", repo.lastFilter.Search)
	require.Equal(t, "Active", repo.lastFilter.Status)
}

func strPtr(s string) *string { return &s }
