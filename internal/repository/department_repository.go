package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	ListWithCounts(ctx context.Context) ([]domain.Department, error)
}

type departmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository builds the repository.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{pool: pool}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (id, name, code, description, budget)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		dept.ID,
		dept.Name,
		dept.Code,
		dept.Description,
		dept.Budget,
	).Scan(&dept.CreatedAt, &dept.UpdatedAt)
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	const query = `
        SELECT id, name, code, description, budget, created_at, updated_at
        FROM departments WHERE id=$1`
	var dept domain.Department
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&dept.ID,
		&dept.Name,
		&dept.Code,
		&dept.Description,
		&dept.Budget,
		&dept.CreatedAt,
		&dept.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &dept, nil
}

// Counting happens in the join condition so departments with no active
// employees still appear with a zero count.
const departmentListQuery = `
        SELECT d.id, d.name, d.code, d.description, d.budget, d.created_at, d.updated_at,
               COUNT(e.id) AS employee_count
        FROM departments d
        LEFT JOIN employees e ON d.id = e.department_id AND e.employment_status = 'Active'
        GROUP BY d.id
        ORDER BY d.name`

// ListWithCounts returns all departments with a live count of employees
// whose employment status is Active.
func (r *departmentRepository) ListWithCounts(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.pool.Query(ctx, departmentListQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(
			&dept.ID,
			&dept.Name,
			&dept.Code,
			&dept.Description,
			&dept.Budget,
			&dept.CreatedAt,
			&dept.UpdatedAt,
			&dept.EmployeeCount,
		); err != nil {
			return nil, err
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}
