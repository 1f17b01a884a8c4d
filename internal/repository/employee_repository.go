package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/employee-service/internal/domain"
)

// Referential failures surfaced before a write is attempted.
var (
	ErrDepartmentMissing = errors.New("department does not exist")
	ErrManagerMissing    = errors.New("manager does not exist")
)

// EmployeeFilter captures listing parameters.
type EmployeeFilter struct {
	Search       string
	DepartmentID string
	Status       string
	Limit        int
	Offset       int
}

// EmployeeRepository encapsulates employee persistence.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error)
	Count(ctx context.Context, filter EmployeeFilter) (int64, error)
	Stats(ctx context.Context) (*domain.EmployeeStats, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository instantiates repository.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

const employeeColumns = `e.id, e.employee_id, e.first_name, e.last_name, e.email, e.phone,
               e.date_of_birth, e.gender, e.address, e.city, e.state, e.postal_code, e.country,
               e.department_id, e.job_title, e.employment_type, e.employment_status, e.hire_date,
               e.salary, e.currency, e.manager_id, e.national_insurance_number, e.passport_number,
               e.visa_status, e.emergency_contact_name, e.emergency_contact_phone,
               e.emergency_contact_relationship, e.notes, e.created_at, e.updated_at,
               d.name, m.first_name, m.last_name`

const employeeJoins = `FROM employees e
             LEFT JOIN departments d ON e.department_id = d.id
             LEFT JOIN employees m ON e.manager_id = m.id`

// Advisory lock namespace serializing identifier generation per creation year.
const employeeSeqLockNS int64 = 0x454D50 << 16

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := checkReferences(ctx, tx, emp); err != nil {
		return err
	}

	year := time.Now().Year()
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, employeeSeqLockNS|int64(year)); err != nil {
		return err
	}

	var lastID string
	err = tx.QueryRow(ctx,
		`SELECT employee_id FROM employees WHERE employee_id LIKE $1 ORDER BY employee_id DESC LIMIT 1`,
		domain.EmployeeIDPrefix(year)+"%",
	).Scan(&lastID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	emp.EmployeeID = domain.NextEmployeeID(year, lastID)

	const query = `
        INSERT INTO employees (
            id, employee_id, first_name, last_name, email, phone, date_of_birth,
            gender, address, city, state, postal_code, country, department_id,
            job_title, employment_type, employment_status, hire_date, salary,
            currency, manager_id, national_insurance_number, passport_number,
            visa_status, emergency_contact_name, emergency_contact_phone,
            emergency_contact_relationship, notes
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27,$28)
        RETURNING created_at, updated_at`
	if err := tx.QueryRow(ctx, query,
		emp.ID,
		emp.EmployeeID,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.DateOfBirth,
		emp.Gender,
		emp.Address,
		emp.City,
		emp.State,
		emp.PostalCode,
		emp.Country,
		emp.DepartmentID,
		emp.JobTitle,
		emp.EmploymentType,
		emp.EmploymentStatus,
		emp.HireDate,
		emp.Salary,
		emp.Currency,
		emp.ManagerID,
		emp.NationalInsuranceNumber,
		emp.PassportNumber,
		emp.VisaStatus,
		emp.EmergencyContactName,
		emp.EmergencyContactPhone,
		emp.EmergencyContactRelationship,
		emp.Notes,
	).Scan(&emp.CreatedAt, &emp.UpdatedAt); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := checkReferences(ctx, tx, emp); err != nil {
		return err
	}

	const query = `
        UPDATE employees SET
            first_name=$1, last_name=$2, email=$3, phone=$4, date_of_birth=$5,
            gender=$6, address=$7, city=$8, state=$9, postal_code=$10, country=$11,
            department_id=$12, job_title=$13, employment_type=$14, employment_status=$15,
            hire_date=$16, salary=$17, currency=$18, manager_id=$19,
            national_insurance_number=$20, passport_number=$21, visa_status=$22,
            emergency_contact_name=$23, emergency_contact_phone=$24,
            emergency_contact_relationship=$25, notes=$26, updated_at=NOW()
        WHERE id=$27`
	cmd, err := tx.Exec(ctx, query,
		emp.FirstName,
		emp.LastName,
		emp.Email,
		emp.Phone,
		emp.DateOfBirth,
		emp.Gender,
		emp.Address,
		emp.City,
		emp.State,
		emp.PostalCode,
		emp.Country,
		emp.DepartmentID,
		emp.JobTitle,
		emp.EmploymentType,
		emp.EmploymentStatus,
		emp.HireDate,
		emp.Salary,
		emp.Currency,
		emp.ManagerID,
		emp.NationalInsuranceNumber,
		emp.PassportNumber,
		emp.VisaStatus,
		emp.EmergencyContactName,
		emp.EmergencyContactPhone,
		emp.EmergencyContactRelationship,
		emp.Notes,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	query := fmt.Sprintf(`SELECT %s %s WHERE e.id=$1`, employeeColumns, employeeJoins)
	var emp domain.Employee
	if err := scanEmployee(r.pool.QueryRow(ctx, query, id), &emp); err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) List(ctx context.Context, filter EmployeeFilter) ([]domain.Employee, error) {
	clauses, args := filterClauses(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`SELECT %s %s WHERE %s ORDER BY e.created_at DESC LIMIT %d OFFSET %d`,
		employeeColumns, employeeJoins, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := scanEmployee(rows, &emp); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}

func (r *employeeRepository) Count(ctx context.Context, filter EmployeeFilter) (int64, error) {
	clauses, args := filterClauses(filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM employees e WHERE %s`, strings.Join(clauses, " AND "))

	var total int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

const (
	statsTotalQuery  = `SELECT COUNT(*) FROM employees`
	statsStatusQuery = `SELECT employment_status, COUNT(*) FROM employees GROUP BY employment_status`

	// Left join keeps departments with zero employees in the distribution.
	statsDepartmentQuery = `
        SELECT d.name, COUNT(e.id)
        FROM departments d
        LEFT JOIN employees e ON d.id = e.department_id
        GROUP BY d.id, d.name`

	// Inclusive boundary: an employee hired exactly 30 days ago counts.
	statsRecentHiresQuery = `SELECT COUNT(*) FROM employees WHERE hire_date >= CURRENT_DATE - INTERVAL '30 days'`
)

func (r *employeeRepository) Stats(ctx context.Context) (*domain.EmployeeStats, error) {
	stats := &domain.EmployeeStats{}

	if err := r.pool.QueryRow(ctx, statsTotalQuery).Scan(&stats.TotalEmployees); err != nil {
		return nil, err
	}

	statusRows, err := r.pool.Query(ctx, statsStatusQuery)
	if err != nil {
		return nil, err
	}
	defer statusRows.Close()
	for statusRows.Next() {
		var bucket domain.StatusCount
		if err := statusRows.Scan(&bucket.Status, &bucket.Count); err != nil {
			return nil, err
		}
		stats.StatusDistribution = append(stats.StatusDistribution, bucket)
	}
	if err := statusRows.Err(); err != nil {
		return nil, err
	}

	deptRows, err := r.pool.Query(ctx, statsDepartmentQuery)
	if err != nil {
		return nil, err
	}
	defer deptRows.Close()
	for deptRows.Next() {
		var bucket domain.DepartmentCount
		if err := deptRows.Scan(&bucket.DepartmentName, &bucket.Count); err != nil {
			return nil, err
		}
		stats.DepartmentDistribution = append(stats.DepartmentDistribution, bucket)
	}
	if err := deptRows.Err(); err != nil {
		return nil, err
	}

	if err := r.pool.QueryRow(ctx, statsRecentHiresQuery).Scan(&stats.RecentHires); err != nil {
		return nil, err
	}

	return stats, nil
}

// filterClauses builds WHERE fragments and their positional args.
func filterClauses(filter EmployeeFilter) ([]string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if strings.TrimSpace(filter.Search) != "" {
		args = append(args, "%"+strings.TrimSpace(filter.Search)+"%")
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(e.first_name ILIKE %s OR e.last_name ILIKE %s OR e.email ILIKE %s OR e.employee_id ILIKE %s)",
			placeholder, placeholder, placeholder, placeholder))
	}
	if filter.DepartmentID != "" {
		args = append(args, filter.DepartmentID)
		clauses = append(clauses, fmt.Sprintf("e.department_id=$%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("e.employment_status=$%d", len(args)))
	}

	return clauses, args
}

func checkReferences(ctx context.Context, tx pgx.Tx, emp *domain.Employee) error {
	var exists int
	if emp.DepartmentID != nil {
		err := tx.QueryRow(ctx, `SELECT 1 FROM departments WHERE id=$1`, *emp.DepartmentID).Scan(&exists)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrDepartmentMissing
		}
		if err != nil {
			return err
		}
	}
	if emp.ManagerID != nil {
		err := tx.QueryRow(ctx, `SELECT 1 FROM employees WHERE id=$1`, *emp.ManagerID).Scan(&exists)
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrManagerMissing
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// scanEmployee reads one joined row into emp.
func scanEmployee(row pgx.Row, emp *domain.Employee) error {
	return row.Scan(
		&emp.ID,
		&emp.EmployeeID,
		&emp.FirstName,
		&emp.LastName,
		&emp.Email,
		&emp.Phone,
		&emp.DateOfBirth,
		&emp.Gender,
		&emp.Address,
		&emp.City,
		&emp.State,
		&emp.PostalCode,
		&emp.Country,
		&emp.DepartmentID,
		&emp.JobTitle,
		&emp.EmploymentType,
		&emp.EmploymentStatus,
		&emp.HireDate,
		&emp.Salary,
		&emp.Currency,
		&emp.ManagerID,
		&emp.NationalInsuranceNumber,
		&emp.PassportNumber,
		&emp.VisaStatus,
		&emp.EmergencyContactName,
		&emp.EmergencyContactPhone,
		&emp.EmergencyContactRelationship,
		&emp.Notes,
		&emp.CreatedAt,
		&emp.UpdatedAt,
		&emp.DepartmentName,
		&emp.ManagerFirstName,
		&emp.ManagerLastName,
	)
}
