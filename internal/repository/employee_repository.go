package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// EmployeeRepository defines persistence access for employee accounts.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *domain.Employee) error
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, emp *domain.Employee) error
	Delete(ctx context.Context, id string) error
	GetByEmail(ctx context.Context, email string) (*domain.Employee, error)
}

type employeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository returns a Postgres-backed implementation.
func NewEmployeeRepository(pool *pgxpool.Pool) EmployeeRepository {
	return &employeeRepository{pool: pool}
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	const query = `
        INSERT INTO employees (id, name, email, company_id, department_id, role, other, app_role, password_hash)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.pool.Exec(ctx, query,
		emp.ID,
		emp.Name,
		emp.Email,
		emp.CompanyID,
		emp.DepartmentID,
		emp.Role,
		emp.Other,
		emp.AppRole,
		emp.PasswordHash,
	)
	return err
}

func (r *employeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	const query = `
        SELECT id, name, email, company_id, department_id, role, other, app_role
        FROM employees ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Employee
	for rows.Next() {
		var emp domain.Employee
		if err := rows.Scan(
			&emp.ID,
			&emp.Name,
			&emp.Email,
			&emp.CompanyID,
			&emp.DepartmentID,
			&emp.Role,
			&emp.Other,
			&emp.AppRole,
		); err != nil {
			return nil, err
		}
		result = append(result, emp)
	}
	return result, rows.Err()
}

// Update writes the fixed field set unconditionally; fields not supplied by
// the caller are stored as null, not left unchanged.
func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	const query = `
        UPDATE employees SET name=$1, email=$2, company_id=$3, department_id=$4,
            role=$5, other=$6, app_role=$7
        WHERE id=$8`
	cmd, err := r.pool.Exec(ctx, query,
		emp.Name,
		emp.Email,
		emp.CompanyID,
		emp.DepartmentID,
		emp.Role,
		emp.Other,
		emp.AppRole,
		emp.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM employees WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	const query = `
        SELECT id, name, email, company_id, department_id, role, other, app_role, password_hash
        FROM employees WHERE email=$1`
	var emp domain.Employee
	if err := r.pool.QueryRow(ctx, query, email).Scan(
		&emp.ID,
		&emp.Name,
		&emp.Email,
		&emp.CompanyID,
		&emp.DepartmentID,
		&emp.Role,
		&emp.Other,
		&emp.AppRole,
		&emp.PasswordHash,
	); err != nil {
		return nil, err
	}
	return &emp, nil
}
