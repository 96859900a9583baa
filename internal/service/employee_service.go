package service

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/helpdesk-dashboard/internal/auth"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// EmployeeCreateInput carries the fields accepted at create time. ID, Name,
// Email, CompanyID and Role are mandatory.
type EmployeeCreateInput struct {
	ID           string
	Name         string
	Email        string
	CompanyID    string
	Role         string
	DepartmentID *string
	Other        *string
	AppRole      *string
	Password     string
}

// EmployeeUpdateInput is the fixed field set written on update. Absent fields
// are stored as null, not left unchanged.
type EmployeeUpdateInput struct {
	Name         string
	Email        string
	CompanyID    string
	DepartmentID *string
	Role         string
	Other        *string
	AppRole      *string
}

// EmployeeService coordinates employee CRUD.
type EmployeeService struct {
	employees  repository.EmployeeRepository
	bcryptCost int
}

// NewEmployeeService builds the service.
func NewEmployeeService(employees repository.EmployeeRepository, bcryptCost int) *EmployeeService {
	return &EmployeeService{employees: employees, bcryptCost: bcryptCost}
}

// Create validates mandatory fields and stores a new employee. A supplied
// password is hashed before storage.
func (s *EmployeeService) Create(ctx context.Context, input EmployeeCreateInput) error {
	var missing []string
	for _, kv := range []struct{ field, val string }{
		{"Emp_ID", input.ID},
		{"Emp_Name", input.Name},
		{"Email_Id", input.Email},
		{"Company_ID", input.CompanyID},
		{"Role", input.Role},
	} {
		if kv.val == "" {
			missing = append(missing, kv.field)
		}
	}
	if len(missing) > 0 {
		return apperrors.NewValidationError("missing required fields", map[string]any{"fields": missing})
	}

	emp := &domain.Employee{
		ID:           input.ID,
		Name:         input.Name,
		Email:        input.Email,
		CompanyID:    input.CompanyID,
		Role:         input.Role,
		DepartmentID: input.DepartmentID,
		Other:        input.Other,
		AppRole:      input.AppRole,
	}
	if input.Password != "" {
		hash, err := auth.HashPassword(input.Password, s.bcryptCost)
		if err != nil {
			return err
		}
		emp.PasswordHash = hash
	}
	return s.employees.Create(ctx, emp)
}

// List returns all employees.
func (s *EmployeeService) List(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

// Update applies the fixed field set; zero affected rows is reported as not
// found, distinct from success.
func (s *EmployeeService) Update(ctx context.Context, id string, input EmployeeUpdateInput) error {
	emp := &domain.Employee{
		ID:           id,
		Name:         input.Name,
		Email:        input.Email,
		CompanyID:    input.CompanyID,
		DepartmentID: input.DepartmentID,
		Role:         input.Role,
		Other:        input.Other,
		AppRole:      input.AppRole,
	}
	if err := s.employees.Update(ctx, emp); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("employee", map[string]any{"emp_id": id})
		}
		return err
	}
	return nil
}

// Delete removes an employee; zero affected rows is reported as not found.
func (s *EmployeeService) Delete(ctx context.Context, id string) error {
	if err := s.employees.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("employee", map[string]any{"emp_id": id})
		}
		return err
	}
	return nil
}
