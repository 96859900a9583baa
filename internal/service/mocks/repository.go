package mocks

import (
	"context"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/repository"
)

// MockTicketRepository implements repository.TicketRepository with
// overridable functions.
type MockTicketRepository struct {
	ListForReportFunc     func(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error)
	ListByCompanyFunc     func(ctx context.Context, companyID, companyEmail string) ([]domain.TicketDetail, error)
	DistinctDatesFunc     func(ctx context.Context) ([]string, error)
	DistinctProductsFunc  func(ctx context.Context) ([]string, error)
	DistinctCompaniesFunc func(ctx context.Context) ([]string, error)
	GetCommentLogFunc     func(ctx context.Context, ticketNo string) (string, error)
	FindCommentTargetFunc func(ctx context.Context, ref repository.CommentRef, allowUnscoped bool) (*repository.CommentTarget, error)
	UpdateCommentLogFunc  func(ctx context.Context, id int64, log string) error
}

func (m *MockTicketRepository) ListForReport(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	if m.ListForReportFunc == nil {
		return nil, nil
	}
	return m.ListForReportFunc(ctx, filter)
}

func (m *MockTicketRepository) ListByCompany(ctx context.Context, companyID, companyEmail string) ([]domain.TicketDetail, error) {
	if m.ListByCompanyFunc == nil {
		return nil, nil
	}
	return m.ListByCompanyFunc(ctx, companyID, companyEmail)
}

func (m *MockTicketRepository) DistinctDates(ctx context.Context) ([]string, error) {
	if m.DistinctDatesFunc == nil {
		return nil, nil
	}
	return m.DistinctDatesFunc(ctx)
}

func (m *MockTicketRepository) DistinctProducts(ctx context.Context) ([]string, error) {
	if m.DistinctProductsFunc == nil {
		return nil, nil
	}
	return m.DistinctProductsFunc(ctx)
}

func (m *MockTicketRepository) DistinctCompanies(ctx context.Context) ([]string, error) {
	if m.DistinctCompaniesFunc == nil {
		return nil, nil
	}
	return m.DistinctCompaniesFunc(ctx)
}

func (m *MockTicketRepository) GetCommentLog(ctx context.Context, ticketNo string) (string, error) {
	if m.GetCommentLogFunc == nil {
		return "", nil
	}
	return m.GetCommentLogFunc(ctx, ticketNo)
}

func (m *MockTicketRepository) FindCommentTarget(ctx context.Context, ref repository.CommentRef, allowUnscoped bool) (*repository.CommentTarget, error) {
	if m.FindCommentTargetFunc == nil {
		return nil, nil
	}
	return m.FindCommentTargetFunc(ctx, ref, allowUnscoped)
}

func (m *MockTicketRepository) UpdateCommentLog(ctx context.Context, id int64, log string) error {
	if m.UpdateCommentLogFunc == nil {
		return nil
	}
	return m.UpdateCommentLogFunc(ctx, id, log)
}

// MockEmployeeRepository implements repository.EmployeeRepository with
// overridable functions.
type MockEmployeeRepository struct {
	CreateFunc     func(ctx context.Context, emp *domain.Employee) error
	ListFunc       func(ctx context.Context) ([]domain.Employee, error)
	UpdateFunc     func(ctx context.Context, emp *domain.Employee) error
	DeleteFunc     func(ctx context.Context, id string) error
	GetByEmailFunc func(ctx context.Context, email string) (*domain.Employee, error)
}

func (m *MockEmployeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	if m.CreateFunc == nil {
		return nil
	}
	return m.CreateFunc(ctx, emp)
}

func (m *MockEmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	if m.ListFunc == nil {
		return nil, nil
	}
	return m.ListFunc(ctx)
}

func (m *MockEmployeeRepository) Update(ctx context.Context, emp *domain.Employee) error {
	if m.UpdateFunc == nil {
		return nil
	}
	return m.UpdateFunc(ctx, emp)
}

func (m *MockEmployeeRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, id)
}

func (m *MockEmployeeRepository) GetByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	if m.GetByEmailFunc == nil {
		return nil, nil
	}
	return m.GetByEmailFunc(ctx, email)
}
