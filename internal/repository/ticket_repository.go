package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
)

// CommentRef identifies a ticket row for comment operations.
type CommentRef struct {
	CompanyID    string
	CompanyEmail string
	TicketNo     string
	UniqueID     string
}

// CommentTarget is the located row plus its stored company fields so a
// degraded match can be audited.
type CommentTarget struct {
	ID           int64
	Log          string
	CompanyID    string
	CompanyEmail string
	Degraded     bool
}

// TicketRepository encapsulates ticket persistence. Tickets are created
// externally; this service only reads them and rewrites the comment log.
type TicketRepository interface {
	ListForReport(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	ListByCompany(ctx context.Context, companyID, companyEmail string) ([]domain.TicketDetail, error)
	DistinctDates(ctx context.Context) ([]string, error)
	DistinctProducts(ctx context.Context) ([]string, error)
	DistinctCompanies(ctx context.Context) ([]string, error)
	GetCommentLog(ctx context.Context, ticketNo string) (string, error)
	FindCommentTarget(ctx context.Context, ref CommentRef, allowUnscoped bool) (*CommentTarget, error)
	UpdateCommentLog(ctx context.Context, id int64, log string) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const reportProjection = `
        SELECT created_at, ticket_no, status, feedback, priority, category,
               days_open, product_name, company_name
        FROM tickets`

func (r *ticketRepository) ListForReport(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	where, args := filter.compile()
	rows, err := r.pool.Query(ctx, reportProjection+" WHERE "+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) ListByCompany(ctx context.Context, companyID, companyEmail string) ([]domain.TicketDetail, error) {
	const query = `
        SELECT id, ticket_no, category, details, created_at, closed_at,
               priority, status, days_open
        FROM tickets
        WHERE company_id = $1 AND company_email = $2
        ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, companyID, companyEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketDetail
	for rows.Next() {
		var t domain.TicketDetail
		if err := rows.Scan(
			&t.ID,
			&t.TicketNo,
			&t.Category,
			&t.Details,
			&t.CreatedAt,
			&t.ClosedAt,
			&t.Priority,
			&t.Status,
			&t.DaysOpen,
		); err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

func (r *ticketRepository) DistinctDates(ctx context.Context) ([]string, error) {
	const query = `SELECT DISTINCT created_at::date FROM tickets ORDER BY 1`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, err
		}
		dates = append(dates, day.Format("2006-01-02"))
	}
	return dates, rows.Err()
}

func (r *ticketRepository) DistinctProducts(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, `SELECT DISTINCT product_name FROM tickets ORDER BY product_name`)
}

func (r *ticketRepository) DistinctCompanies(ctx context.Context) ([]string, error) {
	return r.distinctColumn(ctx, `SELECT DISTINCT company_name FROM tickets ORDER BY company_name`)
}

func (r *ticketRepository) distinctColumn(ctx context.Context, query string) ([]string, error) {
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, rows.Err()
}

func (r *ticketRepository) GetCommentLog(ctx context.Context, ticketNo string) (string, error) {
	const query = `SELECT COALESCE(comment_log, '') FROM tickets WHERE ticket_no = $1`
	var log string
	if err := r.pool.QueryRow(ctx, query, ticketNo).Scan(&log); err != nil {
		return "", err
	}
	return log, nil
}

// FindCommentTarget locates the ticket row for a comment append. Matching is
// tiered: exact on all four identifiers, then trimmed equality, then, only
// when allowUnscoped is set, ticket number and row id alone. The last tier
// ignores company scoping, so callers must log it as a degraded match.
func (r *ticketRepository) FindCommentTarget(ctx context.Context, ref CommentRef, allowUnscoped bool) (*CommentTarget, error) {
	const exact = `
        SELECT id, COALESCE(comment_log, ''), company_id, company_email
        FROM tickets
        WHERE company_id = $1 AND company_email = $2 AND ticket_no = $3 AND id::text = $4`
	target, err := r.scanTarget(ctx, exact, ref.CompanyID, ref.CompanyEmail, ref.TicketNo, ref.UniqueID)
	if err == nil {
		return target, nil
	}
	if err != pgx.ErrNoRows {
		return nil, err
	}

	const trimmed = `
        SELECT id, COALESCE(comment_log, ''), company_id, company_email
        FROM tickets
        WHERE TRIM(company_id) = TRIM($1) AND TRIM(company_email) = TRIM($2)
          AND TRIM(ticket_no) = TRIM($3) AND TRIM(id::text) = TRIM($4)`
	target, err = r.scanTarget(ctx, trimmed, ref.CompanyID, ref.CompanyEmail, ref.TicketNo, ref.UniqueID)
	if err == nil {
		return target, nil
	}
	if err != pgx.ErrNoRows || !allowUnscoped {
		return nil, err
	}

	const unscoped = `
        SELECT id, COALESCE(comment_log, ''), company_id, company_email
        FROM tickets
        WHERE TRIM(ticket_no) = TRIM($1) AND TRIM(id::text) = TRIM($2)`
	target, err = r.scanTarget(ctx, unscoped, ref.TicketNo, ref.UniqueID)
	if err != nil {
		return nil, err
	}
	target.Degraded = true
	return target, nil
}

func (r *ticketRepository) scanTarget(ctx context.Context, query string, args ...any) (*CommentTarget, error) {
	var target CommentTarget
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&target.ID,
		&target.Log,
		&target.CompanyID,
		&target.CompanyEmail,
	); err != nil {
		return nil, err
	}
	return &target, nil
}

func (r *ticketRepository) UpdateCommentLog(ctx context.Context, id int64, log string) error {
	const query = `UPDATE tickets SET comment_log = $1 WHERE id = $2`
	cmd, err := r.pool.Exec(ctx, query, log, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	var result []domain.Ticket
	for rows.Next() {
		var ticket domain.Ticket
		if err := rows.Scan(
			&ticket.CreatedAt,
			&ticket.TicketNo,
			&ticket.Status,
			&ticket.Feedback,
			&ticket.Priority,
			&ticket.Category,
			&ticket.DaysOpen,
			&ticket.Product,
			&ticket.Company,
		); err != nil {
			return nil, err
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}
