package service

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/config"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/persistence"
	"github.com/spec-kit/helpdesk-dashboard/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// Option is one dropdown entry.
type Option struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

const (
	cacheKeyDates     = "ref:dates"
	cacheKeyProducts  = "ref:products"
	cacheKeyCompanies = "ref:companies"
)

// TicketService serves ticket listings, dropdown reference lists and the
// comment ledger.
type TicketService struct {
	tickets  repository.TicketRepository
	cache    *persistence.Redis
	comments config.CommentsConfig
	logger   *zap.Logger
}

// NewTicketService builds the service.
func NewTicketService(tickets repository.TicketRepository, cache *persistence.Redis, comments config.CommentsConfig, logger *zap.Logger) *TicketService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TicketService{tickets: tickets, cache: cache, comments: comments, logger: logger}
}

// DistinctDates lists every distinct ticket creation date.
func (s *TicketService) DistinctDates(ctx context.Context) ([]string, error) {
	return s.cachedList(ctx, cacheKeyDates, s.tickets.DistinctDates)
}

// ProductOptions lists distinct product names as dropdown entries.
func (s *TicketService) ProductOptions(ctx context.Context) ([]Option, error) {
	names, err := s.cachedList(ctx, cacheKeyProducts, s.tickets.DistinctProducts)
	if err != nil {
		return nil, err
	}
	return toOptions(names), nil
}

// CompanyOptions lists distinct company names as dropdown entries.
func (s *TicketService) CompanyOptions(ctx context.Context) ([]Option, error) {
	names, err := s.cachedList(ctx, cacheKeyCompanies, s.tickets.DistinctCompanies)
	if err != nil {
		return nil, err
	}
	return toOptions(names), nil
}

// ListByCompany returns the full ticket list scoped to one company.
func (s *TicketService) ListByCompany(ctx context.Context, companyID, companyEmail string) ([]domain.TicketDetail, error) {
	return s.tickets.ListByCompany(ctx, companyID, companyEmail)
}

// Comments returns the normalized comment log for a ticket: entries trimmed,
// empty entries dropped. A missing ticket is distinct from an empty log.
func (s *TicketService) Comments(ctx context.Context, ticketNo string) (string, error) {
	log, err := s.tickets.GetCommentLog(ctx, ticketNo)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", apperrors.NewNotFound("ticket", map[string]any{"ticket_no": ticketNo})
		}
		return "", err
	}
	return strings.Join(splitLog(log), ","), nil
}

// AppendComments sanitizes and appends comments to a ticket's log. When the
// existing log is empty only the first new comment is kept; otherwise all
// sanitized comments are appended in order. Returns the updated log and the
// sanitized comments.
func (s *TicketService) AppendComments(ctx context.Context, ref repository.CommentRef, comments []string) (string, []string, error) {
	sanitized := sanitizeComments(comments)
	if len(sanitized) == 0 {
		return "", nil, apperrors.NewValidationError("no comment(s) provided", nil)
	}

	target, err := s.tickets.FindCommentTarget(ctx, ref, s.comments.AllowUnscopedFallback)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", nil, apperrors.NewNotFound("ticket", map[string]any{
				"company_id":    ref.CompanyID,
				"company_email": ref.CompanyEmail,
				"ticket_no":     ref.TicketNo,
				"uniqueid":      ref.UniqueID,
			})
		}
		return "", nil, err
	}

	if target.Degraded {
		s.logger.Warn("comment target matched by ticket number only",
			zap.String("ticket_no", ref.TicketNo),
			zap.String("requested_company_id", ref.CompanyID),
			zap.String("stored_company_id", target.CompanyID),
			zap.String("stored_company_email", target.CompanyEmail),
		)
	}

	parts := splitLog(target.Log)
	if len(parts) > 0 {
		parts = append(parts, sanitized...)
	} else {
		parts = sanitized[:1]
	}
	updated := strings.Join(parts, ",")

	if err := s.tickets.UpdateCommentLog(ctx, target.ID, updated); err != nil {
		return "", nil, err
	}
	return updated, sanitized, nil
}

func (s *TicketService) cachedList(ctx context.Context, key string, load func(context.Context) ([]string, error)) ([]string, error) {
	if values, err := s.cache.GetList(ctx, key); err == nil {
		return values, nil
	} else if !persistence.IsCacheMiss(err) {
		s.logger.Warn("reference cache read failed", zap.String("key", key), zap.Error(err))
	}

	values, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetList(ctx, key, values); err != nil {
		s.logger.Warn("reference cache write failed", zap.String("key", key), zap.Error(err))
	}
	return values, nil
}

func toOptions(names []string) []Option {
	options := make([]Option, 0, len(names))
	for i, name := range names {
		options = append(options, Option{ID: i + 1, Name: name})
	}
	return options
}

// splitLog normalizes a stored comma-separated log into trimmed, non-empty
// entries.
func splitLog(log string) []string {
	var parts []string
	for _, p := range strings.Split(log, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

// sanitizeComments trims entries, drops empties, and replaces embedded commas
// with semicolons so entries cannot break the stored CSV.
func sanitizeComments(comments []string) []string {
	var sanitized []string
	for _, c := range comments {
		c = strings.TrimSpace(strings.ReplaceAll(c, ",", ";"))
		if c != "" {
			sanitized = append(sanitized, c)
		}
	}
	return sanitized
}
