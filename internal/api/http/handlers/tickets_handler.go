package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/api/dto"
	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/repository"
	"github.com/spec-kit/helpdesk-dashboard/internal/service"
	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// TicketsHandler serves the company ticket listing and the comment ledger.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// ListByCompany GET /api/tickets. Both company parameters are mandatory.
func (h *TicketsHandler) ListByCompany(c *fiber.Ctx) error {
	companyID := queryEitherCase(c, "company_id", "Company_ID")
	companyEmail := queryEitherCase(c, "company_email", "Company_Email")
	if companyID == "" || companyEmail == "" {
		return apperrors.NewValidationError(
			"missing required query parameters: company_id and company_email", nil)
	}

	tickets, err := h.tickets.ListByCompany(c.UserContext(), companyID, companyEmail)
	if err != nil {
		return err
	}

	items := make([]dto.TicketDetailResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, ticketDetailResponse(&tickets[i]))
	}
	return c.JSON(items)
}

// GetComments GET /api/get-comments.
func (h *TicketsHandler) GetComments(c *fiber.Ctx) error {
	ticketNo := firstQuery(c, "ticket_no", "Ticket_No", "uniqueid", "UniqueId")
	if ticketNo == "" {
		return apperrors.NewValidationError(
			"missing required query parameter: ticket_no (or Ticket_No/uniqueid)", nil)
	}

	comments, err := h.tickets.Comments(c.UserContext(), ticketNo)
	if err != nil {
		return err
	}
	return c.JSON(dto.CommentsResponse{TicketNo: ticketNo, Comments: comments})
}

// AppendComments PUT /api/comments.
func (h *TicketsHandler) AppendComments(c *fiber.Ctx) error {
	var req dto.AppendCommentsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ref := repository.CommentRef{
		CompanyID:    req.ResolvedCompanyID(),
		CompanyEmail: req.ResolvedCompanyEmail(),
		TicketNo:     req.ResolvedTicketNo(),
		UniqueID:     req.ResolvedUniqueID(),
	}
	if ref.CompanyID == "" || ref.CompanyEmail == "" || ref.TicketNo == "" || ref.UniqueID == "" {
		return apperrors.NewValidationError(
			"missing required fields: company_id, company_email and ticket_no/uniqueid", nil)
	}

	updated, added, err := h.tickets.AppendComments(c.UserContext(), ref, req.NewComments())
	if err != nil {
		return err
	}
	return c.JSON(dto.AppendCommentsResponse{
		TicketNo: ref.TicketNo,
		Comments: updated,
		Added:    added,
	})
}

func ticketDetailResponse(t *domain.TicketDetail) dto.TicketDetailResponse {
	var closedAt *string
	if t.ClosedAt != nil {
		formatted := t.ClosedAt.Format(time.RFC3339)
		closedAt = &formatted
	}
	return dto.TicketDetailResponse{
		UniqueID:  t.ID,
		TicketNo:  t.TicketNo,
		Category:  t.Category,
		Details:   t.Details,
		CreatedAt: t.CreatedAt.Format(time.RFC3339),
		ClosedAt:  closedAt,
		Priority:  t.Priority,
		Status:    t.Status,
		DaysOpen:  t.DaysOpen,
	}
}

func firstQuery(c *fiber.Ctx, keys ...string) string {
	for _, key := range keys {
		if v := c.Query(key); v != "" {
			return v
		}
	}
	return ""
}
