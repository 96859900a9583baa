package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-dashboard/internal/repository"
	"github.com/spec-kit/helpdesk-dashboard/internal/service"
)

// ReportsHandler serves the dashboard aggregation endpoints and the dropdown
// reference lists that feed its filters.
type ReportsHandler struct {
	reports *service.ReportService
	tickets *service.TicketService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reports *service.ReportService, tickets *service.TicketService) *ReportsHandler {
	return &ReportsHandler{reports: reports, tickets: tickets}
}

// Dates GET /api/dates.
func (h *ReportsHandler) Dates(c *fiber.Ctx) error {
	dates, err := h.tickets.DistinctDates(c.UserContext())
	if err != nil {
		return err
	}
	if dates == nil {
		dates = []string{}
	}
	return c.JSON(dates)
}

// Products GET /api/Product_Name.
func (h *ReportsHandler) Products(c *fiber.Ctx) error {
	options, err := h.tickets.ProductOptions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(options)
}

// Companies GET /api/companies.
func (h *ReportsHandler) Companies(c *fiber.Ctx) error {
	options, err := h.tickets.CompanyOptions(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(options)
}

// Stats GET /api/stats.
func (h *ReportsHandler) Stats(c *fiber.Ctx) error {
	params := repository.FilterParams{
		DateRange:    c.Query("date"),
		Product:      c.Query("Product_Name"),
		Company:      c.Query("Company_Name"),
		CompanyID:    queryEitherCase(c, "Company_ID", "company_id"),
		CompanyEmail: queryEitherCase(c, "Company_Email", "company_email"),
	}
	cards, err := h.reports.Stats(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(cards)
}

// Charts GET /api/charts.
func (h *ReportsHandler) Charts(c *fiber.Ctx) error {
	params := repository.FilterParams{
		DateRange:    c.Query("date"),
		Product:      c.Query("product"),
		Company:      c.Query("company"),
		CompanyID:    queryEitherCase(c, "Company_ID", "company_id"),
		CompanyEmail: queryEitherCase(c, "Company_Email", "company_email"),
	}
	charts, err := h.reports.Charts(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(charts)
}

// MonthlyTrends GET /api/monthly-trends.
func (h *ReportsHandler) MonthlyTrends(c *fiber.Ctx) error {
	trends, err := h.reports.MonthlyTrends(c.UserContext(),
		queryEitherCase(c, "Company_ID", "company_id"),
		queryEitherCase(c, "Company_Email", "company_email"),
	)
	if err != nil {
		return err
	}
	return c.JSON(trends)
}

// queryEitherCase accepts both parameter casings the original API allowed.
func queryEitherCase(c *fiber.Ctx, primary, alt string) string {
	if v := c.Query(primary); v != "" {
		return v
	}
	return c.Query(alt)
}
