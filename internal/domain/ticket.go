package domain

import "time"

// Ticket status labels as stored. Storage does not enforce an enum; these are
// the values the dashboard cards report on.
const (
	StatusOpen     = "Open"
	StatusResolved = "Resolved"
	StatusClosed   = "Closed"
	StatusPending  = "Pending"
)

// Ticket is the fixed reporting projection of a helpdesk ticket.
type Ticket struct {
	CreatedAt time.Time
	TicketNo  string
	Status    string
	Feedback  string
	Priority  string
	Category  string
	DaysOpen  *int
	Product   string
	Company   string
}

// DaysOpenOrZero treats a missing days-open value as zero.
func (t Ticket) DaysOpenOrZero() int {
	if t.DaysOpen == nil {
		return 0
	}
	return *t.DaysOpen
}

// TicketDetail is the company-scoped listing projection.
type TicketDetail struct {
	ID        int64
	TicketNo  string
	Category  string
	Details   string
	CreatedAt time.Time
	ClosedAt  *time.Time
	Priority  string
	Status    string
	DaysOpen  *int
}
