package dto

// TicketDetailResponse mirrors the column names the dashboard frontend
// already consumes.
type TicketDetailResponse struct {
	UniqueID  int64   `json:"Uniqueid"`
	TicketNo  string  `json:"Ticket_No"`
	Category  string  `json:"Ticket_Category"`
	Details   string  `json:"Ticket_Details"`
	CreatedAt string  `json:"Ticket_Creation_Date"`
	ClosedAt  *string `json:"Ticket_Closing_Date"`
	Priority  string  `json:"Ticket_Priority"`
	Status    string  `json:"Ticket_Status"`
	DaysOpen  *int    `json:"Ticket_Day_Open"`
}

// CommentsResponse is the comment log payload.
type CommentsResponse struct {
	TicketNo string `json:"Ticket_No"`
	Comments string `json:"Comments"`
}

// AppendCommentsResponse echoes the updated log and the sanitized entries
// that were added.
type AppendCommentsResponse struct {
	TicketNo string   `json:"Ticket_No"`
	Comments string   `json:"Comments"`
	Added    []string `json:"added"`
}

// AppendCommentsRequest accepts both key casings the original API allowed.
type AppendCommentsRequest struct {
	CompanyID       string   `json:"company_id"`
	CompanyIDAlt    string   `json:"Company_ID"`
	CompanyEmail    string   `json:"company_email"`
	CompanyEmailAlt string   `json:"Company_Email"`
	TicketNo        string   `json:"ticket_no"`
	TicketNoAlt     string   `json:"Ticket_No"`
	UniqueID        string   `json:"uniqueid"`
	UniqueIDAlt     string   `json:"Uniqueid"`
	Comment         string   `json:"comment"`
	Comments        []string `json:"comments"`
}

// ResolvedCompanyID returns whichever casing was supplied.
func (r AppendCommentsRequest) ResolvedCompanyID() string {
	return firstNonEmpty(r.CompanyID, r.CompanyIDAlt)
}

func (r AppendCommentsRequest) ResolvedCompanyEmail() string {
	return firstNonEmpty(r.CompanyEmail, r.CompanyEmailAlt)
}

func (r AppendCommentsRequest) ResolvedTicketNo() string {
	return firstNonEmpty(r.TicketNo, r.TicketNoAlt)
}

func (r AppendCommentsRequest) ResolvedUniqueID() string {
	return firstNonEmpty(r.UniqueID, r.UniqueIDAlt)
}

// NewComments returns the submitted comments, preferring the list form.
func (r AppendCommentsRequest) NewComments() []string {
	if len(r.Comments) > 0 {
		return r.Comments
	}
	if r.Comment != "" {
		return []string{r.Comment}
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
