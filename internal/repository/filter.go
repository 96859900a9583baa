package repository

import (
	"fmt"
	"strings"

	apperrors "github.com/spec-kit/helpdesk-dashboard/pkg/util"
)

// ClauseKind tags a filter clause variant.
type ClauseKind int

const (
	// ClauseDateBetween restricts creation dates to an inclusive range.
	ClauseDateBetween ClauseKind = iota
	// ClauseProductLike matches the product name as a substring.
	ClauseProductLike
	// ClauseCompanyLike matches the company name as a substring.
	ClauseCompanyLike
	// ClauseCompanyIDEquals matches the company identifier exactly.
	ClauseCompanyIDEquals
	// ClauseCompanyEmailEquals matches the company email exactly.
	ClauseCompanyEmailEquals
)

// Clause is one filter variant with its typed payload. Start/End are only
// meaningful for ClauseDateBetween, Value for every other kind.
type Clause struct {
	Kind  ClauseKind
	Start string
	End   string
	Value string
}

// TicketFilter is an ordered set of clauses compiled into a parameterized
// WHERE predicate. The zero value matches everything.
type TicketFilter struct {
	Clauses []Clause
}

// FilterParams carries raw request values before validation.
type FilterParams struct {
	DateRange    string
	Product      string
	Company      string
	CompanyID    string
	CompanyEmail string
}

const (
	dateRangeSeparator = " AND "
	filterSentinelAll  = "all"
)

// BuildFilter validates raw parameters into a TicketFilter. A date range must
// split on the literal " AND " separator into exactly two tokens. The "all"
// sentinel (any case, surrounding whitespace ignored) on product or company
// means no filter.
func BuildFilter(params FilterParams) (TicketFilter, error) {
	var filter TicketFilter

	if params.DateRange != "" {
		parts := strings.Split(params.DateRange, dateRangeSeparator)
		if len(parts) != 2 {
			return TicketFilter{}, apperrors.NewValidationError(
				"invalid date filter; expected 'startdate AND enddate'",
				map[string]any{"date": params.DateRange},
			)
		}
		filter.Clauses = append(filter.Clauses, Clause{
			Kind:  ClauseDateBetween,
			Start: strings.TrimSpace(parts[0]),
			End:   strings.TrimSpace(parts[1]),
		})
	}

	if v := strings.TrimSpace(params.Product); v != "" && !strings.EqualFold(v, filterSentinelAll) {
		filter.Clauses = append(filter.Clauses, Clause{Kind: ClauseProductLike, Value: v})
	}
	if v := strings.TrimSpace(params.Company); v != "" && !strings.EqualFold(v, filterSentinelAll) {
		filter.Clauses = append(filter.Clauses, Clause{Kind: ClauseCompanyLike, Value: v})
	}
	if v := strings.TrimSpace(params.CompanyID); v != "" {
		filter.Clauses = append(filter.Clauses, Clause{Kind: ClauseCompanyIDEquals, Value: v})
	}
	if v := strings.TrimSpace(params.CompanyEmail); v != "" {
		filter.Clauses = append(filter.Clauses, Clause{Kind: ClauseCompanyEmailEquals, Value: v})
	}

	return filter, nil
}

// compile maps each clause variant to a bound-parameter SQL fragment. Filter
// values always travel as query arguments, never inside the SQL text.
func (f TicketFilter) compile() (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	for _, c := range f.Clauses {
		switch c.Kind {
		case ClauseDateBetween:
			args = append(args, c.Start, c.End)
			clauses = append(clauses, fmt.Sprintf(
				"created_at::date BETWEEN $%d::date AND $%d::date", len(args)-1, len(args)))
		case ClauseProductLike:
			args = append(args, "%"+c.Value+"%")
			clauses = append(clauses, fmt.Sprintf("TRIM(product_name) ILIKE $%d", len(args)))
		case ClauseCompanyLike:
			args = append(args, "%"+c.Value+"%")
			clauses = append(clauses, fmt.Sprintf("TRIM(company_name) ILIKE $%d", len(args)))
		case ClauseCompanyIDEquals:
			args = append(args, c.Value)
			clauses = append(clauses, fmt.Sprintf("TRIM(company_id) = $%d", len(args)))
		case ClauseCompanyEmailEquals:
			args = append(args, c.Value)
			clauses = append(clauses, fmt.Sprintf("TRIM(company_email) = $%d", len(args)))
		}
	}

	return strings.Join(clauses, " AND "), args
}
