package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildFilter(t *testing.T) {
	t.Run("empty params match everything", func(t *testing.T) {
		filter, err := BuildFilter(FilterParams{})
		assert.NoError(t, err)
		assert.Empty(t, filter.Clauses)

		where, args := filter.compile()
		assert.Equal(t, "1=1", where)
		assert.Empty(t, args)
	})

	t.Run("date range splits on the literal separator", func(t *testing.T) {
		filter, err := BuildFilter(FilterParams{DateRange: "2025-01-01 AND 2025-01-31"})
		assert.NoError(t, err)
		assert.Len(t, filter.Clauses, 1)
		assert.Equal(t, ClauseDateBetween, filter.Clauses[0].Kind)
		assert.Equal(t, "2025-01-01", filter.Clauses[0].Start)
		assert.Equal(t, "2025-01-31", filter.Clauses[0].End)
	})

	t.Run("malformed date range is rejected", func(t *testing.T) {
		for _, raw := range []string{
			"2025-01-01",
			"2025-01-01 and 2025-01-31",
			"2025-01-01 AND 2025-01-15 AND 2025-01-31",
		} {
			_, err := BuildFilter(FilterParams{DateRange: raw})
			assert.Error(t, err, raw)
		}
	})

	t.Run("all sentinel disables product and company filters", func(t *testing.T) {
		for _, sentinel := range []string{"all", "All", "ALL", "  all  "} {
			filter, err := BuildFilter(FilterParams{Product: sentinel, Company: sentinel})
			assert.NoError(t, err)
			assert.Empty(t, filter.Clauses, sentinel)
		}
	})

	t.Run("company scope uses exact match clauses", func(t *testing.T) {
		filter, err := BuildFilter(FilterParams{CompanyID: " C-1 ", CompanyEmail: "ops@acme.test"})
		assert.NoError(t, err)
		assert.Len(t, filter.Clauses, 2)
		assert.Equal(t, ClauseCompanyIDEquals, filter.Clauses[0].Kind)
		assert.Equal(t, "C-1", filter.Clauses[0].Value)
		assert.Equal(t, ClauseCompanyEmailEquals, filter.Clauses[1].Kind)
	})
}

func TestFilterCompile(t *testing.T) {
	t.Run("placeholders number sequentially and args align", func(t *testing.T) {
		filter, err := BuildFilter(FilterParams{
			DateRange: "2025-01-01 AND 2025-01-31",
			Product:   "Gateway",
			Company:   "Acme",
		})
		assert.NoError(t, err)

		where, args := filter.compile()
		assert.Equal(t,
			"1=1 AND created_at::date BETWEEN $1::date AND $2::date"+
				" AND TRIM(product_name) ILIKE $3 AND TRIM(company_name) ILIKE $4",
			where)
		assert.Equal(t, []any{"2025-01-01", "2025-01-31", "%Gateway%", "%Acme%"}, args)
	})

	t.Run("values never appear in the SQL text", func(t *testing.T) {
		filter, err := BuildFilter(FilterParams{Product: "x' OR '1'='1"})
		assert.NoError(t, err)

		where, args := filter.compile()
		assert.NotContains(t, where, "OR '1'='1")
		assert.Equal(t, []any{"%x' OR '1'='1%"}, args)
	})
}
