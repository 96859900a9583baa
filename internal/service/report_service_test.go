package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/repository"
	"github.com/spec-kit/helpdesk-dashboard/internal/service/mocks"
)

func intPtr(v int) *int {
	return &v
}

func TestSummaryCards(t *testing.T) {
	t.Run("empty rows yield empty cards", func(t *testing.T) {
		cards := summaryCards(nil)
		assert.Empty(t, cards)
	})

	t.Run("counts and averages", func(t *testing.T) {
		rows := []domain.Ticket{
			{Status: "Open", DaysOpen: intPtr(4)},
			{Status: "Open", DaysOpen: nil},
			{Status: "Closed", DaysOpen: intPtr(9)},
		}

		cards := summaryCards(rows)
		assert.Len(t, cards, 6)

		byLabel := map[string]StatCard{}
		for _, card := range cards {
			byLabel[card.Label] = card
		}

		assert.Equal(t, 3, byLabel["Tickets"].Value)
		assert.Equal(t, 2, byLabel["Open"].Value)
		assert.Equal(t, 1, byLabel["Closed"].Value)
		assert.Equal(t, 0, byLabel["Resolved"].Value)
		assert.Equal(t, 0, byLabel["Pending"].Value)
		// (4 + 0) / 2, truncated
		assert.Equal(t, 2, byLabel["Avg Days Open"].Value)
	})

	t.Run("per-status counts sum to total", func(t *testing.T) {
		rows := []domain.Ticket{
			{Status: "Open"}, {Status: "Open"}, {Status: "Resolved"},
			{Status: "Closed"}, {Status: "Pending"}, {Status: "Pending"},
		}

		cards := summaryCards(rows)
		sum := 0
		for _, card := range cards {
			if card.Label != "Tickets" && card.Label != "Avg Days Open" {
				sum += card.Value
			}
		}
		assert.Equal(t, len(rows), sum)
	})

	t.Run("zero open rows give zero average", func(t *testing.T) {
		rows := []domain.Ticket{{Status: "Closed", DaysOpen: intPtr(12)}}
		cards := summaryCards(rows)
		for _, card := range cards {
			if card.Label == "Avg Days Open" {
				assert.Equal(t, 0, card.Value)
			}
		}
	})

	t.Run("graph widths stay within bounds", func(t *testing.T) {
		rows := make([]domain.Ticket, 250)
		for i := range rows {
			rows[i] = domain.Ticket{Status: "Open", DaysOpen: intPtr(90)}
		}
		for _, card := range summaryCards(rows) {
			assert.GreaterOrEqual(t, card.GraphWidth, 0, card.Label)
			assert.LessOrEqual(t, card.GraphWidth, 100, card.Label)
		}
	})
}

func TestDaysOpenHistogram(t *testing.T) {
	t.Run("buckets partition all rows", func(t *testing.T) {
		rows := []domain.Ticket{
			{DaysOpen: nil},
			{DaysOpen: intPtr(0)},
			{DaysOpen: intPtr(5)},
			{DaysOpen: intPtr(6)},
			{DaysOpen: intPtr(10)},
			{DaysOpen: intPtr(11)},
			{DaysOpen: intPtr(20)},
			{DaysOpen: intPtr(21)},
			{DaysOpen: intPtr(25)},
			{DaysOpen: intPtr(26)},
			{DaysOpen: intPtr(400)},
		}

		labels, counts := daysOpenHistogram(rows)
		assert.Equal(t, []string{"0-5 Days", "6-10 Days", "11-15 Days", "16-20 Days", "21-25 Days", "> 25 Days"}, labels)

		total := 0
		for _, c := range counts {
			total += c
		}
		assert.Equal(t, len(rows), total)

		assert.Equal(t, 3, counts[0]) // nil, 0, 5
		assert.Equal(t, 2, counts[1]) // 6, 10
		assert.Equal(t, 1, counts[2]) // 11
		assert.Equal(t, 1, counts[3]) // 20
		assert.Equal(t, 2, counts[4]) // 21, 25
		assert.Equal(t, 2, counts[5]) // 26, 400
	})

	t.Run("spec example", func(t *testing.T) {
		rows := []domain.Ticket{
			{Status: "Open", DaysOpen: intPtr(4)},
			{Status: "Open", DaysOpen: nil},
			{Status: "Closed", DaysOpen: intPtr(9)},
		}
		_, counts := daysOpenHistogram(rows)
		assert.Equal(t, 2, counts[0])
		assert.Equal(t, 1, counts[1])
	})
}

func TestChartPayloads(t *testing.T) {
	t.Run("empty rows yield empty charts", func(t *testing.T) {
		assert.Empty(t, chartPayloads(nil))
	})

	t.Run("labels keep first-seen order and align with values", func(t *testing.T) {
		rows := []domain.Ticket{
			{Status: "Open", Feedback: "Good", Priority: "High", Category: "Billing"},
			{Status: "Closed", Feedback: "Bad", Priority: "Low", Category: "Billing"},
			{Status: "Open", Feedback: "Good", Priority: "High", Category: "Network"},
		}

		charts := chartPayloads(rows)
		assert.Len(t, charts, 5)

		status := charts[0]
		assert.Equal(t, "Ticket Status", status.Title)
		assert.Equal(t, "doughnut", status.Type)
		assert.Equal(t, []string{"Open", "Closed"}, status.Data.Labels)
		assert.Equal(t, []int{2, 1}, status.Data.Datasets[0].Data)

		category := charts[3]
		assert.Equal(t, []string{"Billing", "Network"}, category.Data.Labels)
		assert.Equal(t, []int{2, 1}, category.Data.Datasets[0].Data)

		hist := charts[4]
		assert.Equal(t, "Open Days", hist.Title)
		assert.Len(t, hist.Data.Labels, 6)
	})
}

func TestTrendSeries(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
	}

	t.Run("labels sorted chronologically with zero fill", func(t *testing.T) {
		rows := []domain.Ticket{
			{Status: "Open", CreatedAt: day(2025, time.March, 2)},
			{Status: "Closed", CreatedAt: day(2025, time.January, 15)},
			{Status: "Open", CreatedAt: day(2025, time.January, 15)},
			{Status: "Open", CreatedAt: day(2025, time.January, 15)},
		}

		trend := trendSeries(rows)
		assert.Equal(t, []string{"Wed, 15 Jan 2025", "Sun, 02 Mar 2025"}, trend.Labels)
		assert.Len(t, trend.Datasets, 2)

		open := trend.Datasets[0]
		assert.Equal(t, "Open", open.Label)
		assert.Equal(t, []int{2, 1}, open.Data)
		assert.Equal(t, "red", open.BorderColor)

		closed := trend.Datasets[1]
		assert.Equal(t, "Closed", closed.Label)
		assert.Equal(t, []int{1, 0}, closed.Data)
		assert.Equal(t, "blue", closed.BorderColor)
	})

	t.Run("unknown status gets fallback color", func(t *testing.T) {
		rows := []domain.Ticket{{Status: "Escalated", CreatedAt: day(2025, time.May, 1)}}
		trend := trendSeries(rows)
		assert.Equal(t, "gray", trend.Datasets[0].BorderColor)
	})

	t.Run("empty rows yield empty axes", func(t *testing.T) {
		trend := trendSeries(nil)
		assert.Empty(t, trend.Labels)
		assert.Empty(t, trend.Datasets)
	})
}

func TestReportServiceStats(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid date filter rejected before fetching", func(t *testing.T) {
		called := false
		mockRepo := &mocks.MockTicketRepository{
			ListForReportFunc: func(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
				called = true
				return nil, nil
			},
		}

		svc := NewReportService(mockRepo, zap.NewNop())
		_, err := svc.Stats(ctx, repository.FilterParams{DateRange: "2025-01-01"})
		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("empty result is not an error", func(t *testing.T) {
		mockRepo := &mocks.MockTicketRepository{
			ListForReportFunc: func(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
				return nil, nil
			},
		}

		svc := NewReportService(mockRepo, zap.NewNop())
		cards, err := svc.Stats(ctx, repository.FilterParams{})
		assert.NoError(t, err)
		assert.Empty(t, cards)
	})

	t.Run("company scope reaches the filter", func(t *testing.T) {
		var seen repository.TicketFilter
		mockRepo := &mocks.MockTicketRepository{
			ListForReportFunc: func(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
				seen = filter
				return nil, nil
			},
		}

		svc := NewReportService(mockRepo, zap.NewNop())
		_, err := svc.MonthlyTrends(ctx, "C-1", "ops@acme.test")
		assert.NoError(t, err)
		assert.Len(t, seen.Clauses, 2)
		assert.Equal(t, repository.ClauseCompanyIDEquals, seen.Clauses[0].Kind)
		assert.Equal(t, repository.ClauseCompanyEmailEquals, seen.Clauses[1].Kind)
	})
}
