package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/helpdesk-dashboard/internal/domain"
	"github.com/spec-kit/helpdesk-dashboard/internal/repository"
)

// StatCard is one dashboard summary card.
type StatCard struct {
	Label      string `json:"label"`
	Value      int    `json:"value"`
	Color      string `json:"color"`
	GraphWidth int    `json:"graphwidth"`
}

// Chart is one chart payload in the shape the dashboard renders directly.
type Chart struct {
	Title string    `json:"title"`
	Type  string    `json:"type"`
	Data  ChartData `json:"data"`
}

// ChartData pairs labels with positionally aligned datasets.
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// ChartDataset is a single series with its palette.
type ChartDataset struct {
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

// TrendResponse is the per-status time series over the shared date axis.
type TrendResponse struct {
	Labels   []string       `json:"labels"`
	Datasets []TrendDataset `json:"datasets"`
}

// TrendDataset is one status line.
type TrendDataset struct {
	Label           string `json:"label"`
	Data            []int  `json:"data"`
	BorderColor     string `json:"borderColor"`
	BackgroundColor string `json:"backgroundColor"`
	Fill            bool   `json:"fill"`
}

// ReportService computes dashboard aggregations from filtered ticket rows.
// All aggregation is pure and single-pass over the fetched row set.
type ReportService struct {
	tickets repository.TicketRepository
	logger  *zap.Logger
}

// NewReportService builds the service.
func NewReportService(tickets repository.TicketRepository, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{tickets: tickets, logger: logger}
}

// Stats returns the six summary cards for the filtered row set. An empty row
// set yields an empty array, never a division error.
func (s *ReportService) Stats(ctx context.Context, params repository.FilterParams) ([]StatCard, error) {
	filter, err := repository.BuildFilter(params)
	if err != nil {
		return nil, err
	}
	rows, err := s.tickets.ListForReport(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("stats rows fetched", zap.Int("count", len(rows)))
	return summaryCards(rows), nil
}

// Charts returns the five chart payloads for the filtered row set.
func (s *ReportService) Charts(ctx context.Context, params repository.FilterParams) ([]Chart, error) {
	filter, err := repository.BuildFilter(params)
	if err != nil {
		return nil, err
	}
	rows, err := s.tickets.ListForReport(ctx, filter)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("chart rows fetched", zap.Int("count", len(rows)))
	return chartPayloads(rows), nil
}

// MonthlyTrends returns one dataset per status over the sorted distinct
// creation dates, optionally scoped to one company.
func (s *ReportService) MonthlyTrends(ctx context.Context, companyID, companyEmail string) (TrendResponse, error) {
	filter, err := repository.BuildFilter(repository.FilterParams{
		CompanyID:    companyID,
		CompanyEmail: companyEmail,
	})
	if err != nil {
		return TrendResponse{}, err
	}
	rows, err := s.tickets.ListForReport(ctx, filter)
	if err != nil {
		return TrendResponse{}, err
	}
	return trendSeries(rows), nil
}

const (
	cardColorTickets  = "#6f42c1"
	cardColorOpen     = "#dc3545"
	cardColorResolved = "#17a2b8"
	cardColorClosed   = "#28a745"
	cardColorPending  = "#CA279B"
	cardColorAvgDays  = "#ffc107"
)

func summaryCards(rows []domain.Ticket) []StatCard {
	if len(rows) == 0 {
		return []StatCard{}
	}

	total := len(rows)
	statusCounts := make(map[string]int)
	openDaysSum := 0
	for _, r := range rows {
		statusCounts[r.Status]++
		if r.Status == domain.StatusOpen {
			openDaysSum += r.DaysOpenOrZero()
		}
	}

	openCount := statusCounts[domain.StatusOpen]
	avgDaysOpen := openDaysSum / max(1, openCount)

	return []StatCard{
		{Label: "Tickets", Value: total, Color: cardColorTickets, GraphWidth: clampWidth(total)},
		statusCard("Open", statusCounts, total, cardColorOpen),
		statusCard("Resolved", statusCounts, total, cardColorResolved),
		statusCard("Closed", statusCounts, total, cardColorClosed),
		statusCard("Pending", statusCounts, total, cardColorPending),
		{Label: "Avg Days Open", Value: avgDaysOpen, Color: cardColorAvgDays, GraphWidth: clampWidth(avgDaysOpen * 5)},
	}
}

func statusCard(status string, counts map[string]int, total int, color string) StatCard {
	count := counts[status]
	return StatCard{
		Label:      status,
		Value:      count,
		Color:      color,
		GraphWidth: clampWidth(count * 100 / total),
	}
}

func clampWidth(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func chartPayloads(rows []domain.Ticket) []Chart {
	if len(rows) == 0 {
		return []Chart{}
	}

	status := newOrderedCounter()
	feedback := newOrderedCounter()
	severity := newOrderedCounter()
	category := newOrderedCounter()
	for _, r := range rows {
		status.Add(r.Status)
		feedback.Add(r.Feedback)
		severity.Add(r.Priority)
		category.Add(r.Category)
	}

	histLabels, histCounts := daysOpenHistogram(rows)

	return []Chart{
		{
			Title: "Ticket Status",
			Type:  "doughnut",
			Data: ChartData{
				Labels: status.Labels(),
				Datasets: []ChartDataset{{
					Data:            status.Values(),
					BackgroundColor: []string{"orange", "skyblue", "red", "green", "purple"},
				}},
			},
		},
		{
			Title: "Satisfaction",
			Type:  "bar",
			Data: ChartData{
				Labels: feedback.Labels(),
				Datasets: []ChartDataset{{
					Data:            feedback.Values(),
					BackgroundColor: []string{"green", "blue", "gray", "red"},
				}},
			},
		},
		{
			Title: "Severity",
			Type:  "bar",
			Data: ChartData{
				Labels: severity.Labels(),
				Datasets: []ChartDataset{{
					Data:            severity.Values(),
					BackgroundColor: []string{"red", "orange", "yellow", "gray"},
				}},
			},
		},
		{
			Title: "Issue Category",
			Type:  "bar",
			Data: ChartData{
				Labels: category.Labels(),
				Datasets: []ChartDataset{{
					Data:            category.Values(),
					BackgroundColor: []string{"purple", "blue", "green", "gray"},
				}},
			},
		},
		{
			Title: "Open Days",
			Type:  "bar",
			Data: ChartData{
				Labels: histLabels,
				Datasets: []ChartDataset{{
					Data:            histCounts,
					BackgroundColor: []string{"teal"},
				}},
			},
		},
	}
}

// daysOpenBuckets are inclusive on their upper bound; the buckets partition
// every null-coalesced days-open value.
var daysOpenBuckets = []string{"0-5 Days", "6-10 Days", "11-15 Days", "16-20 Days", "21-25 Days", "> 25 Days"}

func daysOpenHistogram(rows []domain.Ticket) ([]string, []int) {
	counts := make([]int, len(daysOpenBuckets))
	for _, r := range rows {
		counts[bucketIndex(r.DaysOpenOrZero())]++
	}
	return daysOpenBuckets, counts
}

func bucketIndex(days int) int {
	switch {
	case days <= 5:
		return 0
	case days <= 10:
		return 1
	case days <= 15:
		return 2
	case days <= 20:
		return 3
	case days <= 25:
		return 4
	default:
		return 5
	}
}

const trendDateFormat = "Mon, 02 Jan 2006"

var trendColors = map[string]string{
	domain.StatusOpen:     "red",
	domain.StatusResolved: "green",
	domain.StatusPending:  "orange",
	domain.StatusClosed:   "blue",
}

func trendSeries(rows []domain.Ticket) TrendResponse {
	perStatus := make(map[string]map[string]int)
	statusOrder := []string{}
	daySet := make(map[time.Time]struct{})

	for _, r := range rows {
		day := r.CreatedAt.Truncate(24 * time.Hour)
		daySet[day] = struct{}{}

		label := day.Format(trendDateFormat)
		if _, ok := perStatus[r.Status]; !ok {
			perStatus[r.Status] = make(map[string]int)
			statusOrder = append(statusOrder, r.Status)
		}
		perStatus[r.Status][label]++
	}

	days := make([]time.Time, 0, len(daySet))
	for day := range daySet {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	labels := make([]string, 0, len(days))
	for _, day := range days {
		labels = append(labels, day.Format(trendDateFormat))
	}

	datasets := make([]TrendDataset, 0, len(statusOrder))
	for _, status := range statusOrder {
		data := make([]int, len(labels))
		for i, label := range labels {
			data[i] = perStatus[status][label]
		}
		color, ok := trendColors[status]
		if !ok {
			color = "gray"
		}
		datasets = append(datasets, TrendDataset{
			Label:           status,
			Data:            data,
			BorderColor:     color,
			BackgroundColor: color,
			Fill:            false,
		})
	}

	return TrendResponse{Labels: labels, Datasets: datasets}
}

// orderedCounter counts labels while preserving first-seen order.
type orderedCounter struct {
	labels []string
	counts map[string]int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) Add(label string) {
	if _, ok := c.counts[label]; !ok {
		c.labels = append(c.labels, label)
	}
	c.counts[label]++
}

func (c *orderedCounter) Labels() []string {
	return c.labels
}

// Values is positionally aligned with Labels.
func (c *orderedCounter) Values() []int {
	values := make([]int, len(c.labels))
	for i, label := range c.labels {
		values[i] = c.counts[label]
	}
	return values
}
