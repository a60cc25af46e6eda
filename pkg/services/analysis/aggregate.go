package analysis

import (
	"fmt"
	"sort"
	"time"

	"github.com/aclements/go-moremath/stats"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

// AggregateByCategory groups records by category and computes count,
// share and mean/std of value and metric per group. Only categories
// present in the data produce a row, and rows keep the first-appearance
// order of their category so repeated runs render identical tables.
// Means and deviations are rounded to 2 decimals, shares to 1.
func AggregateByCategory(ds domain.Dataset) ([]domain.CategoryStats, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("aggregate by category: %w", ErrEmptyDataset)
	}

	type group struct {
		values  []float64
		metrics []float64
	}

	var order []string
	groups := make(map[string]*group)
	for _, rec := range ds {
		g, ok := groups[rec.Category]
		if !ok {
			g = &group{}
			groups[rec.Category] = g
			order = append(order, rec.Category)
		}
		g.values = append(g.values, rec.Value)
		g.metrics = append(g.metrics, rec.Metric)
	}

	total := float64(len(ds))
	rows := make([]domain.CategoryStats, 0, len(order))
	for _, category := range order {
		g := groups[category]
		values := stats.Sample{Xs: g.values}
		metrics := stats.Sample{Xs: g.metrics}

		rows = append(rows, domain.CategoryStats{
			Category:     category,
			Count:        len(g.values),
			Share:        round1(float64(len(g.values)) / total * 100),
			ValueMean:    round2(values.Mean()),
			ValueStdDev:  round2(values.StdDev()),
			MetricMean:   round2(metrics.Mean()),
			MetricStdDev: round2(metrics.StdDev()),
		})
	}

	return rows, nil
}

// AggregateByMonth groups records by calendar month and computes record
// count, mean and sum of value, and mean of metric per month. Months are
// normalized to their first instant in UTC and returned chronologically.
func AggregateByMonth(ds domain.Dataset) ([]domain.MonthlyStats, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("aggregate by month: %w", ErrEmptyDataset)
	}

	type group struct {
		values  []float64
		metrics []float64
	}

	groups := make(map[time.Time]*group)
	for _, rec := range ds {
		month := time.Date(rec.Date.Year(), rec.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		g, ok := groups[month]
		if !ok {
			g = &group{}
			groups[month] = g
		}
		g.values = append(g.values, rec.Value)
		g.metrics = append(g.metrics, rec.Metric)
	}

	months := make([]time.Time, 0, len(groups))
	for month := range groups {
		months = append(months, month)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	rows := make([]domain.MonthlyStats, 0, len(months))
	for _, month := range months {
		g := groups[month]
		values := stats.Sample{Xs: g.values}
		metrics := stats.Sample{Xs: g.metrics}

		rows = append(rows, domain.MonthlyStats{
			Month:      month,
			Count:      len(g.values),
			ValueMean:  values.Mean(),
			ValueSum:   values.Sum(),
			MetricMean: metrics.Mean(),
		})
	}

	return rows, nil
}
