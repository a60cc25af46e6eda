package analysis

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

// Fixed design constants for the insight rules. Not data-derived.
const (
	avgValueThreshold  = 100.0
	highValueThreshold = 200.0
)

// ComputeInsights evaluates the fixed insight rules against a dataset
// and renders one sentence per rule, in rule order:
//
//  1. most frequent category and its share of all records,
//  2. average value, labeled "high" above the average threshold,
//  3. the high-value subset (only when at least one record qualifies),
//  4. days covered between the first and last date.
//
// Ties on rule 1 go to the category that reached the maximum count
// first in appearance order.
func ComputeInsights(ds domain.Dataset) (*domain.Insights, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("compute insights: %w", ErrEmptyDataset)
	}

	var order []string
	counts := make(map[string]int)
	for _, rec := range ds {
		if _, ok := counts[rec.Category]; !ok {
			order = append(order, rec.Category)
		}
		counts[rec.Category]++
	}

	top := order[0]
	for _, category := range order[1:] {
		if counts[category] > counts[top] {
			top = category
		}
	}
	share := float64(counts[top]) / float64(len(ds)) * 100

	values := stats.Sample{Xs: numericColumn(ds, "value")}
	valueMean := values.Mean()
	level := "moderate"
	if valueMean > avgValueThreshold {
		level = "high"
	}

	var highValues []float64
	for _, rec := range ds {
		if rec.Value > highValueThreshold {
			highValues = append(highValues, rec.Value)
		}
	}
	var high *domain.HighValueStats
	if len(highValues) > 0 {
		sample := stats.Sample{Xs: highValues}
		high = &domain.HighValueStats{
			Count:     len(highValues),
			ValueMean: sample.Mean(),
		}
	}

	minDate, maxDate := ds[0].Date, ds[0].Date
	for _, rec := range ds[1:] {
		if rec.Date.Before(minDate) {
			minDate = rec.Date
		}
		if rec.Date.After(maxDate) {
			maxDate = rec.Date
		}
	}
	days := int(maxDate.Sub(minDate).Hours() / 24)

	insights := &domain.Insights{
		TopCategory:      top,
		TopCategoryShare: share,
		ValueMean:        valueMean,
		ValueLevel:       level,
		HighValue:        high,
		DaysCovered:      days,
	}

	insights.Statements = append(insights.Statements,
		fmt.Sprintf("Most frequent category: %s (%.1f%% of records)", top, share),
		fmt.Sprintf("Average value is %.2f (%s)", valueMean, level),
	)
	if high != nil {
		insights.Statements = append(insights.Statements,
			fmt.Sprintf("%d records exceed a value of %.0f, averaging %.2f",
				high.Count, highValueThreshold, high.ValueMean))
	}
	insights.Statements = append(insights.Statements,
		fmt.Sprintf("Data covers %d days (%s to %s)",
			days, minDate.Format("2006-01-02"), maxDate.Format("2006-01-02")))

	return insights, nil
}
