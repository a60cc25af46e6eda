package analysis

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

// Summarize computes count/mean/std/min/max and quartiles for every
// numeric field. Non-numeric fields (date, category) are excluded.
func Summarize(ds domain.Dataset) (*domain.SummaryStats, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("summarize: %w", ErrEmptyDataset)
	}

	summary := &domain.SummaryStats{}
	for _, field := range NumericFields {
		s := stats.Sample{Xs: numericColumn(ds, field)}
		s.Sort()
		min, max := s.Bounds()

		summary.Fields = append(summary.Fields, domain.FieldSummary{
			Field:  field,
			Count:  len(s.Xs),
			Mean:   s.Mean(),
			StdDev: s.StdDev(),
			Min:    min,
			Q1:     s.Quantile(0.25),
			Median: s.Quantile(0.5),
			Q3:     s.Quantile(0.75),
			Max:    max,
		})
	}

	return summary, nil
}
