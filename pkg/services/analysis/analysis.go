// Package analysis derives read-only views from a generated dataset:
// descriptive statistics, category and monthly aggregations, pairwise
// correlations and the fixed-rule insight list. Every view is a pure
// function of the dataset; nothing is cached or mutated.
package analysis

import (
	"errors"
	"math"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

// ErrEmptyDataset marks views requested over a zero-length dataset.
// Statistics over no records are undefined and are never silently
// emitted as NaN.
var ErrEmptyDataset = errors.New("empty dataset")

// NumericFields lists the dataset fields covered by Summarize and
// Correlations, in display order.
var NumericFields = []string{"value", "metric", "count", "binary"}

func numericColumn(ds domain.Dataset, field string) []float64 {
	xs := make([]float64, len(ds))
	for i, rec := range ds {
		switch field {
		case "value":
			xs[i] = rec.Value
		case "metric":
			xs[i] = rec.Metric
		case "count":
			xs[i] = float64(rec.Count)
		case "binary":
			xs[i] = float64(rec.Binary)
		}
	}
	return xs
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
