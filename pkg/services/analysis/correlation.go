package analysis

import (
	"fmt"
	"math"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

// Correlations computes the pairwise Pearson coefficients of the numeric
// fields, rounded to 2 decimals. The matrix is symmetric with a unit
// diagonal. A zero-variance column correlates 0 with everything.
func Correlations(ds domain.Dataset) (*domain.CorrelationMatrix, error) {
	if len(ds) == 0 {
		return nil, fmt.Errorf("correlations: %w", ErrEmptyDataset)
	}

	columns := make([][]float64, len(NumericFields))
	for i, field := range NumericFields {
		columns[i] = numericColumn(ds, field)
	}

	coeffs := make([][]float64, len(columns))
	for i := range columns {
		coeffs[i] = make([]float64, len(columns))
		coeffs[i][i] = 1
		for j := 0; j < i; j++ {
			c := round2(pearson(columns[i], columns[j]))
			coeffs[i][j] = c
			coeffs[j][i] = c
		}
	}

	return &domain.CorrelationMatrix{
		Fields: append([]string(nil), NumericFields...),
		Coeffs: coeffs,
	}, nil
}

func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))
	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var cov, varX, varY float64
	for i := range xs {
		dx, dy := xs[i]-meanX, ys[i]-meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
