package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

func TestCorrelations_EmptyDataset(t *testing.T) {
	_, err := Correlations(domain.Dataset{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestCorrelations_PerfectlyCorrelatedFields(t *testing.T) {
	ds := domain.Dataset{
		{Date: day(0), Value: 1, Metric: 2},
		{Date: day(1), Value: 2, Metric: 4},
		{Date: day(2), Value: 3, Metric: 6},
	}

	matrix, err := Correlations(ds)
	require.NoError(t, err)

	// value and metric are the first two fields.
	assert.InDelta(t, 1.0, matrix.Coeffs[0][1], 1e-9)
}

func TestCorrelations_MatrixShape(t *testing.T) {
	ds := sampleDataset(t, 42, 200)

	matrix, err := Correlations(ds)
	require.NoError(t, err)
	require.Equal(t, NumericFields, matrix.Fields)
	require.Len(t, matrix.Coeffs, len(NumericFields))

	for i := range matrix.Coeffs {
		require.Len(t, matrix.Coeffs[i], len(NumericFields))
		assert.InDelta(t, 1.0, matrix.Coeffs[i][i], 1e-9)
		for j := range matrix.Coeffs[i] {
			assert.Equal(t, matrix.Coeffs[i][j], matrix.Coeffs[j][i])
			assert.GreaterOrEqual(t, matrix.Coeffs[i][j], -1.0)
			assert.LessOrEqual(t, matrix.Coeffs[i][j], 1.0)
		}
	}
}

func TestCorrelations_ZeroVarianceColumn(t *testing.T) {
	ds := domain.Dataset{
		{Date: day(0), Value: 5, Metric: 1},
		{Date: day(1), Value: 5, Metric: 2},
	}

	matrix, err := Correlations(ds)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, matrix.Coeffs[0][1], 1e-9)
}
