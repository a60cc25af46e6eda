package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

func day(offset int) time.Time {
	return time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestSummarize_EmptyDataset(t *testing.T) {
	_, err := Summarize(domain.Dataset{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestSummarize_NumericFieldsOnly(t *testing.T) {
	ds := domain.Dataset{
		{Date: day(0), Category: "A", Value: 10, Metric: 1, Count: 5, Binary: 0},
		{Date: day(1), Category: "B", Value: 20, Metric: 2, Count: 6, Binary: 1},
	}

	summary, err := Summarize(ds)
	require.NoError(t, err)

	var fields []string
	for _, f := range summary.Fields {
		fields = append(fields, f.Field)
	}
	assert.Equal(t, []string{"value", "metric", "count", "binary"}, fields)
}

func TestSummarize_KnownValues(t *testing.T) {
	ds := domain.Dataset{
		{Date: day(0), Category: "A", Value: 1, Metric: 3},
		{Date: day(1), Category: "A", Value: 2, Metric: 3},
		{Date: day(2), Category: "A", Value: 3, Metric: 3},
	}

	summary, err := Summarize(ds)
	require.NoError(t, err)

	value := summary.Fields[0]
	assert.Equal(t, 3, value.Count)
	assert.InDelta(t, 2.0, value.Mean, 1e-9)
	assert.InDelta(t, 1.0, value.StdDev, 1e-9)
	assert.InDelta(t, 1.0, value.Min, 1e-9)
	assert.InDelta(t, 2.0, value.Median, 1e-9)
	assert.InDelta(t, 3.0, value.Max, 1e-9)
	assert.LessOrEqual(t, value.Q1, value.Median)
	assert.LessOrEqual(t, value.Median, value.Q3)
}
