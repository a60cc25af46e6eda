package analysis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

func TestAggregateByCategory_EmptyDataset(t *testing.T) {
	_, err := AggregateByCategory(domain.Dataset{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestAggregateByCategory_FirstAppearanceOrder(t *testing.T) {
	ds := domain.Dataset{
		{Date: day(0), Category: "C", Value: 10, Metric: 1},
		{Date: day(1), Category: "A", Value: 20, Metric: 2},
		{Date: day(2), Category: "C", Value: 30, Metric: 3},
		{Date: day(3), Category: "B", Value: 40, Metric: 4},
		{Date: day(4), Category: "A", Value: 50, Metric: 5},
	}

	rows, err := AggregateByCategory(ds)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Rows follow first appearance, not label order.
	assert.Equal(t, "C", rows[0].Category)
	assert.Equal(t, "A", rows[1].Category)
	assert.Equal(t, "B", rows[2].Category)
}

func TestAggregateByCategory_Stats(t *testing.T) {
	ds := domain.Dataset{
		{Date: day(0), Category: "A", Value: 10, Metric: 1},
		{Date: day(1), Category: "A", Value: 20, Metric: 3},
		{Date: day(2), Category: "B", Value: 100, Metric: 5},
	}

	rows, err := AggregateByCategory(ds)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	a := rows[0]
	assert.Equal(t, 2, a.Count)
	assert.InDelta(t, 66.7, a.Share, 1e-9)
	assert.InDelta(t, 15.0, a.ValueMean, 1e-9)
	assert.InDelta(t, 7.07, a.ValueStdDev, 1e-9)
	assert.InDelta(t, 2.0, a.MetricMean, 1e-9)

	b := rows[1]
	assert.Equal(t, 1, b.Count)
	assert.InDelta(t, 33.3, b.Share, 1e-9)
	assert.InDelta(t, 100.0, b.ValueMean, 1e-9)
}

func TestAggregateByCategory_CountsSumToDatasetLength(t *testing.T) {
	ds := sampleDataset(t, 42, 1000)

	rows, err := AggregateByCategory(ds)
	require.NoError(t, err)

	total := 0
	for _, row := range rows {
		assert.Greater(t, row.Count, 0)
		total += row.Count
	}
	assert.Equal(t, len(ds), total)
}

func TestAggregateByMonth_EmptyDataset(t *testing.T) {
	_, err := AggregateByMonth(domain.Dataset{})
	assert.ErrorIs(t, err, ErrEmptyDataset)
}

func TestAggregateByMonth_NormalizesAndOrders(t *testing.T) {
	ds := domain.Dataset{
		{Date: time.Date(2023, time.February, 15, 0, 0, 0, 0, time.UTC), Value: 10, Metric: 1},
		{Date: time.Date(2023, time.January, 20, 0, 0, 0, 0, time.UTC), Value: 20, Metric: 2},
		{Date: time.Date(2023, time.February, 3, 0, 0, 0, 0, time.UTC), Value: 30, Metric: 3},
	}

	rows, err := AggregateByMonth(ds)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	jan := rows[0]
	assert.True(t, jan.Month.Equal(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, jan.Count)
	assert.InDelta(t, 20.0, jan.ValueMean, 1e-9)
	assert.InDelta(t, 20.0, jan.ValueSum, 1e-9)

	feb := rows[1]
	assert.True(t, feb.Month.Equal(time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 2, feb.Count)
	assert.InDelta(t, 20.0, feb.ValueMean, 1e-9)
	assert.InDelta(t, 40.0, feb.ValueSum, 1e-9)
	assert.InDelta(t, 2.0, feb.MetricMean, 1e-9)
}

func TestAggregateByMonth_FullDatasetChronological(t *testing.T) {
	ds := sampleDataset(t, 42, 1000)

	rows, err := AggregateByMonth(ds)
	require.NoError(t, err)

	// 1000 daily records from 2023-01-01 span 33 calendar months.
	require.Len(t, rows, 33)

	total := 0
	for i, row := range rows {
		total += row.Count
		if i > 0 {
			assert.True(t, rows[i-1].Month.Before(row.Month))
		}
	}
	assert.Equal(t, len(ds), total)
}
