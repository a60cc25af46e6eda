package domain

import "time"

// FieldSummary holds descriptive statistics for one numeric field.
type FieldSummary struct {
	Field  string
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Q1     float64
	Median float64
	Q3     float64
	Max    float64
}

// SummaryStats covers every numeric field of a dataset.
type SummaryStats struct {
	Fields []FieldSummary
}

// CategoryStats is one row of the per-category aggregation. Rows keep the
// first-appearance order of categories in the dataset.
type CategoryStats struct {
	Category     string
	Count        int
	Share        float64 // percent of all records
	ValueMean    float64
	ValueStdDev  float64
	MetricMean   float64
	MetricStdDev float64
}

// MonthlyStats is one row of the calendar-month aggregation. Month is
// normalized to the first instant of the month in UTC.
type MonthlyStats struct {
	Month      time.Time
	Count      int
	ValueMean  float64
	ValueSum   float64
	MetricMean float64
}

// HighValueStats describes the subset of records whose value exceeds the
// high-value threshold. It is absent from Insights when no record qualifies.
type HighValueStats struct {
	Count     int
	ValueMean float64
}

// Insights is the fixed-rule narrative view over a dataset. Statements
// carries the rendered sentences in rule order.
type Insights struct {
	TopCategory      string
	TopCategoryShare float64 // percent
	ValueMean        float64
	ValueLevel       string // "high" or "moderate"
	HighValue        *HighValueStats
	DaysCovered      int
	Statements       []string
}

// CorrelationMatrix holds pairwise Pearson coefficients for the numeric
// fields, indexed in Fields order.
type CorrelationMatrix struct {
	Fields []string
	Coeffs [][]float64
}
