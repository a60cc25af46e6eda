package api

// Profile is the API representation of a report profile.
type Profile struct {
	Name string `json:"name"`
	Seed int64  `json:"seed"`
	Rows int    `json:"rows"`
}

// Record is the API representation of one dataset row.
type Record struct {
	Date     string  `json:"date"`
	Category string  `json:"category"`
	Value    float64 `json:"value"`
	Metric   float64 `json:"metric"`
	Count    int     `json:"count"`
	Binary   int     `json:"binary"`
}

// FieldSummary carries descriptive statistics for one numeric field.
type FieldSummary struct {
	Field  string  `json:"field"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// CategoryStats is one row of the per-category breakdown.
type CategoryStats struct {
	Category     string  `json:"category"`
	Count        int     `json:"count"`
	Share        float64 `json:"share"`
	ValueMean    float64 `json:"value_mean"`
	ValueStdDev  float64 `json:"value_std_dev"`
	MetricMean   float64 `json:"metric_mean"`
	MetricStdDev float64 `json:"metric_std_dev"`
}

// MonthlyStats is one row of the calendar-month aggregation.
type MonthlyStats struct {
	Month      string  `json:"month"`
	Count      int     `json:"count"`
	ValueMean  float64 `json:"value_mean"`
	ValueSum   float64 `json:"value_sum"`
	MetricMean float64 `json:"metric_mean"`
}

// Insights carries the narrative view of a dataset.
type Insights struct {
	TopCategory      string   `json:"top_category"`
	TopCategoryShare float64  `json:"top_category_share"`
	ValueMean        float64  `json:"value_mean"`
	ValueLevel       string   `json:"value_level"`
	HighValueCount   int      `json:"high_value_count,omitempty"`
	HighValueMean    float64  `json:"high_value_mean,omitempty"`
	DaysCovered      int      `json:"days_covered"`
	Statements       []string `json:"statements"`
}
