package domain

import "time"

// Record is one synthetic observation in a generated dataset.
type Record struct {
	Date     time.Time
	Category string
	Value    float64
	Metric   float64
	Count    int
	Binary   int
}

// Dataset is the ordered sequence of records produced by a single
// generation run. It is never mutated after creation; derived views are
// recomputed from it on demand.
type Dataset []Record

// Profile names one reproducible report configuration.
type Profile struct {
	Name   string
	Seed   int64
	Rows   int
	Format string
}
