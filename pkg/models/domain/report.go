package domain

import "time"

// Report represents a complete analysis report
type Report struct {
	ID          string
	Title       string
	GeneratedAt time.Time
	Period      TimePeriod
	Rows        int
	Sections    []ReportSection
}

// TimePeriod represents the time range covered by the report
type TimePeriod struct {
	Start    time.Time
	End      time.Time
	Duration int // in days
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
