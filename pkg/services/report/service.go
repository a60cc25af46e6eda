package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/report-lab/pkg/models/domain"
	"github.com/de-tools/report-lab/pkg/services/analysis"
	"github.com/de-tools/report-lab/pkg/services/dataset"
)

// Service turns a report profile into a generated dataset and the
// assembled analysis report. Datasets are ephemeral: each call
// regenerates from the profile's seed, nothing is stored.
type Service struct {
	gen *dataset.Generator
}

func NewService(gen *dataset.Generator) *Service {
	return &Service{gen: gen}
}

// Dataset regenerates the profile's dataset.
func (s *Service) Dataset(profile domain.Profile) (domain.Dataset, error) {
	ds, err := s.gen.Generate(profile.Seed, profile.Rows)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", profile.Name, err)
	}
	return ds, nil
}

// Build generates the profile's dataset, derives every view and
// assembles them into a report. Any failed view aborts the whole build;
// there are no partial reports.
func (s *Service) Build(ctx context.Context, profile domain.Profile) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)

	ds, err := s.Dataset(profile)
	if err != nil {
		return nil, err
	}

	summary, err := analysis.Summarize(ds)
	if err != nil {
		return nil, err
	}
	categories, err := analysis.AggregateByCategory(ds)
	if err != nil {
		return nil, err
	}
	monthly, err := analysis.AggregateByMonth(ds)
	if err != nil {
		return nil, err
	}
	correlations, err := analysis.Correlations(ds)
	if err != nil {
		return nil, err
	}
	insights, err := analysis.ComputeInsights(ds)
	if err != nil {
		return nil, err
	}

	start := ds[0].Date
	end := ds[len(ds)-1].Date
	rep := &domain.Report{
		ID:          uuid.New().String(),
		Title:       fmt.Sprintf("Analysis Report (%s)", profile.Name),
		GeneratedAt: time.Now().UTC(),
		Period: domain.TimePeriod{
			Start:    start,
			End:      end,
			Duration: insights.DaysCovered,
		},
		Rows: len(ds),
		Sections: []domain.ReportSection{
			datasetSection(profile, ds),
			summarySection(summary),
			categorySection(categories),
			monthlySection(monthly),
			correlationSection(correlations),
			insightSection(insights),
		},
	}

	logger.Debug().
		Str("report_id", rep.ID).
		Str("profile", profile.Name).
		Int("rows", rep.Rows).
		Msg("report assembled")

	return rep, nil
}

func datasetSection(profile domain.Profile, ds domain.Dataset) domain.ReportSection {
	return domain.ReportSection{
		Title: "Dataset",
		Summary: map[string]interface{}{
			"Rows":  len(ds),
			"Seed":  profile.Seed,
			"Start": ds[0].Date.Format("2006-01-02"),
			"End":   ds[len(ds)-1].Date.Format("2006-01-02"),
		},
	}
}

func summarySection(summary *domain.SummaryStats) domain.ReportSection {
	section := domain.ReportSection{Title: "Summary Statistics"}
	for _, f := range summary.Fields {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  f.Field,
			Value: fmt.Sprintf("%.2f", f.Mean),
			Unit:  "mean",
			Description: fmt.Sprintf("std %.2f, min %.2f, median %.2f, max %.2f",
				f.StdDev, f.Min, f.Median, f.Max),
		})
	}
	return section
}

func categorySection(rows []domain.CategoryStats) domain.ReportSection {
	section := domain.ReportSection{Title: "Category Breakdown"}
	for _, row := range rows {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  row.Category,
			Value: row.Count,
			Unit:  "records",
			Description: fmt.Sprintf("share %.1f%%, value %.2f (sd %.2f), metric %.2f (sd %.2f)",
				row.Share, row.ValueMean, row.ValueStdDev, row.MetricMean, row.MetricStdDev),
		})
	}
	return section
}

func monthlySection(rows []domain.MonthlyStats) domain.ReportSection {
	section := domain.ReportSection{Title: "Monthly Trend"}
	for _, row := range rows {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  row.Month.Format("2006-01"),
			Value: fmt.Sprintf("%.2f", row.ValueMean),
			Unit:  "avg value",
			Description: fmt.Sprintf("%d records, total value %.2f, avg metric %.2f",
				row.Count, row.ValueSum, row.MetricMean),
		})
	}
	return section
}

func correlationSection(matrix *domain.CorrelationMatrix) domain.ReportSection {
	section := domain.ReportSection{Title: "Correlations"}
	for i, a := range matrix.Fields {
		for j, b := range matrix.Fields {
			if j <= i {
				continue
			}
			section.Details = append(section.Details, domain.ReportDetail{
				Name:  fmt.Sprintf("%s / %s", a, b),
				Value: fmt.Sprintf("%.2f", matrix.Coeffs[i][j]),
				Unit:  "pearson",
			})
		}
	}
	return section
}

func insightSection(insights *domain.Insights) domain.ReportSection {
	section := domain.ReportSection{Title: "Key Insights"}
	for i, statement := range insights.Statements {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  fmt.Sprintf("#%d", i+1),
			Value: statement,
		})
	}
	return section
}
