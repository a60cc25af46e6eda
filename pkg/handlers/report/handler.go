package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/report-lab/pkg/models/api"
	"github.com/de-tools/report-lab/pkg/models/domain"
	"github.com/de-tools/report-lab/pkg/services/analysis"
	"github.com/de-tools/report-lab/pkg/services/config"
	"github.com/de-tools/report-lab/pkg/services/dataset"
)

// Service builds datasets and reports from profiles.
type Service interface {
	Dataset(profile domain.Profile) (domain.Dataset, error)
	Build(ctx context.Context, profile domain.Profile) (*domain.Report, error)
}

type Handler struct {
	registry config.Registry
	service  Service
}

func NewHandler(registry config.Registry, service Service) *Handler {
	return &Handler{
		registry: registry,
		service:  service,
	}
}

func (h *Handler) ListProfiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.registry.GetProfiles(ctx)
	if err != nil {
		http.Error(w, "failed to list profiles", http.StatusInternalServerError)
		return
	}

	var response []api.Profile
	for _, profile := range profiles {
		response = append(response, api.Profile{
			Name: profile.Name,
			Seed: profile.Seed,
			Rows: profile.Rows,
		})
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode profiles")
	}
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profile, ok := h.resolveProfile(w, r)
	if !ok {
		return
	}

	rep, err := h.service.Build(ctx, profile)
	if err != nil {
		h.writeBuildError(w, r, err)
		return
	}

	if err := json.NewEncoder(w).Encode(rep); err != nil {
		logger.Error().
			Err(err).
			Str("profile", profile.Name).
			Msg("failed to encode report")
	}
}

func (h *Handler) GetDataset(w http.ResponseWriter, r *http.Request) {
	h.withDataset(w, r, func(ds domain.Dataset) (interface{}, error) {
		response := make([]api.Record, 0, len(ds))
		for _, rec := range ds {
			response = append(response, api.Record{
				Date:     rec.Date.Format("2006-01-02"),
				Category: rec.Category,
				Value:    rec.Value,
				Metric:   rec.Metric,
				Count:    rec.Count,
				Binary:   rec.Binary,
			})
		}
		return response, nil
	})
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	h.withDataset(w, r, func(ds domain.Dataset) (interface{}, error) {
		summary, err := analysis.Summarize(ds)
		if err != nil {
			return nil, err
		}

		response := make([]api.FieldSummary, 0, len(summary.Fields))
		for _, f := range summary.Fields {
			response = append(response, api.FieldSummary{
				Field:  f.Field,
				Count:  f.Count,
				Mean:   f.Mean,
				StdDev: f.StdDev,
				Min:    f.Min,
				Q1:     f.Q1,
				Median: f.Median,
				Q3:     f.Q3,
				Max:    f.Max,
			})
		}
		return response, nil
	})
}

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.withDataset(w, r, func(ds domain.Dataset) (interface{}, error) {
		rows, err := analysis.AggregateByCategory(ds)
		if err != nil {
			return nil, err
		}

		response := make([]api.CategoryStats, 0, len(rows))
		for _, row := range rows {
			response = append(response, api.CategoryStats{
				Category:     row.Category,
				Count:        row.Count,
				Share:        row.Share,
				ValueMean:    row.ValueMean,
				ValueStdDev:  row.ValueStdDev,
				MetricMean:   row.MetricMean,
				MetricStdDev: row.MetricStdDev,
			})
		}
		return response, nil
	})
}

func (h *Handler) GetMonthly(w http.ResponseWriter, r *http.Request) {
	h.withDataset(w, r, func(ds domain.Dataset) (interface{}, error) {
		rows, err := analysis.AggregateByMonth(ds)
		if err != nil {
			return nil, err
		}

		response := make([]api.MonthlyStats, 0, len(rows))
		for _, row := range rows {
			response = append(response, api.MonthlyStats{
				Month:      row.Month.Format("2006-01"),
				Count:      row.Count,
				ValueMean:  row.ValueMean,
				ValueSum:   row.ValueSum,
				MetricMean: row.MetricMean,
			})
		}
		return response, nil
	})
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	h.withDataset(w, r, func(ds domain.Dataset) (interface{}, error) {
		insights, err := analysis.ComputeInsights(ds)
		if err != nil {
			return nil, err
		}

		response := api.Insights{
			TopCategory:      insights.TopCategory,
			TopCategoryShare: insights.TopCategoryShare,
			ValueMean:        insights.ValueMean,
			ValueLevel:       insights.ValueLevel,
			DaysCovered:      insights.DaysCovered,
			Statements:       insights.Statements,
		}
		if insights.HighValue != nil {
			response.HighValueCount = insights.HighValue.Count
			response.HighValueMean = insights.HighValue.ValueMean
		}
		return response, nil
	})
}

// withDataset resolves the profile, regenerates its dataset, derives a
// view and encodes it.
func (h *Handler) withDataset(w http.ResponseWriter, r *http.Request,
	view func(domain.Dataset) (interface{}, error)) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profile, ok := h.resolveProfile(w, r)
	if !ok {
		return
	}

	ds, err := h.service.Dataset(profile)
	if err != nil {
		h.writeBuildError(w, r, err)
		return
	}

	response, err := view(ds)
	if err != nil {
		h.writeBuildError(w, r, err)
		return
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		logger.Error().
			Err(err).
			Str("profile", profile.Name).
			Msg("failed to encode response")
	}
}

// resolveProfile looks up the profile named in the URL and applies seed
// and rows query overrides. It writes the error response itself and
// reports success through the second return value.
func (h *Handler) resolveProfile(w http.ResponseWriter, r *http.Request) (domain.Profile, bool) {
	ctx := r.Context()
	name := chi.URLParam(r, "profile")

	profile, err := h.registry.GetProfile(ctx, name)
	if err != nil {
		http.Error(w, "profile not found", http.StatusNotFound)
		return domain.Profile{}, false
	}

	if seed := r.URL.Query().Get("seed"); seed != "" {
		parsed, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			http.Error(w, "invalid seed", http.StatusBadRequest)
			return domain.Profile{}, false
		}
		profile.Seed = parsed
	}
	if rows := r.URL.Query().Get("rows"); rows != "" {
		parsed, err := strconv.Atoi(rows)
		if err != nil {
			http.Error(w, "invalid rows", http.StatusBadRequest)
			return domain.Profile{}, false
		}
		profile.Rows = parsed
	}

	return profile, true
}

func (h *Handler) writeBuildError(w http.ResponseWriter, r *http.Request, err error) {
	logger := zerolog.Ctx(r.Context())

	switch {
	case errors.Is(err, dataset.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, analysis.ErrEmptyDataset):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		logger.Error().Err(err).Msg("report build failed")
		http.Error(w, "report build failed", http.StatusInternalServerError)
	}
}
