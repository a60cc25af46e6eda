package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/report-lab/pkg/services/config"
	"github.com/de-tools/report-lab/pkg/services/dataset"
	"github.com/de-tools/report-lab/pkg/services/report"
)

func newTestAPI(t *testing.T) *WebAPI {
	t.Helper()

	gen, err := dataset.NewGenerator(dataset.DefaultParams())
	require.NoError(t, err)

	logger := zerolog.New(os.Stderr).Level(zerolog.Disabled)
	return NewWebAPI(logger, Config{
		Addr: "localhost:0",
		Dependencies: Dependencies{
			Registry: config.NewDefaultRegistry(),
			Reports:  report.NewService(gen),
		},
	})
}

func get(t *testing.T, api *WebAPI, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	api.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestRoutes(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name   string
		target string
		status int
	}{
		{"profiles", "/api/v1/profiles", http.StatusOK},
		{"report", "/api/v1/reports/default?rows=25", http.StatusOK},
		{"dataset", "/api/v1/reports/default/dataset?rows=25", http.StatusOK},
		{"summary", "/api/v1/reports/default/summary?rows=25", http.StatusOK},
		{"categories", "/api/v1/reports/default/categories?rows=25", http.StatusOK},
		{"monthly", "/api/v1/reports/default/monthly?rows=25", http.StatusOK},
		{"insights", "/api/v1/reports/default/insights?rows=25", http.StatusOK},
		{"unknown profile", "/api/v1/reports/nope", http.StatusNotFound},
		{"invalid rows", "/api/v1/reports/default?rows=0", http.StatusBadRequest},
		{"unknown route", "/api/v1/nope", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, api, tt.target)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestGetReport_Content(t *testing.T) {
	api := newTestAPI(t)

	rec := get(t, api, "/api/v1/reports/default?rows=25")
	require.Equal(t, http.StatusOK, rec.Code)

	var rep struct {
		ID       string
		Title    string
		Rows     int
		Sections []struct{ Title string }
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, "Analysis Report (default)", rep.Title)
	assert.Equal(t, 25, rep.Rows)
	assert.Len(t, rep.Sections, 6)
}

func TestGetDataset_RowCount(t *testing.T) {
	api := newTestAPI(t)

	rec := get(t, api, "/api/v1/reports/default/dataset?rows=25")
	require.Equal(t, http.StatusOK, rec.Code)

	var records []struct {
		Date     string `json:"date"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
	require.Len(t, records, 25)
	assert.Equal(t, "2023-01-01", records[0].Date)
}
