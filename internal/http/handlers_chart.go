package http

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/chart"
	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
	applog "github.com/Daniel-M-Sena/gerenciador-financeiro/internal/log"
)

func (s *Server) handleChartSection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	year, month := parseChartFilters(r.URL.Query())
	data := buildChartSectionView(s.ledger.Transactions(), year, month)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "chart_section", data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render chart section", applog.FieldError, err, "template", "chart_section")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleChartImage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	year, month := parseChartFilters(r.URL.Query())

	// Revision in the key means any ledger mutation misses the cache.
	cacheKey := fmt.Sprintf("%d-%d-%d", year, month, s.ledger.Revision())
	if png, ok := s.chartCache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(png)
		return
	}

	buckets := core.MonthlyBuckets(s.ledger.Transactions(), year, month)

	var buf bytes.Buffer
	if err := chart.Render(&buf, buckets); err != nil {
		if errors.Is(err, chart.ErrNoData) {
			http.Error(w, "No data for the selected period", http.StatusNotFound)
			return
		}
		slog.ErrorContext(r.Context(), "Failed to render chart image",
			applog.FieldError, err,
			applog.FieldYear, year,
			applog.FieldMonth, month,
			applog.FieldComponent, applog.ComponentChart,
			applog.FieldOperation, applog.OpRender)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	s.chartCache.Set(cacheKey, buf.Bytes())

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}
