package http

import (
	"log/slog"
	"net/http"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
	applog "github.com/Daniel-M-Sena/gerenciador-financeiro/internal/log"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	txs := s.ledger.Transactions()
	year, month := parseChartFilters(r.URL.Query())

	data := indexView{
		Today:        core.Today().ISO(),
		Summary:      buildSummaryView(s.ledger.Summary()),
		Chart:        buildChartSectionView(txs, year, month),
		Transactions: buildTransactionListView(txs),
		Bills:        buildBillsListView(s.ledger.Bills()),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render index", applog.FieldError, err, "template", "index.html")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data := buildSummaryView(s.ledger.Summary())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "summary", data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render summary", applog.FieldError, err, "template", "summary")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleTransactionList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data := buildTransactionListView(s.ledger.Transactions())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "transaction_list", data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render transaction list", applog.FieldError, err, "template", "transaction_list")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) handleBillsList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	data := buildBillsListView(s.ledger.Bills())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "bills_list", data); err != nil {
		slog.ErrorContext(r.Context(), "Failed to render bills list", applog.FieldError, err, "template", "bills_list")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
