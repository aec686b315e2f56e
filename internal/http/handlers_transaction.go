package http

import (
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/ledger"
	applog "github.com/Daniel-M-Sena/gerenciador-financeiro/internal/log"
)

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldMethod, r.Method, applog.FieldPath, r.URL.Path)
		BadRequestError("Formato de requisição inválido").Write(w)
		return
	}

	desc := sanitizeInput(r.Form.Get("description"))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	dateStr := strings.TrimSpace(r.Form.Get("date"))
	typeStr := sanitizeInput(r.Form.Get("type"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		UnprocessableEntityError("Valor inválido").Write(w)
		return
	}

	date, err := core.ParseDate(dateStr)
	if err != nil {
		UnprocessableEntityError("Data inválida").Write(w)
		return
	}

	candidate := core.Transaction{
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Date:        date,
		Type:        core.TransactionType(typeStr),
	}
	if err := candidate.Validate(); err != nil {
		UnprocessableEntityError("Dados inválidos: " + err.Error()).Write(w)
		return
	}

	tx, err := s.ledger.AddTransaction(r.Context(), ledger.TransactionInput{
		Description: candidate.Description,
		Amount:      candidate.Amount,
		Date:        candidate.Date,
		Type:        candidate.Type,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save transaction",
			applog.FieldError, err,
			applog.FieldDescription, desc,
			applog.FieldAmountCents, cents,
			"transaction_type", string(candidate.Type),
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldOperation, applog.OpCreate)
		InternalServerError("Erro ao salvar transação").Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Transaction created",
		applog.FieldRecordID, tx.ID,
		applog.FieldDescription, tx.Description,
		applog.FieldAmountCents, tx.Amount.Cents,
		"transaction_type", string(tx.Type),
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpCreate)

	successMsg := fmt.Sprintf("Transação registrada: %s (%s)",
		template.HTMLEscapeString(tx.Description), tx.Amount.BRL())

	NewHTMXResponse().
		TriggerFormReset().
		TriggerTransactionsChanged().
		TriggerSuccessNotification(successMsg).
		Write(w)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		MethodNotAllowedError("DELETE, POST").Write(w)
		return
	}

	id := recordIDFromRequest(r)
	if id == "" {
		BadRequestError("Identificador ausente").Write(w)
		return
	}

	if err := s.ledger.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			NotFoundError("Transação não encontrada").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete transaction",
			applog.FieldError, err,
			applog.FieldRecordID, id,
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldOperation, applog.OpDelete)
		InternalServerError("Erro ao excluir transação").Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Transaction deleted",
		applog.FieldRecordID, id,
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpDelete)

	NewHTMXResponse().
		TriggerTransactionsChanged().
		TriggerSuccessNotification("Transação excluída").
		Write(w)
}
