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

func (s *Server) handleCreateBill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", applog.FieldError, err, applog.FieldMethod, r.Method, applog.FieldPath, r.URL.Path)
		BadRequestError("Formato de requisição inválido").Write(w)
		return
	}

	name := sanitizeInput(r.Form.Get("name"))
	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	dueStr := strings.TrimSpace(r.Form.Get("due_date"))

	cents, err := core.ParseDecimalToCents(amountStr)
	if err != nil {
		UnprocessableEntityError("Valor inválido").Write(w)
		return
	}

	due, err := core.ParseDate(dueStr)
	if err != nil {
		UnprocessableEntityError("Data de vencimento inválida").Write(w)
		return
	}

	candidate := core.Bill{
		Name:    name,
		Amount:  core.Money{Cents: cents},
		DueDate: due,
		Status:  core.Pending,
	}
	if err := candidate.Validate(); err != nil {
		UnprocessableEntityError("Dados inválidos: " + err.Error()).Write(w)
		return
	}

	bill, err := s.ledger.AddBill(r.Context(), ledger.BillInput{
		Name:    candidate.Name,
		Amount:  candidate.Amount,
		DueDate: candidate.DueDate,
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save bill",
			applog.FieldError, err,
			applog.FieldDescription, name,
			applog.FieldAmountCents, cents,
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldOperation, applog.OpCreate)
		InternalServerError("Erro ao salvar conta").Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Bill created",
		applog.FieldRecordID, bill.ID,
		applog.FieldDescription, bill.Name,
		applog.FieldAmountCents, bill.Amount.Cents,
		applog.FieldDueDate, bill.DueDate.ISO(),
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpCreate)

	successMsg := fmt.Sprintf("Conta registrada: %s (%s)",
		template.HTMLEscapeString(bill.Name), bill.Amount.BRL())

	NewHTMXResponse().
		TriggerFormReset().
		TriggerBillsChanged().
		TriggerSuccessNotification(successMsg).
		Write(w)
}

func (s *Server) handleToggleBill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}

	id := recordIDFromRequest(r)
	if id == "" {
		BadRequestError("Identificador ausente").Write(w)
		return
	}

	bill, err := s.ledger.ToggleBill(r.Context(), id)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			NotFoundError("Conta não encontrada").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Failed to toggle bill",
			applog.FieldError, err,
			applog.FieldRecordID, id,
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldOperation, applog.OpToggle)
		InternalServerError("Erro ao atualizar conta").Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Bill status toggled",
		applog.FieldRecordID, bill.ID,
		applog.FieldBillStatus, string(bill.Status),
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpToggle)

	msg := "Conta marcada como paga"
	if bill.Status == core.Pending {
		msg = "Conta marcada como pendente"
	}

	NewHTMXResponse().
		TriggerBillsChanged().
		TriggerSuccessNotification(msg).
		Write(w)
}

func (s *Server) handleDeleteBill(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete && r.Method != http.MethodPost {
		MethodNotAllowedError("DELETE, POST").Write(w)
		return
	}

	id := recordIDFromRequest(r)
	if id == "" {
		BadRequestError("Identificador ausente").Write(w)
		return
	}

	if err := s.ledger.DeleteBill(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			NotFoundError("Conta não encontrada").Write(w)
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete bill",
			applog.FieldError, err,
			applog.FieldRecordID, id,
			applog.FieldComponent, applog.ComponentHTTP,
			applog.FieldOperation, applog.OpDelete)
		InternalServerError("Erro ao excluir conta").Write(w)
		return
	}

	slog.InfoContext(r.Context(), "Bill deleted",
		applog.FieldRecordID, id,
		applog.FieldComponent, applog.ComponentHTTP,
		applog.FieldOperation, applog.OpDelete)

	NewHTMXResponse().
		TriggerBillsChanged().
		TriggerSuccessNotification("Conta excluída").
		Write(w)
}
