package storage

import (
	"encoding/json"
	"fmt"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
)

// Wire shapes for the persisted JSON arrays. Amounts are stored as integer
// centavos so that decode(encode(x)) == x holds exactly.
type (
	transactionRecord struct {
		ID          string    `json:"id"`
		Description string    `json:"description"`
		AmountCents int64     `json:"amount_cents"`
		Date        core.Date `json:"date"`
		Type        string    `json:"type"`
	}

	billRecord struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		AmountCents int64     `json:"amount_cents"`
		DueDate     core.Date `json:"due_date"`
		Status      string    `json:"status"`
	}
)

func encodeTransactions(txs []core.Transaction) ([]byte, error) {
	records := make([]transactionRecord, len(txs))
	for i, t := range txs {
		records[i] = transactionRecord{
			ID:          t.ID,
			Description: t.Description,
			AmountCents: t.Amount.Cents,
			Date:        t.Date,
			Type:        string(t.Type),
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode transactions: %w", err)
	}
	return data, nil
}

func decodeTransactions(data []byte) ([]core.Transaction, error) {
	var records []transactionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	txs := make([]core.Transaction, len(records))
	for i, r := range records {
		txs[i] = core.Transaction{
			ID:          r.ID,
			Description: r.Description,
			Amount:      core.Money{Cents: r.AmountCents},
			Date:        r.Date,
			Type:        core.TransactionType(r.Type),
		}
	}
	return txs, nil
}

func encodeBills(bills []core.Bill) ([]byte, error) {
	records := make([]billRecord, len(bills))
	for i, b := range bills {
		records[i] = billRecord{
			ID:          b.ID,
			Name:        b.Name,
			AmountCents: b.Amount.Cents,
			DueDate:     b.DueDate,
			Status:      string(b.Status),
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("encode bills: %w", err)
	}
	return data, nil
}

func decodeBills(data []byte) ([]core.Bill, error) {
	var records []billRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode bills: %w", err)
	}
	bills := make([]core.Bill, len(records))
	for i, r := range records {
		bills[i] = core.Bill{
			ID:      r.ID,
			Name:    r.Name,
			Amount:  core.Money{Cents: r.AmountCents},
			DueDate: r.DueDate,
			Status:  core.BillStatus(r.Status),
		}
	}
	return bills, nil
}
