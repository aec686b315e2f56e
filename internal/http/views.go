package http

import (
	"fmt"
	"strconv"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
)

// View models handed to the templates. All money is preformatted so the
// templates stay free of logic.
type (
	summaryView struct {
		TotalIncome     string
		TotalExpense    string
		Balance         string
		BalanceNegative bool
	}

	transactionRow struct {
		ID          string
		Description string
		Date        string
		Amount      string
		IsIncome    bool
	}

	transactionListView struct {
		Rows []transactionRow
	}

	billRow struct {
		ID      string
		Name    string
		DueDate string
		Amount  string
		Overdue bool
	}

	billsListView struct {
		Pending []billRow
		Paid    []billRow
		Empty   bool
	}

	monthOption struct {
		Value string
		Label string
	}

	chartSectionView struct {
		Years         []int
		Months        []monthOption
		SelectedYear  string // "all" or "2024"
		SelectedMonth string // "all" or "1".."12"
		Filtered      bool
		HasData       bool
		ImageSrc      string
	}

	indexView struct {
		Today        string
		Summary      summaryView
		Chart        chartSectionView
		Transactions transactionListView
		Bills        billsListView
	}
)

// monthOptions lists the month filter choices in pt-BR.
var monthOptions = []monthOption{
	{"1", "Janeiro"}, {"2", "Fevereiro"}, {"3", "Março"}, {"4", "Abril"},
	{"5", "Maio"}, {"6", "Junho"}, {"7", "Julho"}, {"8", "Agosto"},
	{"9", "Setembro"}, {"10", "Outubro"}, {"11", "Novembro"}, {"12", "Dezembro"},
}

func buildSummaryView(s core.Summary) summaryView {
	return summaryView{
		TotalIncome:     s.TotalIncome.BRL(),
		TotalExpense:    s.TotalExpense.BRL(),
		Balance:         s.Balance.BRL(),
		BalanceNegative: s.Balance.Cents < 0,
	}
}

func buildTransactionListView(txs []core.Transaction) transactionListView {
	sorted := core.SortTransactions(txs)
	view := transactionListView{Rows: make([]transactionRow, len(sorted))}
	for i, t := range sorted {
		view.Rows[i] = transactionRow{
			ID:          t.ID,
			Description: t.Description,
			Date:        t.Date.BR(),
			Amount:      t.Amount.BRL(),
			IsIncome:    t.Type == core.Income,
		}
	}
	return view
}

func buildBillsListView(bills []core.Bill) billsListView {
	pending, paid := core.PartitionBills(bills)
	view := billsListView{Empty: len(bills) == 0}
	for _, b := range pending {
		view.Pending = append(view.Pending, billRow{
			ID:      b.ID,
			Name:    b.Name,
			DueDate: b.DueDate.BR(),
			Amount:  b.Amount.BRL(),
			Overdue: core.IsOverdue(b.DueDate, b.Status),
		})
	}
	for _, b := range paid {
		view.Paid = append(view.Paid, billRow{
			ID:      b.ID,
			Name:    b.Name,
			DueDate: b.DueDate.BR(),
			Amount:  b.Amount.BRL(),
		})
	}
	return view
}

func buildChartSectionView(txs []core.Transaction, yearFilter, monthFilter int) chartSectionView {
	view := chartSectionView{
		Years:         core.Years(txs),
		Months:        monthOptions,
		SelectedYear:  "all",
		SelectedMonth: "all",
		Filtered:      yearFilter != 0 || monthFilter != 0,
	}
	if yearFilter != 0 {
		view.SelectedYear = strconv.Itoa(yearFilter)
	}
	if monthFilter != 0 {
		view.SelectedMonth = strconv.Itoa(monthFilter)
	}

	buckets := core.MonthlyBuckets(txs, yearFilter, monthFilter)
	view.HasData = len(buckets) > 0
	if view.HasData {
		view.ImageSrc = fmt.Sprintf("/chart.png?year=%s&month=%s", view.SelectedYear, view.SelectedMonth)
	}
	return view
}
