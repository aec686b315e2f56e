package core

import (
	"testing"
	"time"
)

func tx(typ TransactionType, cents int64, iso string) Transaction {
	d, err := ParseDate(iso)
	if err != nil {
		panic(err)
	}
	return Transaction{Description: "t", Amount: Money{Cents: cents}, Date: d, Type: typ}
}

func TestSummarize(t *testing.T) {
	txs := []Transaction{
		tx(Income, 100000, "2024-01-15"),
		tx(Expense, 30000, "2024-01-20"),
		tx(Income, 50000, "2024-02-01"),
	}
	s := Summarize(txs)
	if s.TotalIncome.Cents != 150000 {
		t.Fatalf("total income expected 150000, got %d", s.TotalIncome.Cents)
	}
	if s.TotalExpense.Cents != 30000 {
		t.Fatalf("total expense expected 30000, got %d", s.TotalExpense.Cents)
	}
	if s.Balance.Cents != 120000 {
		t.Fatalf("balance expected 120000, got %d", s.Balance.Cents)
	}

	// Balance identity holds for the per-type helpers as well.
	if Balance(txs).Cents != TotalByType(txs, Income).Cents-TotalByType(txs, Expense).Cents {
		t.Fatalf("balance identity violated")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.TotalIncome.Cents != 0 || s.TotalExpense.Cents != 0 || s.Balance.Cents != 0 {
		t.Fatalf("empty set should yield zero totals, got %+v", s)
	}
}

func TestMonthlyBuckets(t *testing.T) {
	txs := []Transaction{
		tx(Income, 100000, "2024-01-15"),
		tx(Expense, 30000, "2024-01-20"),
		tx(Income, 50000, "2024-02-01"),
	}
	buckets := MonthlyBuckets(txs, 0, 0)
	if len(buckets) != 2 {
		t.Fatalf("expected 2 buckets, got %d", len(buckets))
	}
	if buckets[0].Label != "Jan/24" || buckets[0].Income.Cents != 100000 || buckets[0].Expense.Cents != 30000 {
		t.Fatalf("unexpected first bucket %+v", buckets[0])
	}
	if buckets[1].Label != "Fev/24" || buckets[1].Income.Cents != 50000 || buckets[1].Expense.Cents != 0 {
		t.Fatalf("unexpected second bucket %+v", buckets[1])
	}
}

func TestMonthlyBucketsFilters(t *testing.T) {
	txs := []Transaction{
		tx(Income, 100, "2023-06-01"),
		tx(Income, 200, "2024-06-01"),
		tx(Expense, 300, "2024-07-01"),
	}
	if got := MonthlyBuckets(txs, 2024, 0); len(got) != 2 {
		t.Fatalf("year filter expected 2 buckets, got %d", len(got))
	}
	got := MonthlyBuckets(txs, 2024, 6)
	if len(got) != 1 || got[0].Income.Cents != 200 {
		t.Fatalf("year+month filter expected single Jun/24 bucket, got %+v", got)
	}
	if got := MonthlyBuckets(txs, 0, 6); len(got) != 2 {
		t.Fatalf("month filter expected 2 buckets, got %d", len(got))
	}
	if got := MonthlyBuckets(txs, 2025, 0); len(got) != 0 {
		t.Fatalf("unmatched filter expected no buckets, got %+v", got)
	}
}

func TestMonthlyBucketsTruncatesToTwelve(t *testing.T) {
	var txs []Transaction
	d := NewDate(2023, 1, 10)
	for i := 0; i < 15; i++ {
		txs = append(txs, Transaction{
			Description: "t",
			Amount:      Money{Cents: 100},
			Date:        Date{Time: d.AddDate(0, i, 0)},
			Type:        Income,
		})
	}
	buckets := MonthlyBuckets(txs, 0, 0)
	if len(buckets) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(buckets))
	}
	// Strictly chronological, and the oldest three months were dropped.
	if buckets[0].Label != "Abr/23" {
		t.Fatalf("expected truncation to start at Abr/23, got %s", buckets[0].Label)
	}
	for i := 1; i < len(buckets); i++ {
		prev, cur := buckets[i-1], buckets[i]
		if cur.Year < prev.Year || (cur.Year == prev.Year && cur.Month <= prev.Month) {
			t.Fatalf("buckets not strictly chronological at %d: %+v then %+v", i, prev, cur)
		}
	}
}

func TestIsOverdue(t *testing.T) {
	yesterday := Date{Time: time.Now().AddDate(0, 0, -1)}
	tomorrow := Date{Time: time.Now().AddDate(0, 0, 1)}
	today := Today()

	if !IsOverdue(yesterday, Pending) {
		t.Fatalf("pending bill due yesterday should be overdue")
	}
	if IsOverdue(yesterday, Paid) {
		t.Fatalf("paid bill is never overdue")
	}
	if IsOverdue(today, Pending) {
		t.Fatalf("bill due today is not overdue")
	}
	if IsOverdue(tomorrow, Pending) {
		t.Fatalf("bill due tomorrow is not overdue")
	}
	if IsOverdue(yesterday, BillStatus("garbled")) {
		t.Fatalf("unrecognized status is never overdue")
	}
}

func TestYears(t *testing.T) {
	txs := []Transaction{
		tx(Income, 1, "2022-01-01"),
		tx(Income, 1, "2024-05-01"),
		tx(Expense, 1, "2022-12-31"),
		tx(Expense, 1, "2023-03-03"),
	}
	years := Years(txs)
	if len(years) != 3 || years[0] != 2024 || years[1] != 2023 || years[2] != 2022 {
		t.Fatalf("expected [2024 2023 2022], got %v", years)
	}
	if got := Years(nil); len(got) != 0 {
		t.Fatalf("empty input expected no years, got %v", got)
	}
}

func TestSortTransactions(t *testing.T) {
	txs := []Transaction{
		tx(Income, 1, "2024-01-01"),
		tx(Expense, 2, "2024-03-01"),
		tx(Income, 3, "2024-02-01"),
	}
	sorted := SortTransactions(txs)
	if sorted[0].Amount.Cents != 2 || sorted[1].Amount.Cents != 3 || sorted[2].Amount.Cents != 1 {
		t.Fatalf("expected date-descending order, got %+v", sorted)
	}
	// Input untouched.
	if txs[0].Amount.Cents != 1 {
		t.Fatalf("input slice was mutated")
	}
}

func TestPartitionBills(t *testing.T) {
	bills := []Bill{
		{ID: "a", Name: "Luz", Amount: Money{Cents: 1}, DueDate: NewDate(2024, 3, 10), Status: Paid},
		{ID: "b", Name: "Água", Amount: Money{Cents: 1}, DueDate: NewDate(2024, 2, 5), Status: Pending},
		{ID: "c", Name: "Internet", Amount: Money{Cents: 1}, DueDate: NewDate(2024, 1, 20), Status: Pending},
	}
	pending, paid := PartitionBills(bills)
	if len(pending) != 2 || len(paid) != 1 {
		t.Fatalf("expected 2 pending / 1 paid, got %d/%d", len(pending), len(paid))
	}
	if pending[0].ID != "c" || pending[1].ID != "b" {
		t.Fatalf("pending bills not in due-date ascending order: %+v", pending)
	}
}
