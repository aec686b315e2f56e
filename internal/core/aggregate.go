package core

import (
	"fmt"
	"sort"
)

// monthAbbrev holds the pt-BR month abbreviations used for bucket labels.
var monthAbbrev = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// Summary carries the three aggregate totals shown on the dashboard cards.
type Summary struct {
	TotalIncome  Money
	TotalExpense Money
	Balance      Money
}

// Bucket is the aggregated income/expense total for one calendar month.
type Bucket struct {
	Year    int
	Month   int // 1-12
	Label   string // "Jan/24"
	Income  Money
	Expense Money
}

// TotalByType sums the amounts of all transactions of the given type.
// An empty input yields zero.
func TotalByType(txs []Transaction, t TransactionType) Money {
	var cents int64
	for _, tx := range txs {
		if tx.Type == t {
			cents += tx.Amount.Cents
		}
	}
	return Money{Cents: cents}
}

// Balance is total income minus total expense.
func Balance(txs []Transaction) Money {
	return Money{Cents: TotalByType(txs, Income).Cents - TotalByType(txs, Expense).Cents}
}

// Summarize computes the three dashboard totals in one pass.
func Summarize(txs []Transaction) Summary {
	var income, expense int64
	for _, tx := range txs {
		switch tx.Type {
		case Income:
			income += tx.Amount.Cents
		case Expense:
			expense += tx.Amount.Cents
		}
	}
	return Summary{
		TotalIncome:  Money{Cents: income},
		TotalExpense: Money{Cents: expense},
		Balance:      Money{Cents: income - expense},
	}
}

// MonthlyBuckets groups transactions by calendar year-month, summing income
// and expense per bucket. yearFilter and monthFilter restrict the input when
// non-zero (zero matches all). Buckets are ordered chronologically ascending
// and truncated to the most recent 12.
func MonthlyBuckets(txs []Transaction, yearFilter, monthFilter int) []Bucket {
	type key struct{ year, month int }
	sums := make(map[key]*Bucket)

	for _, tx := range txs {
		year := tx.Date.Year()
		month := int(tx.Date.Month())
		if yearFilter != 0 && year != yearFilter {
			continue
		}
		if monthFilter != 0 && month != monthFilter {
			continue
		}
		k := key{year, month}
		b, ok := sums[k]
		if !ok {
			b = &Bucket{
				Year:  year,
				Month: month,
				Label: fmt.Sprintf("%s/%02d", monthAbbrev[month-1], year%100),
			}
			sums[k] = b
		}
		switch tx.Type {
		case Income:
			b.Income.Cents += tx.Amount.Cents
		case Expense:
			b.Expense.Cents += tx.Amount.Cents
		}
	}

	buckets := make([]Bucket, 0, len(sums))
	for _, b := range sums {
		buckets = append(buckets, *b)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Year != buckets[j].Year {
			return buckets[i].Year < buckets[j].Year
		}
		return buckets[i].Month < buckets[j].Month
	})
	if len(buckets) > 12 {
		buckets = buckets[len(buckets)-12:]
	}
	return buckets
}

// IsOverdue reports whether a pending bill's due date has passed relative to
// today. Only pending bills can be overdue; paid or unrecognized statuses
// never are.
func IsOverdue(dueDate Date, status BillStatus) bool {
	if status != Pending {
		return false
	}
	return dueDate.BeforeDay(Today())
}

// Years returns the distinct years present in the transactions, descending.
// It feeds the chart's year filter options.
func Years(txs []Transaction) []int {
	seen := make(map[int]struct{})
	var years []int
	for _, tx := range txs {
		y := tx.Date.Year()
		if _, ok := seen[y]; !ok {
			seen[y] = struct{}{}
			years = append(years, y)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years
}

// SortTransactions returns a copy sorted by date descending, most recent
// first. Ties keep insertion order.
func SortTransactions(txs []Transaction) []Transaction {
	out := append([]Transaction(nil), txs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[j].Date.BeforeDay(out[i].Date)
	})
	return out
}

// SortBills returns a copy sorted by due date ascending.
func SortBills(bills []Bill) []Bill {
	out := append([]Bill(nil), bills...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.BeforeDay(out[j].DueDate)
	})
	return out
}

// PartitionBills splits bills into pending and paid groups, each sorted by
// due date ascending.
func PartitionBills(bills []Bill) (pending, paid []Bill) {
	for _, b := range SortBills(bills) {
		if b.Status == Paid {
			paid = append(paid, b)
		} else {
			pending = append(pending, b)
		}
	}
	return pending, paid
}
