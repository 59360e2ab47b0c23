package ledger

import (
	"sort"

	"fintrack/internal/core"
)

// MonthlyReport holds the income and expense totals for one calendar month.
type MonthlyReport struct {
	Month   string  `json:"month"` // "2006-01"
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// GenerateMonthlyReport groups transactions into calendar-month buckets and
// totals each side. Only months with at least one transaction appear; the
// result is sorted ascending by month key. Transactions with a zero date are
// skipped.
func GenerateMonthlyReport(txs []core.Transaction) []MonthlyReport {
	buckets := make(map[string]*MonthlyReport)
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		key := tx.Date.MonthKey()
		entry, ok := buckets[key]
		if !ok {
			entry = &MonthlyReport{Month: key}
			buckets[key] = entry
		}
		switch tx.Category.Polarity {
		case core.Income:
			entry.Income += tx.Amount
		case core.Expense:
			entry.Expense += tx.Amount
		}
	}

	out := make([]MonthlyReport, 0, len(buckets))
	for _, entry := range buckets {
		out = append(out, *entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

// AverageMonthly returns the mean total per active month for one polarity:
// the polarity's overall total divided by the number of distinct months that
// contain a matching transaction. Zero when nothing matches.
func AverageMonthly(txs []core.Transaction, polarity core.Polarity) float64 {
	months := make(map[string]struct{})
	var total float64
	for _, tx := range txs {
		if tx.Date.IsZero() || tx.Category.Polarity != polarity {
			continue
		}
		months[tx.Date.MonthKey()] = struct{}{}
		total += tx.Amount
	}
	if len(months) == 0 {
		return 0
	}
	return total / float64(len(months))
}
