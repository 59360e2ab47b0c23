package ledger

import "fintrack/internal/core"

// CategorySummary is the total recorded against one category.
type CategorySummary struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// SummarizeByCategory sums amounts per category for transactions of one
// polarity, in first-seen order. Categories with no matching transaction do
// not appear.
func SummarizeByCategory(txs []core.Transaction, polarity core.Polarity) []CategorySummary {
	totals := make(map[string]float64)
	var order []string
	for _, tx := range txs {
		if tx.Category.Polarity != polarity {
			continue
		}
		if _, seen := totals[tx.Category.Code]; !seen {
			order = append(order, tx.Category.Code)
		}
		totals[tx.Category.Code] += tx.Amount
	}

	out := make([]CategorySummary, 0, len(order))
	for _, code := range order {
		out = append(out, CategorySummary{Category: code, Total: totals[code]})
	}
	return out
}
