package ledger

import (
	"sort"

	"fintrack/internal/core"
)

// NetWorthPoint is one month on the net-worth timeline.
type NetWorthPoint struct {
	Month string  `json:"month"`
	Value float64 `json:"value"`
}

// NetWorthTimeline builds a per-month series from the transactions' net flow
// (income minus expense, signed) plus two point-in-time constants: the sum of
// current savings-goal amounts and the sum of current investment values.
//
// Every point carries the same constant offset on top of that month's own
// flow; the series is not a cumulative running balance. The savings and
// investment totals are summed across all currencies. Both behaviors are
// kept intact from the product's existing reports.
func NetWorthTimeline(txs []core.Transaction, goals []core.SavingsGoal, investments []core.Investment) []NetWorthPoint {
	flows := make(map[string]float64)
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		delta := tx.Amount
		if tx.Category.Polarity == core.Expense {
			delta = -tx.Amount
		}
		flows[tx.Date.MonthKey()] += delta
	}

	var savingsTotal float64
	for _, g := range goals {
		savingsTotal += g.CurrentAmount
	}
	var investmentsTotal float64
	for _, inv := range investments {
		investmentsTotal += inv.CurrentValue
	}

	out := make([]NetWorthPoint, 0, len(flows))
	for month, flow := range flows {
		out = append(out, NetWorthPoint{Month: month, Value: flow + savingsTotal + investmentsTotal})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}
