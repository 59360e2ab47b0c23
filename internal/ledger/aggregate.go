package ledger

import "fintrack/internal/core"

// The windowed aggregates below take an optional currency filter. An empty
// currency includes every record; a set currency excludes records in any
// other currency from the sum entirely, it never converts them.

// TotalIncome sums income-category transaction amounts inside the window.
func TotalIncome(txs []core.Transaction, from, to core.Date, currency core.CurrencyCode) float64 {
	return sumByPolarity(txs, from, to, currency, core.Income)
}

// TotalExpenses sums expense-category transaction amounts inside the window.
func TotalExpenses(txs []core.Transaction, from, to core.Date, currency core.CurrencyCode) float64 {
	return sumByPolarity(txs, from, to, currency, core.Expense)
}

// NetCashflow is income minus expenses inside the window.
func NetCashflow(txs []core.Transaction, from, to core.Date, currency core.CurrencyCode) float64 {
	return TotalIncome(txs, from, to, currency) - TotalExpenses(txs, from, to, currency)
}

func sumByPolarity(txs []core.Transaction, from, to core.Date, currency core.CurrencyCode, polarity core.Polarity) float64 {
	var total float64
	for _, tx := range FilterByDate(txs, from, to) {
		if tx.Category.Polarity != polarity {
			continue
		}
		if currency != "" && tx.Currency != currency {
			continue
		}
		total += tx.Amount
	}
	return total
}

// TotalInvestmentValue sums the current value of the investments.
func TotalInvestmentValue(investments []core.Investment, currency core.CurrencyCode) float64 {
	var total float64
	for _, inv := range investments {
		if currency != "" && inv.Currency != currency {
			continue
		}
		total += inv.CurrentValue
	}
	return total
}

// TotalGainLoss sums currentValue minus principal across the investments.
func TotalGainLoss(investments []core.Investment, currency core.CurrencyCode) float64 {
	var total float64
	for _, inv := range investments {
		if currency != "" && inv.Currency != currency {
			continue
		}
		total += inv.CurrentValue - inv.PrincipalAmount
	}
	return total
}
