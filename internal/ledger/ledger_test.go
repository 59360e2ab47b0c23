package ledger

import (
	"fintrack/internal/core"
)

// tx builds a transaction for tests; the polarity is resolved from the
// category code the same way the entry form does it.
func tx(date string, category string, amount float64, currency core.CurrencyCode) core.Transaction {
	d, _ := core.ParseDate(date)
	cat, _ := core.ResolveCategory(category)
	return core.Transaction{
		Date:        d,
		Description: category,
		Amount:      amount,
		Currency:    currency,
		Category:    cat,
	}
}

func undated(category string, amount float64) core.Transaction {
	cat, _ := core.ResolveCategory(category)
	return core.Transaction{Description: category, Amount: amount, Currency: core.USD, Category: cat}
}
