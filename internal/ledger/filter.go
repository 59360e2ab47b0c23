// Package ledger is the aggregation and projection engine: pure, synchronous
// functions that turn raw record collections into the derived views the rest
// of the application displays. Nothing here mutates its inputs, touches I/O,
// or keeps state between calls; every reported sum stays inside a single
// currency unless a function documents otherwise.
package ledger

import "fintrack/internal/core"

// FilterByDate returns the transactions dated within [from, to] inclusive,
// order preserved. A window with from after to selects nothing. Transactions
// with a zero date are excluded.
func FilterByDate(txs []core.Transaction, from, to core.Date) []core.Transaction {
	var out []core.Transaction
	for _, tx := range txs {
		if tx.Date.IsZero() {
			continue
		}
		if tx.Date.Before(from) || tx.Date.After(to) {
			continue
		}
		out = append(out, tx)
	}
	return out
}
