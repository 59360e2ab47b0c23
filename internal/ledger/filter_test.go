package ledger

import (
	"testing"

	"fintrack/internal/core"
)

func TestFilterByDateInclusiveBounds(t *testing.T) {
	txs := []core.Transaction{
		tx("2026-01-01", "expense_food", 10, core.USD), // exactly from
		tx("2026-01-15", "expense_food", 20, core.USD),
		tx("2026-01-31", "expense_food", 30, core.USD), // exactly to
		tx("2025-12-31", "expense_food", 40, core.USD), // one day before from
		tx("2026-02-01", "expense_food", 50, core.USD), // one day after to
	}
	from := core.NewDate(2026, 1, 1)
	to := core.NewDate(2026, 1, 31)

	got := FilterByDate(txs, from, to)
	if len(got) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(got))
	}
	if got[0].Amount != 10 || got[1].Amount != 20 || got[2].Amount != 30 {
		t.Fatalf("order not preserved: %+v", got)
	}
}

func TestFilterByDateInvertedWindow(t *testing.T) {
	txs := []core.Transaction{tx("2026-01-15", "expense_food", 20, core.USD)}
	got := FilterByDate(txs, core.NewDate(2026, 2, 1), core.NewDate(2026, 1, 1))
	if len(got) != 0 {
		t.Fatalf("inverted window should select nothing, got %d", len(got))
	}
}

func TestFilterByDateSkipsZeroDates(t *testing.T) {
	txs := []core.Transaction{
		undated("expense_food", 99),
		tx("2026-01-15", "expense_food", 20, core.USD),
	}
	got := FilterByDate(txs, core.NewDate(2026, 1, 1), core.NewDate(2026, 1, 31))
	if len(got) != 1 || got[0].Amount != 20 {
		t.Fatalf("zero-date transaction should be excluded, got %+v", got)
	}
}

func TestFilterByDateDoesNotMutateInput(t *testing.T) {
	txs := []core.Transaction{
		tx("2026-01-15", "expense_food", 20, core.USD),
		tx("2026-03-15", "expense_food", 30, core.USD),
	}
	_ = FilterByDate(txs, core.NewDate(2026, 1, 1), core.NewDate(2026, 1, 31))
	if len(txs) != 2 || txs[1].Amount != 30 {
		t.Fatalf("input slice was mutated: %+v", txs)
	}
}
