package ledger

import (
	"testing"

	"fintrack/internal/core"
)

func TestSummarizeByCategory(t *testing.T) {
	txs := []core.Transaction{
		tx("2026-01-05", "expense_food", 200, core.USD),
		tx("2026-01-07", "expense_transport", 40, core.USD),
		tx("2026-01-09", "expense_food", 55.50, core.USD),
		tx("2026-01-11", "income_salary", 1000, core.USD),
	}

	got := SummarizeByCategory(txs, core.Expense)
	want := []CategorySummary{
		{Category: "expense_food", Total: 255.50},
		{Category: "expense_transport", Total: 40},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d categories, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entry %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSummarizeByCategoryNoZeroEntries(t *testing.T) {
	txs := []core.Transaction{tx("2026-01-05", "income_salary", 1000, core.USD)}
	if got := SummarizeByCategory(txs, core.Expense); len(got) != 0 {
		t.Fatalf("expected no expense categories, got %+v", got)
	}
}

func TestCategoryConservation(t *testing.T) {
	txs := []core.Transaction{
		tx("2026-01-05", "expense_food", 200, core.USD),
		tx("2026-02-07", "expense_transport", 40, core.USD),
		tx("2026-02-09", "expense_food", 55.5, core.USD),
		tx("2026-03-09", "expense_other", 1.25, core.USD),
	}
	var acrossCategories float64
	for _, c := range SummarizeByCategory(txs, core.Expense) {
		acrossCategories += c.Total
	}
	want := TotalExpenses(txs, core.NewDate(2026, 1, 1), core.NewDate(2026, 12, 31), "")
	if acrossCategories != want {
		t.Fatalf("category sum %v, aggregate %v", acrossCategories, want)
	}
}

func TestSummarizeByCategoryStableOrder(t *testing.T) {
	txs := []core.Transaction{
		tx("2026-01-05", "expense_transport", 10, core.USD),
		tx("2026-01-06", "expense_food", 20, core.USD),
		tx("2026-01-07", "expense_transport", 30, core.USD),
	}
	first := SummarizeByCategory(txs, core.Expense)
	second := SummarizeByCategory(txs, core.Expense)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("output not stable across calls: %+v vs %+v", first, second)
		}
	}
	if first[0].Category != "expense_transport" {
		t.Fatalf("expected first-seen order, got %+v", first)
	}
}
