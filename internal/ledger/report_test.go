package ledger

import (
	"testing"

	"fintrack/internal/core"
)

func TestGenerateMonthlyReportScenario(t *testing.T) {
	txs := []core.Transaction{
		tx("2026-01-05", "income_salary", 1000, core.USD),
		tx("2026-01-10", "expense_food", 200, core.USD),
		tx("2026-02-01", "expense_food", 150, core.USD),
	}

	got := GenerateMonthlyReport(txs)
	want := []MonthlyReport{
		{Month: "2026-01", Income: 1000, Expense: 200},
		{Month: "2026-02", Income: 0, Expense: 150},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGenerateMonthlyReportSortedAndSparse(t *testing.T) {
	// Out-of-order input, a gap in February, and an undated transaction.
	txs := []core.Transaction{
		tx("2026-03-09", "expense_food", 30, core.USD),
		tx("2025-11-02", "income_other", 500, core.USD),
		undated("expense_food", 999),
		tx("2026-01-20", "expense_transport", 12, core.USD),
	}

	got := GenerateMonthlyReport(txs)
	keys := []string{"2025-11", "2026-01", "2026-03"}
	if len(got) != len(keys) {
		t.Fatalf("expected %d buckets, got %d: %+v", len(keys), len(got), got)
	}
	for i, key := range keys {
		if got[i].Month != key {
			t.Fatalf("bucket %d: month %q, want %q", i, got[i].Month, key)
		}
	}
}

func TestMonthlyReportConservation(t *testing.T) {
	txs := []core.Transaction{
		tx("2026-01-05", "income_salary", 1000, core.USD),
		tx("2026-01-18", "income_business", 250.25, core.USD),
		tx("2026-02-03", "income_other", 99.75, core.USD),
		tx("2026-01-10", "expense_food", 200, core.USD),
		tx("2026-03-01", "expense_housing", 450, core.USD),
	}

	var incomeAcross, expenseAcross float64
	for _, b := range GenerateMonthlyReport(txs) {
		incomeAcross += b.Income
		expenseAcross += b.Expense
	}

	from, to := core.NewDate(2025, 1, 1), core.NewDate(2027, 1, 1)
	if want := TotalIncome(txs, from, to, ""); incomeAcross != want {
		t.Fatalf("bucket income sum %v, aggregate %v", incomeAcross, want)
	}
	if want := TotalExpenses(txs, from, to, ""); expenseAcross != want {
		t.Fatalf("bucket expense sum %v, aggregate %v", expenseAcross, want)
	}
}

func TestGenerateMonthlyReportEmpty(t *testing.T) {
	if got := GenerateMonthlyReport(nil); len(got) != 0 {
		t.Fatalf("expected no buckets, got %+v", got)
	}
}

func TestAverageMonthly(t *testing.T) {
	txs := []core.Transaction{
		tx("2026-01-05", "income_salary", 1000, core.USD),
		tx("2026-02-05", "income_salary", 1400, core.USD),
		tx("2026-02-10", "expense_food", 50, core.USD),
	}
	if got := AverageMonthly(txs, core.Income); got != 1200 {
		t.Fatalf("income average = %v, want 1200", got)
	}
	if got := AverageMonthly(txs, core.Expense); got != 50 {
		t.Fatalf("expense average = %v, want 50", got)
	}
	if got := AverageMonthly(nil, core.Income); got != 0 {
		t.Fatalf("empty input average = %v, want 0", got)
	}
}
