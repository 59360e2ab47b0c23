package services

import (
	"context"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

// GoalView pairs a goal with its derived progress figures.
type GoalView struct {
	Goal            core.SavingsGoal `json:"goal"`
	Progress        float64          `json:"progress"`
	Completed       bool             `json:"completed"`
	MonthsRemaining *int             `json:"monthsRemaining"`
}

// Dashboard is the aggregate read model served to clients. Windowed figures
// cover the requested range and currency; the net worth timeline spans the
// whole ledger, matching how the product has always reported it.
type Dashboard struct {
	From     string            `json:"from"`
	To       string            `json:"to"`
	Currency core.CurrencyCode `json:"currency,omitempty"`

	Monthly            []ledger.MonthlyReport   `json:"monthly"`
	IncomeByCategory   []ledger.CategorySummary `json:"incomeByCategory"`
	ExpensesByCategory []ledger.CategorySummary `json:"expensesByCategory"`
	NetWorth           []ledger.NetWorthPoint   `json:"netWorth"`
	Goals              []GoalView               `json:"goals"`

	TotalIncome        float64 `json:"totalIncome"`
	TotalExpenses      float64 `json:"totalExpenses"`
	NetCashflow        float64 `json:"netCashflow"`
	AvgMonthlyIn       float64 `json:"avgMonthlyIncome"`
	AvgMonthlyOut      float64 `json:"avgMonthlyExpenses"`
	InvestmentValue    float64 `json:"investmentValue"`
	InvestmentGainLoss float64 `json:"investmentGainLoss"`
}

// Dashboard computes every report view in one pass over a snapshot.
func (s *LedgerService) Dashboard(ctx context.Context, window Window, currency core.CurrencyCode) (Dashboard, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	windowed := ledger.FilterByDate(filterByCurrency(snap.Transactions, currency), window.From, window.To)

	forecasts := ledger.ForecastGoals(snap.Goals)
	goals := make([]GoalView, len(snap.Goals))
	for i, g := range snap.Goals {
		goals[i] = GoalView{
			Goal:            g,
			Progress:        ledger.Progress(g),
			Completed:       ledger.Completed(g),
			MonthsRemaining: forecasts[i].MonthsRemaining,
		}
	}

	return Dashboard{
		From:     window.From.String(),
		To:       window.To.String(),
		Currency: currency,

		Monthly:            ledger.GenerateMonthlyReport(windowed),
		IncomeByCategory:   ledger.SummarizeByCategory(windowed, core.Income),
		ExpensesByCategory: ledger.SummarizeByCategory(windowed, core.Expense),
		NetWorth:           ledger.NetWorthTimeline(snap.Transactions, snap.Goals, snap.Investments),
		Goals:              goals,

		TotalIncome:        ledger.TotalIncome(snap.Transactions, window.From, window.To, currency),
		TotalExpenses:      ledger.TotalExpenses(snap.Transactions, window.From, window.To, currency),
		NetCashflow:        ledger.NetCashflow(snap.Transactions, window.From, window.To, currency),
		AvgMonthlyIn:       ledger.AverageMonthly(windowed, core.Income),
		AvgMonthlyOut:      ledger.AverageMonthly(windowed, core.Expense),
		InvestmentValue:    ledger.TotalInvestmentValue(snap.Investments, currency),
		InvestmentGainLoss: ledger.TotalGainLoss(snap.Investments, currency),
	}, nil
}
