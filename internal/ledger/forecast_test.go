package ledger

import (
	"testing"

	"fintrack/internal/core"
)

func TestForecastGoals(t *testing.T) {
	cases := []struct {
		name   string
		goal   core.SavingsGoal
		months int // -1 means no forecast
	}{
		{"exact division", core.SavingsGoal{ID: "g", TargetAmount: 1000, CurrentAmount: 400, MonthlyContribution: 150}, 4},
		{"rounds up", core.SavingsGoal{ID: "g", TargetAmount: 1000, CurrentAmount: 0, MonthlyContribution: 300}, 4},
		{"fractional month still one", core.SavingsGoal{ID: "g", TargetAmount: 100, CurrentAmount: 99, MonthlyContribution: 500}, 1},
		{"already met", core.SavingsGoal{ID: "g", TargetAmount: 1000, CurrentAmount: 1000, MonthlyContribution: 150}, -1},
		{"overshot", core.SavingsGoal{ID: "g", TargetAmount: 1000, CurrentAmount: 1200, MonthlyContribution: 150}, -1},
		{"no contribution", core.SavingsGoal{ID: "g", TargetAmount: 1000, CurrentAmount: 400}, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ForecastGoals([]core.SavingsGoal{tc.goal})
			if len(got) != 1 {
				t.Fatalf("expected 1 forecast, got %d", len(got))
			}
			f := got[0]
			if f.GoalID != "g" {
				t.Fatalf("forecast references %q, want %q", f.GoalID, "g")
			}
			if tc.months < 0 {
				if f.MonthsRemaining != nil {
					t.Fatalf("expected no forecast, got %d", *f.MonthsRemaining)
				}
				return
			}
			if f.MonthsRemaining == nil {
				t.Fatalf("expected %d months, got none", tc.months)
			}
			if *f.MonthsRemaining != tc.months {
				t.Fatalf("months = %d, want %d", *f.MonthsRemaining, tc.months)
			}
		})
	}
}

func TestForecastGoalsPreservesInputOrder(t *testing.T) {
	goals := []core.SavingsGoal{
		{ID: "b", TargetAmount: 100, MonthlyContribution: 10},
		{ID: "a", TargetAmount: 100, MonthlyContribution: 10},
	}
	got := ForecastGoals(goals)
	if got[0].GoalID != "b" || got[1].GoalID != "a" {
		t.Fatalf("input order not preserved: %+v", got)
	}
}
