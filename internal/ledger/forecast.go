package ledger

import (
	"math"

	"fintrack/internal/core"
)

// SavingsForecast estimates how many whole months a goal needs at its current
// contribution rate. MonthsRemaining is nil when no forecast is possible:
// the goal is already met or overshot, or it has no positive monthly
// contribution.
type SavingsForecast struct {
	GoalID          string `json:"goalId"`
	MonthsRemaining *int   `json:"monthsRemaining"`
}

// ForecastGoals produces one forecast per goal, in input order.
func ForecastGoals(goals []core.SavingsGoal) []SavingsForecast {
	out := make([]SavingsForecast, 0, len(goals))
	for _, g := range goals {
		remaining := g.TargetAmount - g.CurrentAmount
		if remaining <= 0 || g.MonthlyContribution <= 0 {
			out = append(out, SavingsForecast{GoalID: g.ID})
			continue
		}
		months := int(math.Ceil(remaining / g.MonthlyContribution))
		out = append(out, SavingsForecast{GoalID: g.ID, MonthsRemaining: &months})
	}
	return out
}
