package ledger

import "fintrack/internal/core"

// Progress returns how far along a goal is as a percentage, clamped to
// [0, 100]. A zero target reports 0 rather than dividing by zero.
func Progress(g core.SavingsGoal) float64 {
	if g.TargetAmount == 0 {
		return 0
	}
	pct := g.CurrentAmount / g.TargetAmount * 100
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// Completed reports whether the goal has reached or passed its target.
func Completed(g core.SavingsGoal) bool {
	return g.CurrentAmount >= g.TargetAmount
}
