package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in  string
		ok  bool
		key string
	}{
		{"2026-01-05", true, "2026-01"},
		{"2026-12-31", true, "2026-12"},
		{" 2026-03-01 ", true, "2026-03"},
		{"2026-13-01", false, ""},
		{"05/01/2026", false, ""},
		{"", false, ""},
	}
	for i, tc := range cases {
		d, err := ParseDate(tc.in)
		if tc.ok {
			if err != nil {
				t.Fatalf("case %d: expected ok, got %v", i, err)
			}
			if d.MonthKey() != tc.key {
				t.Fatalf("case %d: month key %q, want %q", i, d.MonthKey(), tc.key)
			}
		} else {
			if err == nil {
				t.Fatalf("case %d: expected error", i)
			}
			if !d.IsZero() {
				t.Fatalf("case %d: expected zero date on error", i)
			}
		}
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(2026, 3, 15)
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-03-15"` {
		t.Fatalf("marshal = %s, want \"2026-03-15\"", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.String() != "2026-03-15" {
		t.Fatalf("round trip = %q", back.String())
	}

	b, err = json.Marshal(Date{})
	if err != nil {
		t.Fatalf("marshal zero: %v", err)
	}
	if string(b) != `""` {
		t.Fatalf("zero date marshal = %s, want empty string", b)
	}
	var zero Date
	if err := json.Unmarshal([]byte(`""`), &zero); err != nil {
		t.Fatalf("unmarshal empty: %v", err)
	}
	if !zero.IsZero() {
		t.Fatal("empty string should decode to zero Date")
	}
}

func TestDateOfTruncatesTimeOfDay(t *testing.T) {
	at := time.Date(2026, 3, 15, 23, 59, 58, 0, time.UTC)
	d := DateOf(at)
	if d.String() != "2026-03-15" {
		t.Fatalf("got %q", d.String())
	}
	if !d.Equal(NewDate(2026, 3, 15).Time) {
		t.Fatalf("expected midnight truncation")
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Date:        NewDate(2026, 1, 5),
		Description: "salary",
		Amount:      1000,
		Currency:    USD,
		Category:    Category{Code: "income_salary", Polarity: Income},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Description: "a", Amount: 1, Currency: USD, Category: good.Category}, // zero date
		{Date: good.Date, Description: "", Amount: 1, Currency: USD, Category: good.Category},
		{Date: good.Date, Description: "a", Amount: 0, Currency: USD, Category: good.Category},
		{Date: good.Date, Description: "a", Amount: 1, Currency: "", Category: good.Category},
		{Date: good.Date, Description: "a", Amount: 1, Currency: USD},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestSavingsGoalValidate(t *testing.T) {
	good := SavingsGoal{Name: "emergency fund", TargetAmount: 1000, CurrentAmount: 0, Currency: USD}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	overshoot := good
	overshoot.CurrentAmount = 1500 // exceeding the target is allowed
	if err := overshoot.Validate(); err != nil {
		t.Fatalf("expected ok for overshoot, got %v", err)
	}

	bads := []SavingsGoal{
		{Name: "", TargetAmount: 1, Currency: USD},
		{Name: "a", TargetAmount: 0, Currency: USD},
		{Name: "a", TargetAmount: 1, CurrentAmount: -1, Currency: USD},
		{Name: "a", TargetAmount: 1, MonthlyContribution: -5, Currency: USD},
		{Name: "a", TargetAmount: 1},
	}
	for i, g := range bads {
		if err := g.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestInvestmentValidate(t *testing.T) {
	good := Investment{Name: "unit trust", AssetType: "unit_trust", RiskLevel: "low",
		PrincipalAmount: 500, CurrentValue: 640, Currency: USD, PurchaseDate: NewDate(2025, 6, 1)}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	bad := good
	bad.PrincipalAmount = 0
	if err := bad.Validate(); err == nil {
		t.Fatalf("expected error for zero principal")
	}
}
