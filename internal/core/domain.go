package core

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

type (
	// CurrencyCode identifies the currency a monetary amount is recorded in.
	// Amounts in different currencies are never combined.
	CurrencyCode string

	// PaymentMethod is an opaque tag carried on transactions; reporting
	// never inspects it.
	PaymentMethod string

	// Date is a calendar day (UTC midnight, no time-of-day semantics).
	// A zero Date marks a record whose date could not be determined;
	// reporting skips such records silently.
	Date struct {
		time.Time
	}

	Transaction struct {
		ID            string        `json:"id"`
		Date          Date          `json:"date"`
		Description   string        `json:"description"`
		Amount        float64       `json:"amount"` // non-negative magnitude; sign comes from the category polarity
		Currency      CurrencyCode  `json:"currency"`
		Category      Category      `json:"category"`
		PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`
		Notes         string        `json:"notes,omitempty"`
		CreatedAt     time.Time     `json:"createdAt"`
		UpdatedAt     time.Time     `json:"updatedAt"`
	}

	SavingsGoal struct {
		ID                  string       `json:"id"`
		Name                string       `json:"name"`
		TargetAmount        float64      `json:"targetAmount"`
		CurrentAmount       float64      `json:"currentAmount"` // may exceed the target
		Currency            CurrencyCode `json:"currency"`
		Deadline            Date         `json:"deadline"`            // zero when no deadline is set
		MonthlyContribution float64      `json:"monthlyContribution"` // 0 when no contribution rate is set
		CreatedAt           time.Time    `json:"createdAt"`
		UpdatedAt           time.Time    `json:"updatedAt"`
	}

	Investment struct {
		ID              string       `json:"id"`
		Name            string       `json:"name"`
		AssetType       string       `json:"assetType,omitempty"`
		RiskLevel       string       `json:"riskLevel,omitempty"`
		PrincipalAmount float64      `json:"principalAmount"`
		CurrentValue    float64      `json:"currentValue"`
		Currency        CurrencyCode `json:"currency"`
		PurchaseDate    Date         `json:"purchaseDate"`
		CreatedAt       time.Time    `json:"createdAt"`
		UpdatedAt       time.Time    `json:"updatedAt"`
	}
)

const (
	USD CurrencyCode = "USD"
	ZWL CurrencyCode = "ZWL"
	ZIG CurrencyCode = "ZIG"
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidTarget    = errors.New("invalid target amount")
	ErrEmptyName        = errors.New("empty name")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyCurrency    = errors.New("empty currency code")
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates t to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses a "2006-01-02" calendar date. The zero Date and an error
// are returned for anything else.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// MonthKey returns the lexicographically sortable year+month key, e.g. "2026-03".
func (d Date) MonthKey() string {
	return d.Format("2006-01")
}

// Before reports whether d falls on an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// MarshalJSON encodes the calendar day as "2006-01-02"; a zero Date
// becomes the empty string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrInvalidDate
	}
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if t.Amount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(string(t.Currency)) == "" {
		return ErrEmptyCurrency
	}
	return t.Category.Validate()
}

func (g SavingsGoal) Validate() error {
	if len(strings.TrimSpace(g.Name)) == 0 {
		return ErrEmptyName
	}
	if g.TargetAmount <= 0 {
		return ErrInvalidTarget
	}
	if g.CurrentAmount < 0 {
		return ErrInvalidAmount
	}
	if g.MonthlyContribution < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(string(g.Currency)) == "" {
		return ErrEmptyCurrency
	}
	return nil
}

func (i Investment) Validate() error {
	if len(strings.TrimSpace(i.Name)) == 0 {
		return ErrEmptyName
	}
	if i.PrincipalAmount <= 0 {
		return ErrInvalidAmount
	}
	if i.CurrentValue < 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(string(i.Currency)) == "" {
		return ErrEmptyCurrency
	}
	return nil
}
