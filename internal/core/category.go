package core

import (
	"errors"
	"strings"
)

// Polarity says whether a category represents money received or money spent.
type Polarity string

const (
	Income  Polarity = "income"
	Expense Polarity = "expense"
)

// Category pairs a category code with its polarity. The polarity is resolved
// once when the record enters the system; reporting reads the tag and never
// re-derives it from the code.
type Category struct {
	Code     string   `json:"code"`
	Polarity Polarity `json:"polarity"`
}

var ErrUnknownCategory = errors.New("unknown category code")

// KnownCategories lists the category codes the transaction form offers.
// Free-form codes are accepted as long as they carry a polarity prefix.
var KnownCategories = []string{
	"income_salary",
	"income_business",
	"income_investment",
	"income_other",
	"expense_food",
	"expense_transport",
	"expense_housing",
	"expense_utilities",
	"expense_healthcare",
	"expense_education",
	"expense_entertainment",
	"expense_other",
}

// ResolveCategory maps a raw category code to a Category with an explicit
// polarity tag, based on its "income_" or "expense_" prefix.
func ResolveCategory(code string) (Category, error) {
	code = strings.TrimSpace(code)
	switch {
	case strings.HasPrefix(code, "income_"):
		return Category{Code: code, Polarity: Income}, nil
	case strings.HasPrefix(code, "expense_"):
		return Category{Code: code, Polarity: Expense}, nil
	default:
		return Category{}, ErrUnknownCategory
	}
}

func (p Polarity) Valid() bool {
	return p == Income || p == Expense
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Code) == "" {
		return ErrUnknownCategory
	}
	if !c.Polarity.Valid() {
		return ErrUnknownCategory
	}
	return nil
}
