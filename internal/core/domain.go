package core

import (
	"regexp"
	"strings"
	"time"
)

const (
	Expense EntryKind = "expense"
	Income  EntryKind = "income"
)

// EntryDateLayout is the only accepted shape for Record.EntryDate.
const EntryDateLayout = "2006-01-02"

type (
	EntryKind string

	// Account is a registered user. Password is opaque to the store.
	Account struct {
		ID       int64
		Name     string
		Email    string
		Password string
	}

	// Record is a single ledger entry. Negative amounts are expenses,
	// positive amounts are income.
	Record struct {
		ID        int64
		OwnerID   int64
		Amount    Money
		Label     string
		Category  string
		EntryDate string // YYYY-MM-DD
		CreatedAt time.Time
	}

	// Goal is a spending ceiling for one category.
	Goal struct {
		ID       int64
		OwnerID  int64
		Category string
		Target   Money
	}

	// GoalMap maps a category to its spending ceiling.
	GoalMap map[string]Money
)

// Suggested categories offered by the entry forms. The store does not
// constrain categories to these sets.
var (
	ExpenseCategories = []string{"Alimentação", "Saúde", "Transporte", "Lazer", "Outros"}
	IncomeCategories  = []string{"Salário", "Renda Extra", "Outros"}
)

var entryDateShape = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseEntryKind accepts the english and portuguese spellings used by the forms.
func ParseEntryKind(s string) (EntryKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense", "gasto":
		return Expense, nil
	case "income", "receita":
		return Income, nil
	default:
		return "", ErrInvalidKind
	}
}

// Signed applies the kind's sign convention to a magnitude.
func (k EntryKind) Signed(m Money) Money {
	if k == Expense {
		return m.Abs().Neg()
	}
	return m.Abs()
}

// Categories returns the suggested categories for the kind.
func (k EntryKind) Categories() []string {
	if k == Income {
		return IncomeCategories
	}
	return ExpenseCategories
}

// ValidateEntryDate checks the YYYY-MM-DD shape only; it does not check
// that the date exists in the calendar.
func ValidateEntryDate(s string) error {
	if !entryDateShape.MatchString(s) {
		return ErrInvalidDate
	}
	return nil
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(a.Email) == "" {
		return ErrEmptyEmail
	}
	if a.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

// Kind reports whether the record is an expense or income entry.
func (r Record) Kind() EntryKind {
	if r.Amount.IsNegative() {
		return Expense
	}
	return Income
}

func (r Record) Validate() error {
	if r.OwnerID <= 0 {
		return ErrInvalidOwnerID
	}
	if r.Amount.IsZero() {
		return ErrZeroAmount
	}
	if strings.TrimSpace(r.Label) == "" {
		return ErrEmptyLabel
	}
	if len(r.Label) > 200 {
		return ErrLabelTooLong
	}
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	return ValidateEntryDate(r.EntryDate)
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Category) == "" {
		return ErrEmptyCategory
	}
	if !g.Target.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
