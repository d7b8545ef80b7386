package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted textual date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var (
	ErrInvalidDate    = errors.New("invalid date")
	ErrEmptyCategory  = errors.New("category must not be empty")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrInvalidKind    = errors.New("invalid transaction type")
)

// Kind defines whether money came in or went out.
type Kind string

const (
	Income  Kind = "Income"
	Expense Kind = "Expense"
)

// ParseKind accepts the literals "Income" and "Expense".
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.TrimSpace(s)); k {
	case Income, Expense:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Transaction is a single dated income or expense entry of the ledger.
type Transaction struct {
	// ID identifies the record for the lifetime of a session. It is not persisted.
	ID       string          `json:"-"`
	Date     time.Time       `json:"date"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Kind     Kind            `json:"type"`
}

// NewTransaction validates raw field values and builds a Transaction.
// All user input and imported rows go through here; nothing downstream re-validates.
func NewTransaction(date, category, amount, kind string) (Transaction, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Transaction{}, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return Transaction{}, ErrEmptyCategory
	}
	amt, err := ParseAmount(amount)
	if err != nil {
		return Transaction{}, err
	}
	k, err := ParseKind(kind)
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{
		ID:       uuid.NewString(),
		Date:     d,
		Category: category,
		Amount:   amt,
		Kind:     k,
	}, nil
}

// ParseDate parses a YYYY-MM-DD date into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q must be in YYYY-MM-DD format", ErrInvalidDate, s)
	}
	return d, nil
}

// ParseAmount parses a currency formatted amount such as "$1,234.50" or "12".
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.TrimLeft(cleaned, "$€£¥")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	amt, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if amt.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNegativeAmount, s)
	}
	return amt, nil
}

// FormatAmount renders an amount with two decimals behind a currency symbol.
func FormatAmount(currency string, amt decimal.Decimal) string {
	return currency + amt.StringFixed(2)
}

// SameValue reports whether two records carry the same date, category, amount and kind.
func (t Transaction) SameValue(other Transaction) bool {
	return t.Date.Equal(other.Date) &&
		t.Category == other.Category &&
		t.Amount.Equal(other.Amount) &&
		t.Kind == other.Kind
}
