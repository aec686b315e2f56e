package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"

	Pending BillStatus = "pending"
	Paid    BillStatus = "paid"
)

type (
	TransactionType string

	BillStatus string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is a single dated income or expense event. Immutable after
	// creation except deletion.
	Transaction struct {
		ID          string
		Description string
		Amount      Money
		Date        Date
		Type        TransactionType
	}

	// Bill is a payable obligation. Status is the only mutable field.
	Bill struct {
		ID      string
		Name    string
		Amount  Money
		DueDate Date
		Status  BillStatus
	}
)

var (
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrEmptyDescription = errors.New("empty description")
	ErrEmptyName        = errors.New("empty name")
	ErrNotFound         = errors.New("record not found")
)

// NewDate creates a Date from year, month, day at UTC midnight.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// Today returns the current calendar day at UTC midnight.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// ISO renders the date as 2006-01-02.
func (d Date) ISO() string {
	return d.Format("2006-01-02")
}

// BR renders the date as 02/01/2006 for display.
func (d Date) BR() string {
	return d.Format("02/01/2006")
}

// MarshalJSON encodes the date as an ISO calendar date with no time component.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.ISO() + `"`), nil
}

// UnmarshalJSON decodes an ISO calendar date.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DayEquals reports whether both dates fall on the same calendar day.
func (d Date) DayEquals(other Date) bool {
	return d.Year() == other.Year() && d.Month() == other.Month() && d.Day() == other.Day()
}

// BeforeDay reports whether d is strictly before other at date precision.
func (d Date) BeforeDay(other Date) bool {
	a := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(other.Year(), other.Month(), other.Day(), 0, 0, 0, 0, time.UTC)
	return a.Before(b)
}

func (t TransactionType) Valid() bool {
	return t == Income || t == Expense
}

func (s BillStatus) Valid() bool {
	return s == Pending || s == Paid
}

// Toggle flips pending to paid and back.
func (s BillStatus) Toggle() BillStatus {
	if s == Pending {
		return Paid
	}
	return Pending
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks a transaction at the form boundary. The ledger itself does
// not re-validate: a record built elsewhere is stored as given.
func (t Transaction) Validate() error {
	if len(strings.TrimSpace(t.Description)) == 0 {
		return ErrEmptyDescription
	}
	if len(t.Description) > 200 {
		return errors.New("description too long (max 200 characters)")
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

func (b Bill) Validate() error {
	if len(strings.TrimSpace(b.Name)) == 0 {
		return ErrEmptyName
	}
	if len(b.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	if err := b.DueDate.Validate(); err != nil {
		return err
	}
	return nil
}
