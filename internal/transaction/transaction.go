package transaction

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

var ErrNotFound = errors.New("transaction not found")

// ValidationError indicates a statement transaction that cannot be
// normalized into a storable transaction.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid transaction: %s: %s", e.Field, e.Reason)
}

// Transaction represents a financial transaction.
//
// ExternalID is the idempotency key for statement imports: it combines the
// owning bank account id with the statement-local FITID, and the store
// enforces uniqueness on it so re-importing the same file never creates
// duplicates.
type Transaction struct {
	ID            uuid.UUID
	ExternalID    string
	Amount        int64 // Amount in cents, always >= 0; sign lives in Type
	Type          Type
	Currency      string
	Description   string
	Date          time.Time
	BankAccountID uuid.UUID
	GroupID       *uuid.UUID
	CategoryID    *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
