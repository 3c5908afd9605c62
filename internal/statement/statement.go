package statement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Kind identifies which OFX message path a statement came from.
type Kind string

const (
	KindBank       Kind = "bank"
	KindCreditCard Kind = "credit_card"
)

// Document is the parsed form of one uploaded OFX/QFX file.
// It lives only for the duration of an import and is never persisted.
type Document struct {
	Kind         Kind
	Currency     string
	Transactions []Transaction
}

// Transaction is one entry from the statement's transaction list,
// kept as close to the source as possible. Sign and type semantics
// are resolved later by the normalizer.
type Transaction struct {
	Amount     decimal.Decimal
	PostedDate time.Time
	TypeCode   string // OFX TRNTYPE, e.g. "DEBIT", "CHECK", "XFER"
	Name       string
	Memo       string
	FitID      string
}

// ParseError indicates the input could not be read as a bank or
// credit-card statement, or a required field was missing from it.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parsing statement: %s: %v", e.Reason, e.Err)
	}

	return fmt.Sprintf("parsing statement: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
