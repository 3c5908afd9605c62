package transaction

import (
	"fmt"
	"html"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/budgetron-org/budgetron-sub001/internal/statement"
)

// ImportContext carries the ownership fields an import runs under.
type ImportContext struct {
	BankAccountID uuid.UUID
	UserID        uuid.UUID
	GroupID       *uuid.UUID
}

// debitTypeCodes are the OFX TRNTYPE values that mark a non-negative
// amount as a debit-like movement. For negative amounts the sign alone
// decides, regardless of the type code.
var debitTypeCodes = map[string]struct{}{
	"debit":       {},
	"fee":         {},
	"srvchg":      {},
	"atm":         {},
	"pos":         {},
	"check":       {},
	"payment":     {},
	"directdebit": {},
	"cash":        {},
	"repeatpmt":   {},
}

// Normalizer maps statement transactions into storable create params.
// It is pure: no side effects, input order preserved, categories left unset.
type Normalizer struct{}

func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize converts every transaction of a parsed statement into
// CreateParams. The batch is strict: one invalid transaction fails the
// whole batch so nothing is silently dropped.
func (n *Normalizer) Normalize(doc *statement.Document, ictx ImportContext) ([]CreateParams, error) {
	currency, err := NormalizeCurrency(doc.Currency)
	if err != nil {
		return nil, err
	}

	params := make([]CreateParams, 0, len(doc.Transactions))

	for i, st := range doc.Transactions {
		p, err := normalizeOne(st, ictx, currency)
		if err != nil {
			return nil, fmt.Errorf("transaction %d: %w", i+1, err)
		}

		params = append(params, p)
	}

	return params, nil
}

func normalizeOne(st statement.Transaction, ictx ImportContext, currency string) (CreateParams, error) {
	if st.FitID == "" {
		return CreateParams{}, &ValidationError{Field: "fitid", Reason: "missing transaction identifier"}
	}

	if st.PostedDate.IsZero() {
		return CreateParams{}, &ValidationError{Field: "date", Reason: "missing posted date"}
	}

	txType := classify(st.Amount, st.TypeCode)

	return CreateParams{
		ExternalID:    fmt.Sprintf("%s-%s", ictx.BankAccountID, st.FitID),
		Amount:        st.Amount.Abs().Mul(decimal.NewFromInt(100)).Round(0).IntPart(),
		Type:          txType,
		Currency:      currency,
		Description:   description(st, txType),
		Date:          st.PostedDate,
		BankAccountID: ictx.BankAccountID,
		GroupID:       ictx.GroupID,
	}, nil
}

// classify decides expense vs income. A negative amount is always an
// expense; a non-negative amount is an expense only when its type code is
// one of the known debit types.
func classify(amount decimal.Decimal, typeCode string) Type {
	if amount.IsNegative() {
		return TypeExpense
	}

	if _, ok := debitTypeCodes[strings.ToLower(typeCode)]; ok {
		return TypeExpense
	}

	return TypeIncome
}

// description prefers NAME over MEMO, unescaping any HTML entities banks
// embed in either. Empty both falls back to a generic label.
func description(st statement.Transaction, txType Type) string {
	if st.Name != "" {
		return html.UnescapeString(st.Name)
	}

	if st.Memo != "" {
		return html.UnescapeString(st.Memo)
	}

	if txType == TypeExpense {
		return "Unknown expense"
	}

	return "Unknown income"
}
