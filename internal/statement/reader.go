package statement

import (
	"bytes"
	"io"
	"strings"

	"github.com/aclindsa/ofxgo"
	"github.com/shopspring/decimal"

	enc "github.com/budgetron-org/budgetron-sub001/internal/encoding"
)

// bankMarker is the OFX aggregate only bank (checking/savings) statements
// carry. Credit-card statements use CREDITCARDMSGSRSV1 instead.
const bankMarker = "BANKMSGSRSV1"

// Reader parses raw OFX/QFX bytes into a Document. It is stateless and
// safe for concurrent use.
type Reader struct{}

func NewReader() *Reader {
	return &Reader{}
}

// Read consumes an entire OFX/QFX file and returns the parsed Document.
//
// The statement kind is decided by scanning the raw text for the
// bank-statement marker before any structural parsing, because the two
// kinds nest their transaction lists under different message paths.
func (rd *Reader) Read(r io.Reader) (*Document, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, &ParseError{Reason: "detecting encoding", Err: err}
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, &ParseError{Reason: "reading input", Err: err}
	}

	kind := KindCreditCard
	if bytes.Contains(bytes.ToUpper(data), []byte(bankMarker)) {
		kind = KindBank
	}

	resp, err := ofxgo.ParseResponse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Reason: "not a valid OFX/QFX document", Err: err}
	}

	if kind == KindBank {
		return bankDocument(resp)
	}

	return creditCardDocument(resp)
}

func bankDocument(resp *ofxgo.Response) (*Document, error) {
	if len(resp.Bank) == 0 {
		return nil, &ParseError{Reason: "missing bank statement response"}
	}

	stmt, ok := resp.Bank[0].(*ofxgo.StatementResponse)
	if !ok {
		return nil, &ParseError{Reason: "unexpected bank statement response type"}
	}

	currency, err := statementCurrency(stmt.CurDef)
	if err != nil {
		return nil, err
	}

	if stmt.BankTranList == nil {
		return nil, &ParseError{Reason: "missing transaction list in bank statement"}
	}

	return &Document{
		Kind:         KindBank,
		Currency:     currency,
		Transactions: flatten(stmt.BankTranList),
	}, nil
}

func creditCardDocument(resp *ofxgo.Response) (*Document, error) {
	if len(resp.CreditCard) == 0 {
		return nil, &ParseError{Reason: "missing credit-card statement response"}
	}

	stmt, ok := resp.CreditCard[0].(*ofxgo.CCStatementResponse)
	if !ok {
		return nil, &ParseError{Reason: "unexpected credit-card statement response type"}
	}

	currency, err := statementCurrency(stmt.CurDef)
	if err != nil {
		return nil, err
	}

	if stmt.BankTranList == nil {
		return nil, &ParseError{Reason: "missing transaction list in credit-card statement"}
	}

	return &Document{
		Kind:         KindCreditCard,
		Currency:     currency,
		Transactions: flatten(stmt.BankTranList),
	}, nil
}

// statementCurrency extracts the statement's CURDEF. A statement without a
// default currency is treated as malformed rather than silently defaulted.
func statementCurrency(cur ofxgo.CurrSymbol) (string, error) {
	code := cur.String()
	if code == "" || code == "XXX" {
		return "", &ParseError{Reason: "missing currency default (CURDEF)"}
	}

	return code, nil
}

// flatten converts the nested OFX transaction list into the Document's
// flat sequence, preserving source order.
func flatten(list *ofxgo.TransactionList) []Transaction {
	txs := make([]Transaction, 0, len(list.Transactions))

	for _, t := range list.Transactions {
		name := strings.TrimSpace(t.Name.String())
		if name == "" && t.Payee != nil {
			name = strings.TrimSpace(t.Payee.Name.String())
		}

		txs = append(txs, Transaction{
			Amount:     decimal.NewFromBigRat(&t.TrnAmt.Rat, 2),
			PostedDate: t.DtPosted.Time,
			TypeCode:   t.TrnType.String(),
			Name:       name,
			Memo:       strings.TrimSpace(t.Memo.String()),
			FitID:      strings.TrimSpace(t.FiTID.String()),
		})
	}

	return txs
}
