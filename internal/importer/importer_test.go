package importer_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/categorizer"
	"github.com/budgetron-org/budgetron-sub001/internal/importer"
	"github.com/budgetron-org/budgetron-sub001/internal/statement"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

const bankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20260215120000
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>9876543210
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20260201
<DTEND>20260214
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20260203
<TRNAMT>-42.50
<FITID>T1001
<NAME>WHOLE FOODS GROCERIES
</STMTTRN>
<STMTTRN>
<TRNTYPE>XFER
<DTPOSTED>20260210
<TRNAMT>250.00
<FITID>T1002
<NAME>TRANSFER FROM SAVINGS
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1234.56
<DTASOF>20260214
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>
`

func newService(m categorizer.Matcher) *importer.Service {
	return importer.NewService(
		statement.NewReader(),
		transaction.NewNormalizer(),
		categorizer.NewService(m, time.Second),
	)
}

func TestImport_MergesByExternalID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountID := uuid.New()
	ictx := transaction.ImportContext{BankAccountID: accountID, UserID: uuid.New()}
	groceriesID := uuid.New()
	catalog := []category.Category{{ID: groceriesID, Name: "Groceries"}}

	m := categorizer.NewMockMatcher(ctrl)
	m.EXPECT().
		Match(gomock.Any(), gomock.Any(), catalog).
		DoAndReturn(func(_ context.Context, txs []transaction.CreateParams, _ []category.Category) (map[string]uuid.UUID, error) {
			// Answer for the first transaction only, keyed by external id.
			return map[string]uuid.UUID{txs[0].ExternalID: groceriesID}, nil
		})

	res, err := newService(m).Import(context.Background(), strings.NewReader(bankOFX), ictx, catalog)
	require.NoError(t, err)

	assert.Equal(t, statement.KindBank, res.Kind)
	assert.Equal(t, "USD", res.Currency)
	assert.Equal(t, 1, res.Categorized)
	require.Len(t, res.Params, 2)

	first := res.Params[0]
	assert.Equal(t, accountID.String()+"-T1001", first.ExternalID)
	assert.Equal(t, transaction.TypeExpense, first.Type)
	assert.Equal(t, int64(4250), first.Amount)
	require.NotNil(t, first.CategoryID)
	assert.Equal(t, groceriesID, *first.CategoryID)

	second := res.Params[1]
	assert.Equal(t, transaction.TypeIncome, second.Type)
	assert.Nil(t, second.CategoryID)
}

func TestImport_MatcherFailureDoesNotFail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ictx := transaction.ImportContext{BankAccountID: uuid.New(), UserID: uuid.New()}
	catalog := []category.Category{{ID: uuid.New(), Name: "Groceries"}}

	m := categorizer.NewMockMatcher(ctrl)
	m.EXPECT().
		Match(gomock.Any(), gomock.Any(), catalog).
		Return(nil, errors.New("backend down"))

	res, err := newService(m).Import(context.Background(), strings.NewReader(bankOFX), ictx, catalog)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Categorized)

	for _, p := range res.Params {
		assert.Nil(t, p.CategoryID)
	}
}

func TestImport_EmptyCatalogImportsUncategorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ictx := transaction.ImportContext{BankAccountID: uuid.New(), UserID: uuid.New()}

	// No catalog means the matcher is never consulted.
	m := categorizer.NewMockMatcher(ctrl)

	res, err := newService(m).Import(context.Background(), strings.NewReader(bankOFX), ictx, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, res.Categorized)
	require.Len(t, res.Params, 2)
}

func TestImport_ParseErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ictx := transaction.ImportContext{BankAccountID: uuid.New(), UserID: uuid.New()}
	m := categorizer.NewMockMatcher(ctrl)

	_, err := newService(m).Import(context.Background(), strings.NewReader("not a statement"), ictx, nil)
	require.Error(t, err)

	var parseErr *statement.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestImport_ValidationErrorAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ictx := transaction.ImportContext{BankAccountID: uuid.New(), UserID: uuid.New()}
	m := categorizer.NewMockMatcher(ctrl)

	noFitID := strings.Replace(bankOFX, "<FITID>T1001\n", "<FITID>\n", 1)

	_, err := newService(m).Import(context.Background(), strings.NewReader(noFitID), ictx, nil)
	require.Error(t, err)

	var validationErr *transaction.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}
