package categorizer_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/categorizer"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

func typed(t transaction.Type) *transaction.Type {
	return &t
}

func cat(name string, t *transaction.Type) category.Category {
	return category.Category{ID: uuid.New(), Name: name, Type: t}
}

func tx(externalID, description string, t transaction.Type) transaction.CreateParams {
	return transaction.CreateParams{
		ExternalID:  externalID,
		Description: description,
		Type:        t,
	}
}

func TestKeywordMatcher_SubstringMatch(t *testing.T) {
	groceries := cat("Groceries", typed(transaction.TypeExpense))
	salary := cat("Salary", typed(transaction.TypeIncome))
	catalog := []category.Category{groceries, salary}

	m := categorizer.NewKeywordMatcher()

	matches, err := m.Match(context.Background(), []transaction.CreateParams{
		tx("e1", "WHOLE FOODS GROCERIES #42", transaction.TypeExpense),
		tx("e2", "ACME CORP SALARY FEB", transaction.TypeIncome),
	}, catalog)
	require.NoError(t, err)

	assert.Equal(t, groceries.ID, matches["e1"])
	assert.Equal(t, salary.ID, matches["e2"])
}

func TestKeywordMatcher_TypeEligibility(t *testing.T) {
	// "Salary" only applies to income; an expense with the same word in
	// the description must not pick it up.
	salary := cat("Salary", typed(transaction.TypeIncome))
	catalog := []category.Category{salary}

	m := categorizer.NewKeywordMatcher()

	matches, err := m.Match(context.Background(), []transaction.CreateParams{
		tx("e1", "SALARY ADVANCE REPAYMENT", transaction.TypeExpense),
	}, catalog)
	require.NoError(t, err)

	assert.NotContains(t, matches, "e1")
}

func TestKeywordMatcher_UntypedCategoryMatchesBoth(t *testing.T) {
	transfers := cat("Transfers", nil)
	catalog := []category.Category{transfers}

	m := categorizer.NewKeywordMatcher()

	matches, err := m.Match(context.Background(), []transaction.CreateParams{
		tx("e1", "TRANSFERS TO SAVINGS", transaction.TypeExpense),
		tx("e2", "TRANSFERS FROM CHECKING", transaction.TypeIncome),
	}, catalog)
	require.NoError(t, err)

	assert.Equal(t, transfers.ID, matches["e1"])
	assert.Equal(t, transfers.ID, matches["e2"])
}

func TestKeywordMatcher_ConfidenceFloor(t *testing.T) {
	// Only one of three name tokens appears in the description; that is
	// below the floor, so the transaction stays uncategorized.
	dining := cat("Dining Out Restaurants", typed(transaction.TypeExpense))
	catalog := []category.Category{dining}

	m := categorizer.NewKeywordMatcher()

	matches, err := m.Match(context.Background(), []transaction.CreateParams{
		tx("e1", "DINING CHAIR WAREHOUSE", transaction.TypeExpense),
	}, catalog)
	require.NoError(t, err)

	assert.Empty(t, matches)
}

func TestKeywordMatcher_CaseInsensitive(t *testing.T) {
	gas := cat("Gas Station", typed(transaction.TypeExpense))
	catalog := []category.Category{gas}

	m := categorizer.NewKeywordMatcher()

	matches, err := m.Match(context.Background(), []transaction.CreateParams{
		tx("e1", "shell gas station 1187", transaction.TypeExpense),
	}, catalog)
	require.NoError(t, err)

	assert.Equal(t, gas.ID, matches["e1"])
}
