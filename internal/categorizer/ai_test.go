package categorizer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

func TestResolve_DuplicateNamesFirstWins(t *testing.T) {
	expense := transaction.TypeExpense

	personal := category.Category{ID: uuid.New(), Name: "Groceries", Type: &expense}
	shared := category.Category{ID: uuid.New(), Name: "GROCERIES", Type: &expense}

	txs := []transaction.CreateParams{
		{ExternalID: "e1", Type: transaction.TypeExpense, Description: "WHOLE FOODS"},
	}

	// Names that differ only by case collapse to one key; the earlier
	// catalog entry must win, not whichever happened to be written last.
	got := resolve(map[string]string{"e1": "groceries"}, txs, []category.Category{personal, shared})
	assert.Equal(t, personal.ID, got["e1"])
}

func TestResolve_EnforcesTypeEligibility(t *testing.T) {
	income := transaction.TypeIncome
	salary := category.Category{ID: uuid.New(), Name: "Salary", Type: &income}

	txs := []transaction.CreateParams{
		{ExternalID: "e1", Type: transaction.TypeExpense, Description: "SALARY ADVANCE REPAYMENT"},
	}

	// The model answered with an income-only category for an expense.
	got := resolve(map[string]string{"e1": "Salary"}, txs, []category.Category{salary})
	assert.NotContains(t, got, "e1")
}

func TestResolve_UnknownNameLeavesUncategorized(t *testing.T) {
	expense := transaction.TypeExpense
	groceries := category.Category{ID: uuid.New(), Name: "Groceries", Type: &expense}

	txs := []transaction.CreateParams{
		{ExternalID: "e1", Type: transaction.TypeExpense, Description: "WHOLE FOODS"},
		{ExternalID: "e2", Type: transaction.TypeExpense, Description: "UNKNOWN SHOP"},
	}

	got := resolve(map[string]string{"e1": "Hallucinated", "e2": ""}, txs, []category.Category{groceries})
	assert.Empty(t, got)
}

func TestCleanModelJSON(t *testing.T) {
	want := `{"e1": "Groceries"}`

	assert.Equal(t, want, cleanModelJSON(want))
	assert.Equal(t, want, cleanModelJSON("```json\n"+want+"\n```"))
	assert.Equal(t, want, cleanModelJSON("Here you go:\n"+want+"\nLet me know!"))
}
