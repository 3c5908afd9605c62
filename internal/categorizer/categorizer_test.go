package categorizer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/categorizer"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

func TestService_Categorize(t *testing.T) {
	catalog := []category.Category{cat("Groceries", typed(transaction.TypeExpense))}
	txs := []transaction.CreateParams{tx("e1", "WHOLE FOODS", transaction.TypeExpense)}

	t.Run("PassesMatchesThrough", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		want := map[string]uuid.UUID{"e1": catalog[0].ID}

		m := categorizer.NewMockMatcher(ctrl)
		m.EXPECT().Match(gomock.Any(), txs, catalog).Return(want, nil)

		svc := categorizer.NewService(m, time.Second)
		assert.Equal(t, want, svc.Categorize(context.Background(), txs, catalog))
	})

	t.Run("MatcherFailureDegradesToNil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := categorizer.NewMockMatcher(ctrl)
		m.EXPECT().Match(gomock.Any(), txs, catalog).Return(nil, errors.New("backend down"))

		svc := categorizer.NewService(m, time.Second)
		assert.Nil(t, svc.Categorize(context.Background(), txs, catalog))
	})

	t.Run("EmptyCatalogSkipsMatcher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := categorizer.NewMockMatcher(ctrl)

		svc := categorizer.NewService(m, time.Second)
		assert.Nil(t, svc.Categorize(context.Background(), txs, nil))
	})

	t.Run("EmptyBatchSkipsMatcher", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := categorizer.NewMockMatcher(ctrl)

		svc := categorizer.NewService(m, time.Second)
		assert.Nil(t, svc.Categorize(context.Background(), nil, catalog))
	})

	t.Run("MatcherSeesDeadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		m := categorizer.NewMockMatcher(ctrl)
		m.EXPECT().
			Match(gomock.Any(), txs, catalog).
			DoAndReturn(func(ctx context.Context, _ []transaction.CreateParams, _ []category.Category) (map[string]uuid.UUID, error) {
				_, ok := ctx.Deadline()
				assert.True(t, ok)
				return nil, nil
			})

		svc := categorizer.NewService(m, time.Second)
		svc.Categorize(context.Background(), txs, catalog)
	})
}
