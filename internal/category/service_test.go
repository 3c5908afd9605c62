package category_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

func TestService_Create_TypeValidation(t *testing.T) {
	type testCase struct {
		name     string
		catType  *string
		wantErr  bool
		wantType *transaction.Type
	}

	expense := "expense"
	income := "income"
	bogus := "foo"
	wantExpense := transaction.TypeExpense
	wantIncome := transaction.TypeIncome

	tests := []testCase{
		{name: "Expense", catType: &expense, wantType: &wantExpense},
		{name: "Income", catType: &income, wantType: &wantIncome},
		{name: "Untyped", catType: nil, wantType: nil},
		{name: "UnknownTypeRejected", catType: &bogus, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := category.NewMockRepository(ctrl)
			if !tt.wantErr {
				repo.EXPECT().CreateCategory(gomock.Any(), gomock.Any()).Return(nil)
			}

			svc := category.NewService(repo)

			c, err := svc.Create(context.Background(), category.CreateParams{
				Name:   "Groceries",
				Type:   tt.catType,
				UserID: uuid.New(),
			})

			if tt.wantErr {
				require.Error(t, err)

				var validationErr *transaction.ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, "type", validationErr.Field)

				return
			}

			require.NoError(t, err)

			if tt.wantType == nil {
				assert.Nil(t, c.Type)
			} else {
				require.NotNil(t, c.Type)
				assert.Equal(t, *tt.wantType, *c.Type)
			}
		})
	}
}

func TestService_Delete_ScopedToOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	repo := category.NewMockRepository(ctrl)
	repo.EXPECT().DeleteCategory(gomock.Any(), id, owner).Return(nil)
	repo.EXPECT().DeleteCategory(gomock.Any(), id, stranger).Return(category.ErrNotFound)

	svc := category.NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), id, owner))
	assert.ErrorIs(t, svc.Delete(context.Background(), id, stranger), category.ErrNotFound)
}
