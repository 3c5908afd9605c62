package bankaccount_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/budgetron-org/budgetron-sub001/internal/bankaccount"
)

func TestService_Delete_ScopedToOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	repo := bankaccount.NewMockRepository(ctrl)
	repo.EXPECT().DeleteBankAccount(gomock.Any(), id, owner).Return(nil)
	repo.EXPECT().DeleteBankAccount(gomock.Any(), id, stranger).Return(bankaccount.ErrNotFound)

	svc := bankaccount.NewService(repo)

	require.NoError(t, svc.Delete(context.Background(), id, owner))
	assert.ErrorIs(t, svc.Delete(context.Background(), id, stranger), bankaccount.ErrNotFound)
}

func TestService_ImportContextFor_RefusesForeignAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	owner := uuid.New()
	stranger := uuid.New()
	account := &bankaccount.BankAccount{ID: uuid.New(), UserID: owner, Currency: "USD"}

	repo := bankaccount.NewMockRepository(ctrl)
	repo.EXPECT().GetBankAccount(gomock.Any(), account.ID).Return(account, nil).Times(2)

	svc := bankaccount.NewService(repo)

	ictx, err := svc.ImportContextFor(context.Background(), account.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, account.ID, ictx.BankAccountID)

	_, err = svc.ImportContextFor(context.Background(), account.ID, stranger)
	assert.ErrorIs(t, err, bankaccount.ErrNotFound)
}
