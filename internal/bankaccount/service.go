package bankaccount

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=bankaccount
type Repository interface {
	CreateBankAccount(ctx context.Context, a *BankAccount) error
	GetBankAccount(ctx context.Context, id uuid.UUID) (*BankAccount, error)
	ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]*BankAccount, error)
	DeleteBankAccount(ctx context.Context, id, userID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	UserID   uuid.UUID
	GroupID  *uuid.UUID
	Name     string
	Currency string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*BankAccount, error) {
	currency, err := transaction.NormalizeCurrency(params.Currency)
	if err != nil {
		return nil, err
	}

	a := &BankAccount{
		UserID:   params.UserID,
		GroupID:  params.GroupID,
		Name:     params.Name,
		Currency: currency,
	}

	if err := s.repo.CreateBankAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*BankAccount, error) {
	return s.repo.GetBankAccount(ctx, id)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*BankAccount, error) {
	return s.repo.ListBankAccounts(ctx, userID)
}

// Delete removes one of the user's own accounts; someone else's account
// reads as not found.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.DeleteBankAccount(ctx, id, userID)
}

// ImportContextFor resolves the import context for an upload into the given
// account, refusing accounts the user does not own.
func (s *Service) ImportContextFor(ctx context.Context, accountID, userID uuid.UUID) (transaction.ImportContext, error) {
	a, err := s.repo.GetBankAccount(ctx, accountID)
	if err != nil {
		return transaction.ImportContext{}, err
	}

	if a.UserID != userID {
		return transaction.ImportContext{}, ErrNotFound
	}

	return transaction.ImportContext{
		BankAccountID: a.ID,
		UserID:        a.UserID,
		GroupID:       a.GroupID,
	}, nil
}
