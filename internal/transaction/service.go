package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	CreateTransaction(ctx context.Context, tx *Transaction) error

	// Reads and writes are scoped to the owning user through the bank
	// account; a transaction belonging to someone else reads as not found.
	GetTransaction(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
	ListTransactions(ctx context.Context, filter ListFilter) ([]*Transaction, error)
	DeleteTransaction(ctx context.Context, id, userID uuid.UUID) error
	UpdateCategory(ctx context.Context, id, userID uuid.UUID, categoryID *uuid.UUID) error

	// UpsertBatch inserts or updates by external_id. The database-level
	// uniqueness constraint on external_id is what makes concurrent imports
	// of the same statement race safely to the same result.
	UpsertBatch(ctx context.Context, txs []*Transaction) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ExternalID    string
	Amount        int64
	Type          Type
	Currency      string
	Description   string
	Date          time.Time
	BankAccountID uuid.UUID
	GroupID       *uuid.UUID
	CategoryID    *uuid.UUID
}

type ListFilter struct {
	UserID        uuid.UUID
	BankAccountID *uuid.UUID
	CategoryID    *uuid.UUID
	Type          *Type
	StartDate     *time.Time
	EndDate       *time.Time
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Transaction, error) {
	tx := paramsToTransaction(params)
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return tx, nil
}

// ImportBatch persists a normalized statement batch. Re-running the same
// batch is idempotent: rows are upserted by external id.
func (s *Service) ImportBatch(ctx context.Context, params []CreateParams) ([]*Transaction, error) {
	if len(params) == 0 {
		return nil, nil
	}

	txs := make([]*Transaction, len(params))
	for i, p := range params {
		txs[i] = paramsToTransaction(p)
	}

	if err := s.repo.UpsertBatch(ctx, txs); err != nil {
		return nil, fmt.Errorf("upserting batch: %w", err)
	}

	return txs, nil
}

func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	return s.repo.GetTransaction(ctx, id, userID)
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx, filter)
}

func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.DeleteTransaction(ctx, id, userID)
}

// AssignCategory sets or clears a transaction's category (manual
// recategorization after import).
func (s *Service) AssignCategory(ctx context.Context, id, userID uuid.UUID, categoryID *uuid.UUID) error {
	return s.repo.UpdateCategory(ctx, id, userID, categoryID)
}

func paramsToTransaction(p CreateParams) *Transaction {
	return &Transaction{
		ExternalID:    p.ExternalID,
		Amount:        p.Amount,
		Type:          p.Type,
		Currency:      p.Currency,
		Description:   p.Description,
		Date:          p.Date,
		BankAccountID: p.BankAccountID,
		GroupID:       p.GroupID,
		CategoryID:    p.CategoryID,
	}
}
