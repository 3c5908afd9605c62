package category

import (
	"context"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	CreateCategory(ctx context.Context, c *Category) error
	GetCategory(ctx context.Context, id uuid.UUID) (*Category, error)
	ListCategories(ctx context.Context, userID uuid.UUID, groupID *uuid.UUID) ([]Category, error)
	DeleteCategory(ctx context.Context, id, userID uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name     string
	ParentID *uuid.UUID
	Type     *string
	UserID   uuid.UUID
	GroupID  *uuid.UUID
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Category, error) {
	c := &Category{
		Name:     params.Name,
		ParentID: params.ParentID,
		UserID:   &params.UserID,
		GroupID:  params.GroupID,
	}

	if params.Type != nil {
		t := transaction.Type(*params.Type)
		if t != transaction.TypeIncome && t != transaction.TypeExpense {
			return nil, &transaction.ValidationError{Field: "type", Reason: "must be income or expense"}
		}

		c.Type = &t
	}

	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	return s.repo.GetCategory(ctx, id)
}

// CatalogFor returns the union of the user's personal categories and the
// shared categories of their group, the set the categorizer picks from.
func (s *Service) CatalogFor(ctx context.Context, userID uuid.UUID, groupID *uuid.UUID) ([]Category, error) {
	return s.repo.ListCategories(ctx, userID, groupID)
}

// Delete removes a category the user created; anyone else's category reads
// as not found.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.DeleteCategory(ctx, id, userID)
}
