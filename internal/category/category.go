package category

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

var ErrNotFound = errors.New("category not found")

// Category is one entry of a user's category catalog. A nil Type means the
// category applies to both expenses and income. GroupID marks a shared
// category visible to every member of the household.
type Category struct {
	ID        uuid.UUID
	Name      string
	ParentID  *uuid.UUID
	Type      *transaction.Type
	UserID    *uuid.UUID
	GroupID   *uuid.UUID
	CreatedAt time.Time
}

// Matches reports whether the category is eligible for a transaction of
// the given type.
func (c Category) Matches(t transaction.Type) bool {
	return c.Type == nil || *c.Type == t
}
