package bankaccount

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("bank account not found")

// BankAccount is a connected account statements are imported into.
type BankAccount struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	GroupID   *uuid.UUID
	Name      string
	Currency  string
	CreatedAt time.Time
}
