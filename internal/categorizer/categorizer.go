// Package categorizer assigns best-guess categories to freshly imported
// transactions, using only the description and transaction type as signal.
package categorizer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

// Matcher picks the best-fit category for each transaction from the
// caller's catalog. The result maps external id to category id; a missing
// entry means "uncategorized". Implementations may reorder or batch the
// transactions, so callers must merge by external id, never by index.
//
//go:generate mockgen -source=categorizer.go -destination=matcher_mock.go -package=categorizer
type Matcher interface {
	Match(ctx context.Context, txs []transaction.CreateParams, catalog []category.Category) (map[string]uuid.UUID, error)
}

// Service wraps a Matcher with a bounded wait and local failure recovery.
type Service struct {
	matcher Matcher
	timeout time.Duration
}

func NewService(matcher Matcher, timeout time.Duration) *Service {
	return &Service{matcher: matcher, timeout: timeout}
}

// Categorize never fails the import: a matcher error or timeout degrades
// to an empty result and the transactions land uncategorized.
func (s *Service) Categorize(ctx context.Context, txs []transaction.CreateParams, catalog []category.Category) map[string]uuid.UUID {
	if len(txs) == 0 || len(catalog) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	matches, err := s.matcher.Match(ctx, txs, catalog)
	if err != nil {
		slog.Warn("categorization unavailable, importing uncategorized", "error", err)
		return nil
	}

	return matches
}
