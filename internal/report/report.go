// Package report produces the aggregates behind the dashboard: category
// breakdowns and monthly cash flow.
package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

// CategoryTotal is the summed amount of one category over a period. A nil
// CategoryID collects the uncategorized transactions.
type CategoryTotal struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Type         transaction.Type
	Total        int64 // cents
}

// MonthlyTotal is one month of cash flow.
type MonthlyTotal struct {
	Month    time.Month
	Income   int64
	Expenses int64
}

//go:generate mockgen -source=report.go -destination=repository_mock.go -package=report
type Repository interface {
	CategoryTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]CategoryTotal, error)
	MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) ([]MonthlyTotal, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CategoryBreakdown(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]CategoryTotal, error) {
	return s.repo.CategoryTotals(ctx, userID, from, to)
}

// CashFlow returns twelve entries, one per month of the year, including
// months with no activity.
func (s *Service) CashFlow(ctx context.Context, userID uuid.UUID, year int) ([]MonthlyTotal, error) {
	totals, err := s.repo.MonthlyTotals(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[time.Month]MonthlyTotal, len(totals))
	for _, t := range totals {
		byMonth[t.Month] = t
	}

	out := make([]MonthlyTotal, 0, 12)

	for m := time.January; m <= time.December; m++ {
		t, ok := byMonth[m]
		if !ok {
			t = MonthlyTotal{Month: m}
		}

		out = append(out, t)
	}

	return out, nil
}
