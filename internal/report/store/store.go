package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/report"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CategoryTotals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]report.CategoryTotal, error) {
	query := `
		SELECT t.category_id, COALESCE(c.name, ''), t.type, SUM(t.amount)
		FROM transactions t
		JOIN bank_accounts a ON t.bank_account_id = a.id
		LEFT JOIN categories c ON t.category_id = c.id
		WHERE a.user_id = $1 AND t.date >= $2 AND t.date <= $3
		GROUP BY t.category_id, c.name, t.type
		ORDER BY SUM(t.amount) DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("querying category totals: %w", err)
	}
	defer rows.Close()

	var totals []report.CategoryTotal

	for rows.Next() {
		var t report.CategoryTotal

		var typeStr string

		if err := rows.Scan(&t.CategoryID, &t.CategoryName, &typeStr, &t.Total); err != nil {
			return nil, fmt.Errorf("scanning category total: %w", err)
		}

		t.Type = transaction.Type(typeStr)
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating category totals: %w", err)
	}

	return totals, nil
}

func (s *Store) MonthlyTotals(ctx context.Context, userID uuid.UUID, year int) ([]report.MonthlyTotal, error) {
	query := `
		SELECT EXTRACT(MONTH FROM t.date)::int,
			SUM(CASE WHEN t.type = 'income' THEN t.amount ELSE 0 END),
			SUM(CASE WHEN t.type = 'expense' THEN t.amount ELSE 0 END)
		FROM transactions t
		JOIN bank_accounts a ON t.bank_account_id = a.id
		WHERE a.user_id = $1 AND EXTRACT(YEAR FROM t.date) = $2
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := s.db.QueryContext(ctx, query, userID, year)
	if err != nil {
		return nil, fmt.Errorf("querying monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []report.MonthlyTotal

	for rows.Next() {
		var month int

		var t report.MonthlyTotal

		if err := rows.Scan(&month, &t.Income, &t.Expenses); err != nil {
			return nil, fmt.Errorf("scanning monthly total: %w", err)
		}

		t.Month = time.Month(month)
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating monthly totals: %w", err)
	}

	return totals, nil
}
