package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTransaction reads a transaction row and returns a populated Transaction.
// Expected column order: id, external_id, amount, type, currency, description,
// date, bank_account_id, group_id, category_id, created_at, updated_at
func scanTransaction(s scanner) (*transaction.Transaction, error) {
	var tx transaction.Transaction

	var typeStr string

	var groupID, categoryID *uuid.UUID

	if err := s.Scan(
		&tx.ID, &tx.ExternalID, &tx.Amount, &typeStr, &tx.Currency, &tx.Description,
		&tx.Date, &tx.BankAccountID, &groupID, &categoryID,
		&tx.CreatedAt, &tx.UpdatedAt,
	); err != nil {
		return nil, err
	}

	tx.Type = transaction.Type(typeStr)
	tx.GroupID = groupID
	tx.CategoryID = categoryID

	return &tx, nil
}

const selectTransactionColumns = `
	t.id, t.external_id, t.amount, t.type, t.currency, t.description,
	t.date, t.bank_account_id, t.group_id, t.category_id, t.created_at, t.updated_at
`

func (s *Store) CreateTransaction(ctx context.Context, tx *transaction.Transaction) error {
	query := `
		INSERT INTO transactions (external_id, amount, type, currency, description, date, bank_account_id, group_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowContext(ctx, query,
		tx.ExternalID,
		tx.Amount,
		tx.Type,
		tx.Currency,
		tx.Description,
		tx.Date,
		tx.BankAccountID,
		tx.GroupID,
		tx.CategoryID,
	).Scan(&tx.ID, &tx.CreatedAt, &tx.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating transaction: %w", err)
	}

	return nil
}

// UpsertBatch inserts or updates all transactions by external_id inside one
// database transaction. A manually assigned category survives re-import:
// the existing category_id wins over the incoming one when both are set.
func (s *Store) UpsertBatch(ctx context.Context, txs []*transaction.Transaction) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning upsert: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO transactions (external_id, amount, type, currency, description, date, bank_account_id, group_id, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (external_id) DO UPDATE SET
			amount      = EXCLUDED.amount,
			type        = EXCLUDED.type,
			currency    = EXCLUDED.currency,
			description = EXCLUDED.description,
			date        = EXCLUDED.date,
			category_id = COALESCE(transactions.category_id, EXCLUDED.category_id),
			updated_at  = NOW()
		RETURNING id, category_id, created_at, updated_at
	`

	for _, tx := range txs {
		err := dbTx.QueryRowContext(ctx, query,
			tx.ExternalID,
			tx.Amount,
			tx.Type,
			tx.Currency,
			tx.Description,
			tx.Date,
			tx.BankAccountID,
			tx.GroupID,
			tx.CategoryID,
		).Scan(&tx.ID, &tx.CategoryID, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return fmt.Errorf("upserting transaction %s: %w", tx.ExternalID, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing upsert: %w", err)
	}

	return nil
}

func (s *Store) GetTransaction(ctx context.Context, id, userID uuid.UUID) (*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		JOIN bank_accounts a ON t.bank_account_id = a.id
		WHERE t.id = $1 AND a.user_id = $2`

	tx, err := scanTransaction(s.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, transaction.ErrNotFound
		}

		return nil, fmt.Errorf("getting transaction: %w", err)
	}

	return tx, nil
}

func (s *Store) ListTransactions(ctx context.Context, filter transaction.ListFilter) ([]*transaction.Transaction, error) {
	query := `SELECT ` + selectTransactionColumns + `
		FROM transactions t
		JOIN bank_accounts a ON t.bank_account_id = a.id
		WHERE a.user_id = $1`

	args := []any{filter.UserID}

	argIdx := 2

	if filter.BankAccountID != nil {
		query += fmt.Sprintf(" AND t.bank_account_id = $%d", argIdx)

		args = append(args, *filter.BankAccountID)
		argIdx++
	}

	if filter.CategoryID != nil {
		query += fmt.Sprintf(" AND t.category_id = $%d", argIdx)

		args = append(args, *filter.CategoryID)
		argIdx++
	}

	if filter.Type != nil {
		query += fmt.Sprintf(" AND t.type = $%d", argIdx)

		args = append(args, *filter.Type)
		argIdx++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND t.date >= $%d", argIdx)

		args = append(args, *filter.StartDate)
		argIdx++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND t.date <= $%d", argIdx)

		args = append(args, *filter.EndDate)
		argIdx++
	}

	query += " ORDER BY t.date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing transactions: %w", err)
	}
	defer rows.Close()

	var txs []*transaction.Transaction

	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}

		txs = append(txs, tx)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating transactions: %w", err)
	}

	return txs, nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id, userID uuid.UUID) error {
	query := `
		DELETE FROM transactions
		USING bank_accounts a
		WHERE transactions.bank_account_id = a.id AND transactions.id = $1 AND a.user_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting transaction: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, id, userID uuid.UUID, categoryID *uuid.UUID) error {
	query := `
		UPDATE transactions SET category_id = $3, updated_at = NOW()
		FROM bank_accounts a
		WHERE transactions.bank_account_id = a.id AND transactions.id = $1 AND a.user_id = $2
	`

	res, err := s.db.ExecContext(ctx, query, id, userID, categoryID)
	if err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return transaction.ErrNotFound
	}

	return nil
}
