package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/bankaccount"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectAccountColumns = `a.id, a.user_id, a.group_id, a.name, a.currency, a.created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*bankaccount.BankAccount, error) {
	var a bankaccount.BankAccount

	if err := s.Scan(&a.ID, &a.UserID, &a.GroupID, &a.Name, &a.Currency, &a.CreatedAt); err != nil {
		return nil, err
	}

	return &a, nil
}

func (s *Store) CreateBankAccount(ctx context.Context, a *bankaccount.BankAccount) error {
	query := `
		INSERT INTO bank_accounts (user_id, group_id, name, currency, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, a.UserID, a.GroupID, a.Name, a.Currency).
		Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating bank account: %w", err)
	}

	return nil
}

func (s *Store) GetBankAccount(ctx context.Context, id uuid.UUID) (*bankaccount.BankAccount, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM bank_accounts a WHERE a.id = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, bankaccount.ErrNotFound
		}

		return nil, fmt.Errorf("getting bank account: %w", err)
	}

	return a, nil
}

func (s *Store) ListBankAccounts(ctx context.Context, userID uuid.UUID) ([]*bankaccount.BankAccount, error) {
	query := `SELECT ` + selectAccountColumns + `
		FROM bank_accounts a
		WHERE a.user_id = $1
		ORDER BY a.created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*bankaccount.BankAccount

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning bank account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bank accounts: %w", err)
	}

	return accounts, nil
}

func (s *Store) DeleteBankAccount(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM bank_accounts WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting bank account: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return bankaccount.ErrNotFound
	}

	return nil
}
