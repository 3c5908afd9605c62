package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/budgetron-org/budgetron-sub001/internal/category"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category

	var typeStr sql.NullString

	if err := s.Scan(&c.ID, &c.Name, &c.ParentID, &typeStr, &c.UserID, &c.GroupID, &c.CreatedAt); err != nil {
		return nil, err
	}

	if typeStr.Valid {
		t := transaction.Type(typeStr.String)
		c.Type = &t
	}

	return &c, nil
}

const selectCategoryColumns = `c.id, c.name, c.parent_id, c.type, c.user_id, c.group_id, c.created_at`

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (name, parent_id, type, user_id, group_id, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	var typeStr *string

	if c.Type != nil {
		str := string(*c.Type)
		typeStr = &str
	}

	err := s.db.QueryRowContext(ctx, query,
		c.Name,
		c.ParentID,
		typeStr,
		c.UserID,
		c.GroupID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM categories c WHERE c.id = $1`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

// ListCategories returns the user's own categories plus the shared
// categories of their group, name-ordered.
func (s *Store) ListCategories(ctx context.Context, userID uuid.UUID, groupID *uuid.UUID) ([]category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + `
		FROM categories c
		WHERE c.user_id = $1 OR ($2::uuid IS NOT NULL AND c.group_id = $2)
		ORDER BY c.name ASC`

	rows, err := s.db.QueryContext(ctx, query, userID, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var cats []category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		cats = append(cats, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return cats, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`

	res, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return category.ErrNotFound
	}

	return nil
}
