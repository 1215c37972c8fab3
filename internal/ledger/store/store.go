package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kharcha-app/kharcha/internal/accounting"
	"github.com/kharcha-app/kharcha/internal/database"
	"github.com/kharcha-app/kharcha/internal/ledger"
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

const selectExpenseColumns = `id, user_id, amount, category, description, date, created_at, updated_at`

// scanExpense reads an expense row from the scanner.
// Expected column order: id, user_id, amount, category, description, date, created_at, updated_at
func scanExpense(s scanner) (*ledger.Expense, error) {
	var e ledger.Expense

	var description sql.NullString

	if err := s.Scan(
		&e.ID, &e.TenantID, &e.Amount, &e.Category, &description, &e.Date,
		&e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}

	e.Description = description.String

	return &e, nil
}

const selectBudgetColumns = `id, user_id, category, "limit", month, created_at, updated_at`

func scanBudget(s scanner) (*ledger.Budget, error) {
	var b ledger.Budget

	if err := s.Scan(
		&b.ID, &b.TenantID, &b.Category, &b.Limit, &b.Month,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}

	return &b, nil
}

func nullableText(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func (s *Store) CreateExpense(ctx context.Context, e *ledger.Expense) error {
	query := `
		INSERT INTO expenses (user_id, amount, category, description, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, created_at, updated_at
	`

	return database.WithTenant(ctx, s.db, e.TenantID, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			e.TenantID,
			e.Amount,
			e.Category,
			nullableText(e.Description),
			e.Date,
		).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return fmt.Errorf("creating expense: %w", err)
		}

		return nil
	})
}

func (s *Store) ExpensesByRange(ctx context.Context, tenantID uuid.UUID, start, end time.Time) ([]*ledger.Expense, error) {
	query := `SELECT ` + selectExpenseColumns + `
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
		ORDER BY date DESC`

	var expenses []*ledger.Expense

	err := database.WithTenant(ctx, s.db, tenantID, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, tenantID, start, end)
		if err != nil {
			return fmt.Errorf("listing expenses: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			e, err := scanExpense(rows)
			if err != nil {
				return fmt.Errorf("scanning expense: %w", err)
			}

			expenses = append(expenses, e)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (s *Store) UpdateExpense(ctx context.Context, tenantID, id uuid.UUID, params ledger.UpdateExpenseParams) (*ledger.Expense, error) {
	sets := []string{"updated_at = now()"}

	var args []any

	argIdx := 1

	if params.Amount != nil {
		sets = append(sets, fmt.Sprintf("amount = $%d", argIdx))

		args = append(args, *params.Amount)
		argIdx++
	}

	if params.Category != nil {
		sets = append(sets, fmt.Sprintf("category = $%d", argIdx))

		args = append(args, *params.Category)
		argIdx++
	}

	if params.Description != nil {
		sets = append(sets, fmt.Sprintf("description = $%d", argIdx))

		args = append(args, nullableText(*params.Description))
		argIdx++
	}

	if params.Date != nil {
		sets = append(sets, fmt.Sprintf("date = $%d", argIdx))

		args = append(args, *params.Date)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE expenses
		SET %s
		WHERE id = $%d AND user_id = $%d
		RETURNING `+selectExpenseColumns,
		strings.Join(sets, ", "), argIdx, argIdx+1)
	args = append(args, id, tenantID)

	var expense *ledger.Expense

	err := database.WithTenant(ctx, s.db, tenantID, func(tx *sql.Tx) error {
		e, err := scanExpense(tx.QueryRowContext(ctx, query, args...))
		if err != nil {
			if err == sql.ErrNoRows {
				return ledger.ErrNotFound
			}

			return fmt.Errorf("updating expense: %w", err)
		}

		expense = e

		return nil
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *Store) DeleteExpense(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Expense, error) {
	query := `
		DELETE FROM expenses
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectExpenseColumns

	var expense *ledger.Expense

	err := database.WithTenant(ctx, s.db, tenantID, func(tx *sql.Tx) error {
		e, err := scanExpense(tx.QueryRowContext(ctx, query, id, tenantID))
		if err != nil {
			if err == sql.ErrNoRows {
				return ledger.ErrNotFound
			}

			return fmt.Errorf("deleting expense: %w", err)
		}

		expense = e

		return nil
	})
	if err != nil {
		return nil, err
	}

	return expense, nil
}

// UpsertBudget inserts the budget or, when the (user_id, category, month)
// key already exists, updates its limit in place. The conflict handling
// is native to the database, so concurrent calls for the same key cannot
// race a read-then-branch into duplicate rows.
func (s *Store) UpsertBudget(ctx context.Context, b *ledger.Budget) error {
	query := `
		INSERT INTO budgets (user_id, category, "limit", month, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		ON CONFLICT (user_id, category, month)
		DO UPDATE SET "limit" = EXCLUDED."limit", updated_at = now()
		RETURNING id, created_at, updated_at
	`

	return database.WithTenant(ctx, s.db, b.TenantID, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, query,
			b.TenantID,
			b.Category,
			b.Limit,
			b.Month,
		).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return fmt.Errorf("upserting budget: %w", err)
		}

		return nil
	})
}

func (s *Store) BudgetsByMonth(ctx context.Context, tenantID uuid.UUID, month time.Time) ([]*ledger.Budget, error) {
	query := `SELECT ` + selectBudgetColumns + `
		FROM budgets
		WHERE user_id = $1 AND month = $2
		ORDER BY category ASC`

	var budgets []*ledger.Budget

	err := database.WithTenant(ctx, s.db, tenantID, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, tenantID, month)
		if err != nil {
			return fmt.Errorf("listing budgets: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			b, err := scanBudget(rows)
			if err != nil {
				return fmt.Errorf("scanning budget: %w", err)
			}

			budgets = append(budgets, b)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return budgets, nil
}

func (s *Store) DeleteBudget(ctx context.Context, tenantID, id uuid.UUID) (*ledger.Budget, error) {
	query := `
		DELETE FROM budgets
		WHERE id = $1 AND user_id = $2
		RETURNING ` + selectBudgetColumns

	var budget *ledger.Budget

	err := database.WithTenant(ctx, s.db, tenantID, func(tx *sql.Tx) error {
		b, err := scanBudget(tx.QueryRowContext(ctx, query, id, tenantID))
		if err != nil {
			if err == sql.ErrNoRows {
				return ledger.ErrNotFound
			}

			return fmt.Errorf("deleting budget: %w", err)
		}

		budget = b

		return nil
	})
	if err != nil {
		return nil, err
	}

	return budget, nil
}

// CategorySpending aggregates the month's expenses by category in SQL,
// so monetary sums stay exact decimals end to end.
func (s *Store) CategorySpending(ctx context.Context, tenantID uuid.UUID, start, end time.Time) ([]accounting.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total, COUNT(*) AS count
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
		GROUP BY category
		ORDER BY category ASC
	`

	var totals []accounting.CategoryTotal

	err := database.WithTenant(ctx, s.db, tenantID, func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, query, tenantID, start, end)
		if err != nil {
			return fmt.Errorf("aggregating category spending: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var ct accounting.CategoryTotal
			if err := rows.Scan(&ct.Category, &ct.Total, &ct.Count); err != nil {
				return fmt.Errorf("scanning category total: %w", err)
			}

			totals = append(totals, ct)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return totals, nil
}

func (s *Store) TotalSpending(ctx context.Context, tenantID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
	`

	var total decimal.Decimal

	err := database.WithTenant(ctx, s.db, tenantID, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, tenantID, start, end).Scan(&total); err != nil {
			return fmt.Errorf("aggregating total spending: %w", err)
		}

		return nil
	})
	if err != nil {
		return decimal.Zero, err
	}

	return total, nil
}
