package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// WithTenant runs fn inside a transaction whose tenant security context
// has been established for the row-level-security policies. set_config
// with is_local=true scopes the setting to this transaction only, so a
// reused pooled connection can never carry another tenant's context.
func WithTenant(ctx context.Context, db *sql.DB, tenantID uuid.UUID, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "SELECT set_config('app.current_tenant', $1, true)", tenantID.String()); err != nil {
		return fmt.Errorf("setting tenant context: %w", err)
	}

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
