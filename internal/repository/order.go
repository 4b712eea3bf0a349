package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// swapOrderIndexes exchanges the order_index values of two sibling rows in a
// single transaction. Both updates apply or neither does.
func swapOrderIndexes(ctx context.Context, db *sqlx.DB, table, idA string, orderA int, idB string, orderB int) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin swap on %s: %w", table, err)
	}
	defer tx.Rollback() //nolint:errcheck

	query := fmt.Sprintf("UPDATE %s SET order_index = $1 WHERE id = $2", table)
	if _, err := tx.ExecContext(ctx, query, orderA, idA); err != nil {
		return fmt.Errorf("swap %s order (first): %w", table, err)
	}
	if _, err := tx.ExecContext(ctx, query, orderB, idB); err != nil {
		return fmt.Errorf("swap %s order (second): %w", table, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit swap on %s: %w", table, err)
	}
	return nil
}
