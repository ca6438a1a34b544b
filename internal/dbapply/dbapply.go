// Package dbapply pushes generated DDL to a development database.
package dbapply

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// driverFor maps a crouton dialect name to its database/sql driver.
func driverFor(dialect string) (string, error) {
	switch dialect {
	case "sqlite":
		return "sqlite3", nil
	case "pg":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unknown dialect %q", dialect)
	}
}

// Apply executes ddl against the database at dsn inside a transaction.
// For sqlite the dsn is a file path; for pg a connection string.
func Apply(ctx context.Context, dialect, dsn, ddl string) error {
	driver, err := driverFor(dialect)
	if err != nil {
		return err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to apply DDL: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit DDL: %w", err)
	}

	return nil
}
