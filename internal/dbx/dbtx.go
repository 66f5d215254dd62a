// Package dbx holds the query surface shared by the user, settings, and
// symbol repositories. Repositories depend on DBTX instead of *sql.DB so the
// same code runs standalone or inside a transaction opened by WithTx.
package dbx

import (
	"context"
	"database/sql"
	"fmt"
)

// DBTX is the minimal query interface a repository needs. Both *sql.DB and
// *sql.Tx implement it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction: commit when fn succeeds, rollback when
// it errors or panics (the panic is rethrown). The admin bootstrap tool uses
// it to keep the account insert atomic:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//	    _, err := manager.Users(tx).Create(ctx, user)
//	    return err
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}
