package pgsql

import (
	"context"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgxRepo is embedded by every repository: the shared pool plus the
// transaction-scope helper the ledger write paths run inside.
type pgxRepo struct {
	Pool *pgxpool.Pool
}

// inTx runs fn inside one database transaction: commit when fn returns nil,
// rollback otherwise.
func (r *pgxRepo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}
