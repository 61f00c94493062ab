package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	"github.com/CesarBerbel/personal_finance_app/internal/models"
	"github.com/CesarBerbel/personal_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionColumns = `
	transaction_id, owner_id, transaction_type, status,
	origin_account_id, destination_account_id, category_id,
	value, exchange_rate, converted_value,
	date, completion_date, description,
	recurring_id, installment_number,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxTransactionRepository persists transactions. Every write that carries
// balance changes locks the affected accounts, writes the row, and applies
// the deltas inside one database transaction.
type PgxTransactionRepository struct {
	pgxRepo
	accountRepo portsrepo.AccountBalanceUpdater
}

func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountBalanceUpdater) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pgxRepo{Pool: pool}, accountRepo}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OwnerID,
		&m.TransactionType,
		&m.Status,
		&m.OriginAccountID,
		&m.DestinationAccountID,
		&m.CategoryID,
		&m.Value,
		&m.ExchangeRate,
		&m.ConvertedValue,
		&m.Date,
		&m.CompletionDate,
		&m.Description,
		&m.RecurringID,
		&m.InstallmentNumber,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Transaction{}, err
	}
	return mapping.ToDomainTransaction(m), nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE transaction_id = $1;
	`
	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) FindLedgerTransactionsByAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE origin_account_id = $1 OR destination_account_id = $1
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger transactions for account %s: %w", accountID, err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *PgxTransactionRepository) FindTransactionsByTypeInRange(ctx context.Context, ownerID string, txType domain.TransactionType, from, to time.Time) ([]domain.Transaction, error) {
	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE owner_id = $1 AND transaction_type = $2 AND date >= $3 AND date <= $4
		ORDER BY date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID, string(txType), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by type for owner %s: %w", ownerID, err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

// SaveTransaction inserts the row and applies balanceChanges atomically.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	m := mapping.ToModelTransaction(txn)

	return r.withBalanceTx(ctx, balanceChanges, txn.LastUpdatedBy, txn.LastUpdatedAt, func(tx pgx.Tx) error {
		query := `
			INSERT INTO transactions (` + transactionColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
		`
		_, err := tx.Exec(ctx, query, transactionArgs(m)...)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
		}
		return nil
	})
}

// UpdateTransaction rewrites the row and applies balanceChanges atomically.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction, balanceChanges map[string]decimal.Decimal) error {
	m := mapping.ToModelTransaction(txn)

	return r.withBalanceTx(ctx, balanceChanges, txn.LastUpdatedBy, txn.LastUpdatedAt, func(tx pgx.Tx) error {
		query := `
			UPDATE transactions
			SET transaction_type = $2, status = $3,
			    origin_account_id = $4, destination_account_id = $5, category_id = $6,
			    value = $7, exchange_rate = $8, converted_value = $9,
			    date = $10, completion_date = $11, description = $12,
			    last_updated_at = $13, last_updated_by = $14
			WHERE transaction_id = $1;
		`
		cmdTag, err := tx.Exec(ctx, query,
			m.TransactionID,
			m.TransactionType,
			m.Status,
			m.OriginAccountID,
			m.DestinationAccountID,
			m.CategoryID,
			m.Value,
			m.ExchangeRate,
			m.ConvertedValue,
			m.Date,
			m.CompletionDate,
			m.Description,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", m.TransactionID))
		}
		return nil
	})
}

// DeleteTransaction removes the row and applies balanceChanges (the reversal
// of a COMPLETED row's effect) atomically.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string, balanceChanges map[string]decimal.Decimal, userID string, now time.Time) error {
	return r.withBalanceTx(ctx, balanceChanges, userID, now, func(tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
		if err != nil {
			return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
		}
		return nil
	})
}

// SaveTransactionsBulk inserts ledger-inert rows in one batch. No balance
// bookkeeping happens here; callers must not pass COMPLETED rows.
func (r *PgxTransactionRepository) SaveTransactionsBulk(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
	`
	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(query, transactionArgs(mapping.ToModelTransaction(txn))...)
	}

	return r.inTx(ctx, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("failed to insert transaction batch: %w", err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("failed to close transaction batch: %w", err)
		}
		return nil
	})
}

// MarkTransactionsOverdue relabels PENDING rows due strictly before the given
// date. A single idempotent UPDATE: rerunning it the same day changes zero
// rows. Balances are untouched since PENDING -> OVERDUE is ledger-inert.
func (r *PgxTransactionRepository) MarkTransactionsOverdue(ctx context.Context, before time.Time, now time.Time) (int64, error) {
	query := `
		UPDATE transactions
		SET status = $1, last_updated_at = $2
		WHERE status = $3 AND date < $4;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, string(domain.StatusOverdue), now, string(domain.StatusPending), before)
	if err != nil {
		return 0, fmt.Errorf("failed to mark transactions overdue: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}

// withBalanceTx runs the row write and the balance deltas in one database
// transaction, locking the affected account rows first so concurrent ledger
// writes serialize per account.
func (r *PgxTransactionRepository) withBalanceTx(ctx context.Context, balanceChanges map[string]decimal.Decimal, userID string, now time.Time, rowWrite func(tx pgx.Tx) error) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if len(balanceChanges) > 0 {
			accountIDs := make([]string, 0, len(balanceChanges))
			for accountID := range balanceChanges {
				accountIDs = append(accountIDs, accountID)
			}
			if _, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs); err != nil {
				return err
			}
		}

		if err := rowWrite(tx); err != nil {
			return err
		}

		return r.accountRepo.UpdateAccountBalancesInTx(ctx, tx, balanceChanges, userID, now)
	})
}

func transactionArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID,
		m.OwnerID,
		m.TransactionType,
		m.Status,
		m.OriginAccountID,
		m.DestinationAccountID,
		m.CategoryID,
		m.Value,
		m.ExchangeRate,
		m.ConvertedValue,
		m.Date,
		m.CompletionDate,
		m.Description,
		m.RecurringID,
		m.InstallmentNumber,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	}
}
