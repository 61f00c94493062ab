package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	"github.com/CesarBerbel/personal_finance_app/internal/models"
	"github.com/CesarBerbel/personal_finance_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recurringColumns = `
	recurring_id, owner_id, start_date, frequency,
	installments_total, installments_paid, value, description,
	transaction_type, origin_account_id, destination_account_id, category_id,
	is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxRecurringRepository struct {
	pgxRepo
}

func newPgxRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringRepositoryFacade {
	return &PgxRecurringRepository{pgxRepo{Pool: pool}}
}

var _ portsrepo.RecurringRepositoryFacade = (*PgxRecurringRepository)(nil)

func scanRecurring(row pgx.Row) (domain.RecurringTransaction, error) {
	var m models.RecurringTransaction
	err := row.Scan(
		&m.RecurringID,
		&m.OwnerID,
		&m.StartDate,
		&m.Frequency,
		&m.InstallmentsTotal,
		&m.InstallmentsPaid,
		&m.Value,
		&m.Description,
		&m.TransactionType,
		&m.OriginAccountID,
		&m.DestinationAccountID,
		&m.CategoryID,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.RecurringTransaction{}, err
	}
	return mapping.ToDomainRecurringTransaction(m), nil
}

func (r *PgxRecurringRepository) SaveRecurringTransaction(ctx context.Context, recurring domain.RecurringTransaction) error {
	m := mapping.ToModelRecurringTransaction(recurring)

	query := `
		INSERT INTO recurring_transactions (` + recurringColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.RecurringID,
		m.OwnerID,
		m.StartDate,
		m.Frequency,
		m.InstallmentsTotal,
		m.InstallmentsPaid,
		m.Value,
		m.Description,
		m.TransactionType,
		m.OriginAccountID,
		m.DestinationAccountID,
		m.CategoryID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save recurring transaction %s: %w", m.RecurringID, err)
	}
	return nil
}

func (r *PgxRecurringRepository) FindRecurringTransactionByID(ctx context.Context, recurringID string) (*domain.RecurringTransaction, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_transactions
		WHERE recurring_id = $1;
	`
	recurring, err := scanRecurring(r.Pool.QueryRow(ctx, query, recurringID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring transaction %s: %w", recurringID, err)
	}
	return &recurring, nil
}

func (r *PgxRecurringRepository) ListRecurringTransactions(ctx context.Context, ownerID string) ([]domain.RecurringTransaction, error) {
	query := `
		SELECT ` + recurringColumns + `
		FROM recurring_transactions
		WHERE owner_id = $1
		ORDER BY start_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring transactions for owner %s: %w", ownerID, err)
	}
	defer rows.Close()

	series := []domain.RecurringTransaction{}
	for rows.Next() {
		recurring, err := scanRecurring(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recurring transaction row: %w", err)
		}
		series = append(series, recurring)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recurring transaction rows: %w", err)
	}
	return series, nil
}
