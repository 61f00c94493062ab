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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxRegistryRepository persists the lookup entities: banks, account types,
// countries.
type PgxRegistryRepository struct {
	pgxRepo
}

func newPgxRegistryRepository(pool *pgxpool.Pool) portsrepo.RegistryRepositoryFacade {
	return &PgxRegistryRepository{pgxRepo{Pool: pool}}
}

var _ portsrepo.RegistryRepositoryFacade = (*PgxRegistryRepository)(nil)

func (r *PgxRegistryRepository) SaveBank(ctx context.Context, bank domain.Bank) error {
	m := mapping.ToModelBank(bank)
	query := `
		INSERT INTO banks (bank_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.BankID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return duplicateOr(err, fmt.Sprintf("bank %q", m.Name), "failed to save bank")
	}
	return nil
}

func (r *PgxRegistryRepository) ListBanks(ctx context.Context) ([]domain.Bank, error) {
	rows, err := r.Pool.Query(ctx, `SELECT bank_id, name, created_at, created_by, last_updated_at, last_updated_by FROM banks ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query banks: %w", err)
	}
	defer rows.Close()

	banks := []domain.Bank{}
	for rows.Next() {
		var m models.Bank
		if err := rows.Scan(&m.BankID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan bank row: %w", err)
		}
		banks = append(banks, mapping.ToDomainBank(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank rows: %w", err)
	}
	return banks, nil
}

func (r *PgxRegistryRepository) SaveAccountType(ctx context.Context, accountType domain.AccountType) error {
	m := mapping.ToModelAccountType(accountType)
	query := `
		INSERT INTO account_types (account_type_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query, m.AccountTypeID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return duplicateOr(err, fmt.Sprintf("account type %q", m.Name), "failed to save account type")
	}
	return nil
}

func (r *PgxRegistryRepository) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	rows, err := r.Pool.Query(ctx, `SELECT account_type_id, name, created_at, created_by, last_updated_at, last_updated_by FROM account_types ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query account types: %w", err)
	}
	defer rows.Close()

	accountTypes := []domain.AccountType{}
	for rows.Next() {
		var m models.AccountType
		if err := rows.Scan(&m.AccountTypeID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan account type row: %w", err)
		}
		accountTypes = append(accountTypes, mapping.ToDomainAccountType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account type rows: %w", err)
	}
	return accountTypes, nil
}

func (r *PgxRegistryRepository) SaveCountry(ctx context.Context, country domain.Country) error {
	m := mapping.ToModelCountry(country)
	query := `
		INSERT INTO countries (code, currency_code, currency_name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.Code, m.CurrencyCode, m.CurrencyName, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return duplicateOr(err, fmt.Sprintf("country %q", m.Code), "failed to save country")
	}
	return nil
}

func (r *PgxRegistryRepository) FindCountryByCode(ctx context.Context, code string) (*domain.Country, error) {
	query := `
		SELECT code, currency_code, currency_name, created_at, created_by, last_updated_at, last_updated_by
		FROM countries
		WHERE code = $1;
	`
	var m models.Country
	err := r.Pool.QueryRow(ctx, query, code).Scan(&m.Code, &m.CurrencyCode, &m.CurrencyName, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find country %s: %w", code, err)
	}
	country := mapping.ToDomainCountry(m)
	return &country, nil
}

func (r *PgxRegistryRepository) ListCountries(ctx context.Context) ([]domain.Country, error) {
	rows, err := r.Pool.Query(ctx, `SELECT code, currency_code, currency_name, created_at, created_by, last_updated_at, last_updated_by FROM countries ORDER BY code;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query countries: %w", err)
	}
	defer rows.Close()

	countries := []domain.Country{}
	for rows.Next() {
		var m models.Country
		if err := rows.Scan(&m.Code, &m.CurrencyCode, &m.CurrencyName, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan country row: %w", err)
		}
		countries = append(countries, mapping.ToDomainCountry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating country rows: %w", err)
	}
	return countries, nil
}

func duplicateOr(err error, what, msg string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s already exists", apperrors.ErrDuplicate, what)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
