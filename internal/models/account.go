package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank is a registry row for the institution an account belongs to.
type Bank struct {
	BankID string `db:"bank_id"`
	Name   string `db:"name"`
	AuditFields
}

// AccountType is a registry row (checking, savings, wallet, ...).
type AccountType struct {
	AccountTypeID string `db:"account_type_id"`
	Name          string `db:"name"`
	AuditFields
}

// Country ties an account to its currency.
type Country struct {
	Code         string `db:"code"`
	CurrencyCode string `db:"currency_code"`
	CurrencyName string `db:"currency_name"`
	AuditFields
}

// Account represents a user's financial account. Balance is the live cached
// balance, mutated only together with its transaction rows.
type Account struct {
	AccountID      string          `db:"account_id"`
	OwnerID        string          `db:"owner_id"`
	BankID         string          `db:"bank_id"`
	AccountTypeID  string          `db:"account_type_id"`
	CountryCode    string          `db:"country_code"`
	InitialBalance decimal.Decimal `db:"initial_balance"`
	Balance        decimal.Decimal `db:"balance"`
	Active         bool            `db:"active"`
	DeactivatedAt  *time.Time      `db:"deactivated_at"` // Nullable
	AuditFields
}
