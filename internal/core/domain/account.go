package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank is a registrable bank/provider entity.
type Bank struct {
	BankID string `json:"bankID"`
	Name   string `json:"name"`
	AuditFields
}

// AccountType is a registrable class of account types
// (e.g. "Checking", "Savings", "Investment").
type AccountType struct {
	AccountTypeID string `json:"accountTypeID"`
	Name          string `json:"name"`
	AuditFields
}

// Country is a registrable country with its 2-letter ISO code and the
// currency accounts in that country are denominated in.
type Country struct {
	Code         string `json:"code"`         // Primary Key, 2-letter ISO code
	CurrencyCode string `json:"currencyCode"` // 3-letter currency code, e.g. "EUR"
	CurrencyName string `json:"currencyName"` // Optional, e.g. "Euro"
	AuditFields
}

// Account is a financial account owned by exactly one user. Balance is the
// authoritative running total maintained by the ledger: it always equals
// InitialBalance plus the net effect of every COMPLETED transaction touching
// the account. InitialBalance is immutable after creation.
type Account struct {
	AccountID      string          `json:"accountID"` // Primary Key (UUID)
	OwnerID        string          `json:"ownerID"`   // FK -> users.user_id
	BankID         string          `json:"bankID"`
	AccountTypeID  string          `json:"accountTypeID"`
	CountryCode    string          `json:"countryCode"`
	CurrencyCode   string          `json:"currencyCode"` // Denormalized from Country at load time
	InitialBalance decimal.Decimal `json:"initialBalance"`
	Balance        decimal.Decimal `json:"balance"`
	Active         bool            `json:"active"` // Soft-delete flag
	DeactivatedAt  *time.Time      `json:"deactivatedAt,omitempty"`
	AuditFields
}
