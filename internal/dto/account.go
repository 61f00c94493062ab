package dto

import "github.com/shopspring/decimal"

// CreateAccountRequest creates a new account. The balance starts at
// InitialBalance and is maintained by the ledger from then on.
type CreateAccountRequest struct {
	BankID         string          `json:"bankID" validate:"required"`
	AccountTypeID  string          `json:"accountTypeID" validate:"required"`
	CountryCode    string          `json:"countryCode" validate:"required,len=2,alpha"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
}

// UpdateAccountRequest updates an account's descriptive links or its active
// flag. The initial balance is immutable and the running balance belongs to
// the ledger; neither is updatable here.
type UpdateAccountRequest struct {
	BankID        *string `json:"bankID,omitempty"`
	AccountTypeID *string `json:"accountTypeID,omitempty"`
	Active        *bool   `json:"active,omitempty"`
}
