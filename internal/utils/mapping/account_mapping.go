package mapping

import (
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account.
// CurrencyCode is denormalized read-side data and is not persisted on the
// account row, so it is dropped here.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:      d.AccountID,
		OwnerID:        d.OwnerID,
		BankID:         d.BankID,
		AccountTypeID:  d.AccountTypeID,
		CountryCode:    d.CountryCode,
		InitialBalance: d.InitialBalance,
		Balance:        d.Balance,
		Active:         d.Active,
		DeactivatedAt:  d.DeactivatedAt,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account, attaching the
// currency code resolved from the account's country.
func ToDomainAccount(m models.Account, currencyCode string) domain.Account {
	return domain.Account{
		AccountID:      m.AccountID,
		OwnerID:        m.OwnerID,
		BankID:         m.BankID,
		AccountTypeID:  m.AccountTypeID,
		CountryCode:    m.CountryCode,
		CurrencyCode:   currencyCode,
		InitialBalance: m.InitialBalance,
		Balance:        m.Balance,
		Active:         m.Active,
		DeactivatedAt:  m.DeactivatedAt,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBank converts a domain Bank to a model Bank
func ToModelBank(d domain.Bank) models.Bank {
	return models.Bank{
		BankID:      d.BankID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBank converts a model Bank to a domain Bank
func ToDomainBank(m models.Bank) domain.Bank {
	return domain.Bank{
		BankID:      m.BankID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAccountType converts a domain AccountType to a model AccountType
func ToModelAccountType(d domain.AccountType) models.AccountType {
	return models.AccountType{
		AccountTypeID: d.AccountTypeID,
		Name:          d.Name,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccountType converts a model AccountType to a domain AccountType
func ToDomainAccountType(m models.AccountType) domain.AccountType {
	return domain.AccountType{
		AccountTypeID: m.AccountTypeID,
		Name:          m.Name,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCountry converts a domain Country to a model Country
func ToModelCountry(d domain.Country) models.Country {
	return models.Country{
		Code:         d.Code,
		CurrencyCode: d.CurrencyCode,
		CurrencyName: d.CurrencyName,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCountry converts a model Country to a domain Country
func ToDomainCountry(m models.Country) domain.Country {
	return domain.Country{
		Code:         m.Code,
		CurrencyCode: m.CurrencyCode,
		CurrencyName: m.CurrencyName,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
