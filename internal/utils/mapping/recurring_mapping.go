package mapping

import (
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/models"
)

// ToModelRecurringTransaction converts a domain RecurringTransaction to a model RecurringTransaction
func ToModelRecurringTransaction(d domain.RecurringTransaction) models.RecurringTransaction {
	return models.RecurringTransaction{
		RecurringID:          d.RecurringID,
		OwnerID:              d.OwnerID,
		StartDate:            d.StartDate,
		Frequency:            string(d.Frequency),
		InstallmentsTotal:    d.InstallmentsTotal,
		InstallmentsPaid:     d.InstallmentsPaid,
		Value:                d.Value,
		Description:          d.Description,
		TransactionType:      string(d.TransactionType),
		OriginAccountID:      d.OriginAccountID,
		DestinationAccountID: d.DestinationAccountID,
		CategoryID:           d.CategoryID,
		IsActive:             d.IsActive,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecurringTransaction converts a model RecurringTransaction to a domain RecurringTransaction
func ToDomainRecurringTransaction(m models.RecurringTransaction) domain.RecurringTransaction {
	return domain.RecurringTransaction{
		RecurringID:          m.RecurringID,
		OwnerID:              m.OwnerID,
		StartDate:            m.StartDate,
		Frequency:            domain.Frequency(m.Frequency),
		InstallmentsTotal:    m.InstallmentsTotal,
		InstallmentsPaid:     m.InstallmentsPaid,
		Value:                m.Value,
		Description:          m.Description,
		TransactionType:      domain.TransactionType(m.TransactionType),
		OriginAccountID:      m.OriginAccountID,
		DestinationAccountID: m.DestinationAccountID,
		CategoryID:           m.CategoryID,
		IsActive:             m.IsActive,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecurringTransactionSlice converts a slice of model RecurringTransactions to domain form
func ToDomainRecurringTransactionSlice(ms []models.RecurringTransaction) []domain.RecurringTransaction {
	ds := make([]domain.RecurringTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecurringTransaction(m)
	}
	return ds
}
