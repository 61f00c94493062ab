package mapping

import (
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:        d.TransactionID,
		OwnerID:              d.OwnerID,
		TransactionType:      string(d.Type),
		Status:               string(d.Status),
		OriginAccountID:      d.OriginAccountID,
		DestinationAccountID: d.DestinationAccountID,
		CategoryID:           d.CategoryID,
		Value:                d.Value,
		ExchangeRate:         d.ExchangeRate,
		ConvertedValue:       d.ConvertedValue,
		Date:                 d.Date,
		CompletionDate:       d.CompletionDate,
		Description:          d.Description,
		RecurringID:          d.RecurringID,
		InstallmentNumber:    d.InstallmentNumber,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:        m.TransactionID,
		OwnerID:              m.OwnerID,
		Type:                 domain.TransactionType(m.TransactionType),
		Status:               domain.TransactionStatus(m.Status),
		OriginAccountID:      m.OriginAccountID,
		DestinationAccountID: m.DestinationAccountID,
		CategoryID:           m.CategoryID,
		Value:                m.Value,
		ExchangeRate:         m.ExchangeRate,
		ConvertedValue:       m.ConvertedValue,
		Date:                 m.Date,
		CompletionDate:       m.CompletionDate,
		Description:          m.Description,
		RecurringID:          m.RecurringID,
		InstallmentNumber:    m.InstallmentNumber,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
