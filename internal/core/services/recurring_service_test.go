package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/core/services"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRecurringFixture(t *testing.T) (context.Context, *MockRecurringRepository, *MockTransactionRepository, *MockAccountRepository, *services.RecurringService, string, string) {
	t.Helper()
	ctx := context.Background()
	recurringRepo := new(MockRecurringRepository)
	transactionRepo := new(MockTransactionRepository)
	accountRepo := new(MockAccountRepository)
	service := services.NewRecurringService(recurringRepo, transactionRepo, accountRepo)
	ownerID := uuid.NewString()
	accountID := uuid.NewString()
	accountRepo.On("FindAccountsByIDs", ctx, mock.Anything).Return(map[string]domain.Account{
		accountID: {AccountID: accountID, OwnerID: ownerID, Active: true, CurrencyCode: "BRL"},
	}, nil).Maybe()
	return ctx, recurringRepo, transactionRepo, accountRepo, service, ownerID, accountID
}

func TestCreateInstallmentsMonthlySeries(t *testing.T) {
	ctx, recurringRepo, transactionRepo, _, service, ownerID, accountID := newRecurringFixture(t)

	recurringRepo.On("SaveRecurringTransaction", ctx, mock.Anything).Return(nil)
	transactionRepo.On("SaveTransaction", ctx, mock.Anything, mock.Anything).Return(nil)
	transactionRepo.On("SaveTransactionsBulk", ctx, mock.Anything).Return(nil)

	start := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	recurring, installments, err := service.CreateInstallments(ctx, ownerID, dto.CreateInstallmentsRequest{
		TotalInstallments: 12,
		StartInstallment:  1,
		StartDate:         start,
		Frequency:         domain.Monthly,
		Value:             decimal.NewFromInt(200),
		Description:       "gym membership",
		TransactionType:   domain.Expense,
		InitialStatus:     domain.StatusPending,
		OriginAccountID:   &accountID,
	})

	require.NoError(t, err)
	require.Len(t, installments, 12)
	assert.Equal(t, 12, recurring.InstallmentsTotal)

	for i, txn := range installments {
		number := i + 1
		assert.Equal(t, fmt.Sprintf("gym membership [%d/12]", number), txn.Description)
		require.NotNil(t, txn.InstallmentNumber)
		assert.Equal(t, number, *txn.InstallmentNumber)
		require.NotNil(t, txn.RecurringID)
		assert.Equal(t, recurring.RecurringID, *txn.RecurringID)
		// Monthly stepping keeps the day of month when possible.
		expected := time.Date(2025, time.January+time.Month(i), 15, 0, 0, 0, 0, time.UTC)
		assert.True(t, txn.Date.Equal(expected), "installment %d: got %s want %s", number, txn.Date, expected)
	}
}

func TestCreateInstallmentsMonthEndClamping(t *testing.T) {
	ctx, recurringRepo, transactionRepo, _, service, ownerID, accountID := newRecurringFixture(t)

	recurringRepo.On("SaveRecurringTransaction", ctx, mock.Anything).Return(nil)
	transactionRepo.On("SaveTransaction", ctx, mock.Anything, mock.Anything).Return(nil)
	transactionRepo.On("SaveTransactionsBulk", ctx, mock.Anything).Return(nil)

	start := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	_, installments, err := service.CreateInstallments(ctx, ownerID, dto.CreateInstallmentsRequest{
		TotalInstallments: 3,
		StartInstallment:  1,
		StartDate:         start,
		Frequency:         domain.Monthly,
		Value:             decimal.NewFromInt(50),
		Description:       "subscription",
		TransactionType:   domain.Expense,
		InitialStatus:     domain.StatusPending,
		OriginAccountID:   &accountID,
	})

	require.NoError(t, err)
	require.Len(t, installments, 3)
	// Jan 31 -> Feb 28 (clamped) -> Mar 28 (stepping from the clamped date).
	assert.Equal(t, time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC), installments[1].Date)
	assert.Equal(t, time.Date(2025, time.March, 28, 0, 0, 0, 0, time.UTC), installments[2].Date)
}

func TestCreateInstallmentsOnlyFirstCarriesInitialStatus(t *testing.T) {
	ctx, recurringRepo, transactionRepo, _, service, ownerID, accountID := newRecurringFixture(t)

	recurringRepo.On("SaveRecurringTransaction", ctx, mock.Anything).Return(nil)
	// The COMPLETED first installment must come through SaveTransaction with
	// its balance delta; the rest go through the bulk path with none.
	transactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Status == domain.StatusCompleted && txn.CompletionDate != nil
	}), changesEqual(map[string]string{accountID: "-100"})).Return(nil)
	transactionRepo.On("SaveTransactionsBulk", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		for _, txn := range txns {
			if txn.Status != domain.StatusPending {
				return false
			}
		}
		return len(txns) == 5
	})).Return(nil)

	_, installments, err := service.CreateInstallments(ctx, ownerID, dto.CreateInstallmentsRequest{
		TotalInstallments: 6,
		StartInstallment:  1,
		StartDate:         time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		Frequency:         domain.Monthly,
		Value:             decimal.NewFromInt(100),
		Description:       "loan payment",
		TransactionType:   domain.Expense,
		InitialStatus:     domain.StatusCompleted,
		OriginAccountID:   &accountID,
	})

	require.NoError(t, err)
	require.Len(t, installments, 6)
	transactionRepo.AssertExpectations(t)
}

func TestCreateInstallmentsStartOffset(t *testing.T) {
	ctx, recurringRepo, transactionRepo, _, service, ownerID, accountID := newRecurringFixture(t)

	recurringRepo.On("SaveRecurringTransaction", ctx, mock.Anything).Return(nil)
	transactionRepo.On("SaveTransaction", ctx, mock.Anything, mock.Anything).Return(nil)
	transactionRepo.On("SaveTransactionsBulk", ctx, mock.Anything).Return(nil)

	_, installments, err := service.CreateInstallments(ctx, ownerID, dto.CreateInstallmentsRequest{
		TotalInstallments: 10,
		StartInstallment:  4,
		StartDate:         time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		Frequency:         domain.Weekly,
		Value:             decimal.NewFromInt(30),
		Description:       "course",
		TransactionType:   domain.Expense,
		InitialStatus:     domain.StatusPending,
		OriginAccountID:   &accountID,
	})

	require.NoError(t, err)
	// Installments 4 through 10 inclusive.
	require.Len(t, installments, 7)
	assert.Equal(t, 4, *installments[0].InstallmentNumber)
	assert.Equal(t, 10, *installments[6].InstallmentNumber)
	assert.Equal(t, "course [4/10]", installments[0].Description)
}

func TestCreateInstallmentsRejectsStartBeyondTotal(t *testing.T) {
	ctx, _, _, _, service, ownerID, accountID := newRecurringFixture(t)

	_, _, err := service.CreateInstallments(ctx, ownerID, dto.CreateInstallmentsRequest{
		TotalInstallments: 3,
		StartInstallment:  5,
		StartDate:         time.Now(),
		Frequency:         domain.Monthly,
		Value:             decimal.NewFromInt(10),
		Description:       "bad series",
		TransactionType:   domain.Expense,
		InitialStatus:     domain.StatusPending,
		OriginAccountID:   &accountID,
	})

	require.ErrorIs(t, err, apperrors.ErrValidation)
}
