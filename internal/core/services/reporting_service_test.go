package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportingFixture struct {
	ctx             context.Context
	accountRepo     *MockAccountRepository
	transactionRepo *MockTransactionRepository
	exchangeRateSvc *MockExchangeRateSvc
	service         *services.ReportingService
	ownerID         string
	accountID       string
}

func newReportingFixture(t *testing.T) *reportingFixture {
	t.Helper()
	f := &reportingFixture{
		ctx:             context.Background(),
		accountRepo:     new(MockAccountRepository),
		transactionRepo: new(MockTransactionRepository),
		exchangeRateSvc: new(MockExchangeRateSvc),
		ownerID:         uuid.NewString(),
		accountID:       uuid.NewString(),
	}
	f.service = services.NewReportingService(f.accountRepo, f.transactionRepo, f.exchangeRateSvc)
	return f
}

func (f *reportingFixture) expectAccount(initial, live string) {
	account := &domain.Account{
		AccountID:      f.accountID,
		OwnerID:        f.ownerID,
		CurrencyCode:   "BRL",
		InitialBalance: decimal.RequireFromString(initial),
		Balance:        decimal.RequireFromString(live),
		Active:         true,
	}
	f.accountRepo.On("FindAccountByID", f.ctx, f.accountID).Return(account, nil)
}

func (f *reportingFixture) completedExpense(value string, date, completed time.Time) domain.Transaction {
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		OwnerID:         f.ownerID,
		Type:            domain.Expense,
		Status:          domain.StatusCompleted,
		OriginAccountID: &f.accountID,
		Value:           decimal.RequireFromString(value),
		Date:            date,
		CompletionDate:  &completed,
	}
}

func TestGetBalanceAsOfRealModeCountsOnlyCompleted(t *testing.T) {
	f := newReportingFixture(t)
	now := time.Now()
	f.expectAccount("1000", "900")
	f.transactionRepo.On("FindLedgerTransactionsByAccount", f.ctx, f.accountID).Return([]domain.Transaction{
		f.completedExpense("100", now.AddDate(0, 0, -5), now.AddDate(0, 0, -5)),
		{
			TransactionID:   uuid.NewString(),
			OwnerID:         f.ownerID,
			Type:            domain.Expense,
			Status:          domain.StatusPending,
			OriginAccountID: &f.accountID,
			Value:           decimal.NewFromInt(50),
			Date:            now.AddDate(0, 0, -1),
		},
	}, nil)

	resp, err := f.service.GetBalanceAsOf(f.ctx, f.ownerID, f.accountID, now, false)

	require.NoError(t, err)
	assert.True(t, resp.CalculatedBalance.Equal(decimal.NewFromInt(900)), "got %s", resp.CalculatedBalance)
	assert.True(t, resp.Balance.Equal(resp.CalculatedBalance), "live balance should match replay")
}

func TestGetBalanceAsOfForecastIncludesScheduled(t *testing.T) {
	f := newReportingFixture(t)
	now := time.Now()
	f.expectAccount("1000", "900")
	f.transactionRepo.On("FindLedgerTransactionsByAccount", f.ctx, f.accountID).Return([]domain.Transaction{
		f.completedExpense("100", now.AddDate(0, 0, -5), now.AddDate(0, 0, -5)),
		{
			TransactionID:   uuid.NewString(),
			OwnerID:         f.ownerID,
			Type:            domain.Expense,
			Status:          domain.StatusOverdue,
			OriginAccountID: &f.accountID,
			Value:           decimal.NewFromInt(50),
			Date:            now.AddDate(0, 0, -1),
		},
	}, nil)

	resp, err := f.service.GetBalanceAsOf(f.ctx, f.ownerID, f.accountID, now, true)

	require.NoError(t, err)
	// 1000 - 100 completed - 50 overdue-but-scheduled = 850.
	assert.True(t, resp.CalculatedBalance.Equal(decimal.NewFromInt(850)), "got %s", resp.CalculatedBalance)
	assert.True(t, resp.IsForecasted)
}

func TestGetBalanceAsOfCutoffExcludesLaterCompletions(t *testing.T) {
	f := newReportingFixture(t)
	now := time.Now()
	cutoff := now.AddDate(0, 0, -10)
	f.expectAccount("1000", "900")
	f.transactionRepo.On("FindLedgerTransactionsByAccount", f.ctx, f.accountID).Return([]domain.Transaction{
		f.completedExpense("100", now.AddDate(0, 0, -5), now.AddDate(0, 0, -5)), // After cutoff
	}, nil)

	resp, err := f.service.GetBalanceAsOf(f.ctx, f.ownerID, f.accountID, cutoff, false)

	require.NoError(t, err)
	assert.True(t, resp.CalculatedBalance.Equal(decimal.NewFromInt(1000)), "got %s", resp.CalculatedBalance)
}

func TestAuditAccountBalanceDetectsDrift(t *testing.T) {
	f := newReportingFixture(t)
	now := time.Now()
	f.expectAccount("1000", "930") // Live says 930, replay will say 900
	f.transactionRepo.On("FindLedgerTransactionsByAccount", f.ctx, f.accountID).Return([]domain.Transaction{
		f.completedExpense("100", now, now),
	}, nil)

	audit, err := f.service.AuditAccountBalance(f.ctx, f.ownerID, f.accountID)

	require.NoError(t, err)
	assert.False(t, audit.Consistent)
	assert.True(t, audit.ReplayedBalance.Equal(decimal.NewFromInt(900)))
	assert.True(t, audit.Drift.Equal(decimal.NewFromInt(30)), "got drift %s", audit.Drift)
}

func TestAuditAccountBalanceConsistent(t *testing.T) {
	f := newReportingFixture(t)
	now := time.Now()
	f.expectAccount("1000", "900")
	f.transactionRepo.On("FindLedgerTransactionsByAccount", f.ctx, f.accountID).Return([]domain.Transaction{
		f.completedExpense("100", now, now),
	}, nil)

	audit, err := f.service.AuditAccountBalance(f.ctx, f.ownerID, f.accountID)

	require.NoError(t, err)
	assert.True(t, audit.Consistent)
	assert.True(t, audit.Drift.IsZero())
}

func TestAuditHidesForeignAccounts(t *testing.T) {
	f := newReportingFixture(t)
	foreign := &domain.Account{AccountID: f.accountID, OwnerID: uuid.NewString()}
	f.accountRepo.On("FindAccountByID", f.ctx, f.accountID).Return(foreign, nil)

	_, err := f.service.AuditAccountBalance(f.ctx, f.ownerID, f.accountID)

	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestGetTypeSummarySkipsUnconvertibleRows(t *testing.T) {
	f := newReportingFixture(t)
	now := time.Now()
	from := now.AddDate(0, -1, 0)

	brlAcct := f.accountID
	gbpAcct := uuid.NewString()
	completed := f.completedExpense("100", now.AddDate(0, 0, -2), now.AddDate(0, 0, -2))
	pendingGBP := domain.Transaction{
		TransactionID:   uuid.NewString(),
		OwnerID:         f.ownerID,
		Type:            domain.Expense,
		Status:          domain.StatusPending,
		OriginAccountID: &gbpAcct,
		Value:           decimal.NewFromInt(40),
		Date:            now.AddDate(0, 0, -1),
	}

	f.transactionRepo.On("FindTransactionsByTypeInRange", f.ctx, f.ownerID, domain.Expense, from, now).
		Return([]domain.Transaction{completed, pendingGBP}, nil)
	f.accountRepo.On("FindAccountsByIDs", f.ctx, mock.Anything).Return(map[string]domain.Account{
		brlAcct: {AccountID: brlAcct, OwnerID: f.ownerID, CurrencyCode: "BRL"},
		gbpAcct: {AccountID: gbpAcct, OwnerID: f.ownerID, CurrencyCode: "GBP"},
	}, nil)
	f.exchangeRateSvc.On("Convert", f.ctx, decimal.RequireFromString("100"), "BRL", "EUR").
		Return(decimal.RequireFromString("18.00"), nil)
	f.exchangeRateSvc.On("Convert", f.ctx, decimal.NewFromInt(40), "GBP", "EUR").
		Return(decimal.Zero, apperrors.ErrRateUnavailable)

	summary, err := f.service.GetTypeSummary(f.ctx, f.ownerID, domain.Expense, from, now, "EUR")

	require.NoError(t, err)
	// The GBP row is skipped entirely; the BRL row counts in both totals.
	assert.True(t, summary.Completed.Equal(decimal.RequireFromString("18.00")), "got %s", summary.Completed)
	assert.True(t, summary.Forecasted.Equal(decimal.RequireFromString("18.00")), "got %s", summary.Forecasted)
}

func TestGetAccountsOverview(t *testing.T) {
	f := newReportingFixture(t)
	now := time.Now()
	otherAcct := uuid.NewString()
	accounts := []domain.Account{
		{AccountID: f.accountID, OwnerID: f.ownerID, CurrencyCode: "BRL", InitialBalance: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100), Active: true},
		{AccountID: otherAcct, OwnerID: f.ownerID, CurrencyCode: "EUR", InitialBalance: decimal.NewFromInt(200), Balance: decimal.NewFromInt(200), Active: true},
	}
	f.accountRepo.On("ListAccounts", f.ctx, f.ownerID, false).Return(accounts, nil)
	f.transactionRepo.On("FindLedgerTransactionsByAccount", f.ctx, f.accountID).Return([]domain.Transaction{}, nil)
	f.transactionRepo.On("FindLedgerTransactionsByAccount", f.ctx, otherAcct).Return([]domain.Transaction{}, nil)

	overview, err := f.service.GetAccountsOverview(f.ctx, f.ownerID, now, false)

	require.NoError(t, err)
	require.Len(t, overview, 2)
	assert.True(t, overview[0].CalculatedBalance.Equal(decimal.NewFromInt(100)))
	assert.True(t, overview[1].CalculatedBalance.Equal(decimal.NewFromInt(200)))
}
