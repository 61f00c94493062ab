package accounting_test

import (
	"testing"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/CesarBerbel/personal_finance_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func timePtr(t time.Time) *time.Time { return &t }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

const (
	accA = "acc-a"
	accB = "acc-b"
)

func completedExpense(value string, origin string, completed time.Time) domain.Transaction {
	return domain.Transaction{
		Type:            domain.Expense,
		Status:          domain.StatusCompleted,
		OriginAccountID: strPtr(origin),
		Value:           decimal.RequireFromString(value),
		Date:            completed,
		CompletionDate:  timePtr(completed),
	}
}

func TestLedgerEffect(t *testing.T) {
	income := domain.Transaction{
		Type:                 domain.Income,
		DestinationAccountID: strPtr(accA),
		Value:                decimal.RequireFromString("500.00"),
	}
	assert.True(t, accounting.LedgerEffect(income, accA).Equal(decimal.RequireFromString("500.00")))
	assert.True(t, accounting.LedgerEffect(income, accB).IsZero())

	transfer := domain.Transaction{
		Type:                 domain.Transfer,
		OriginAccountID:      strPtr(accA),
		DestinationAccountID: strPtr(accB),
		Value:                decimal.RequireFromString("1000.00"),
		ConvertedValue:       decPtr(decimal.RequireFromString("180.00")),
	}
	assert.True(t, accounting.LedgerEffect(transfer, accA).Equal(decimal.RequireFromString("-1000.00")))
	assert.True(t, accounting.LedgerEffect(transfer, accB).Equal(decimal.RequireFromString("180.00")))
}

func TestLedgerEffect_SeveredAccountLink(t *testing.T) {
	// SET NULL left this expense without an origin; it must be ledger-inert,
	// not a crash.
	orphan := domain.Transaction{
		Type:   domain.Expense,
		Status: domain.StatusCompleted,
		Value:  decimal.RequireFromString("42.00"),
	}
	assert.True(t, accounting.LedgerEffect(orphan, accA).IsZero())
}

func TestBalanceUntil_RealModeCountsOnlyCompleted(t *testing.T) {
	initial := decimal.RequireFromString("1000.00")
	cutoff := day(2025, time.June, 30)

	txns := []domain.Transaction{
		completedExpense("100.00", accA, day(2025, time.June, 10)),
		{
			// Pending expense inside the window: ignored in real mode.
			Type:            domain.Expense,
			Status:          domain.StatusPending,
			OriginAccountID: strPtr(accA),
			Value:           decimal.RequireFromString("999.00"),
			Date:            day(2025, time.June, 20),
		},
		// Completed after the cutoff: ignored.
		completedExpense("50.00", accA, day(2025, time.July, 2)),
	}

	got := accounting.BalanceUntil(initial, accA, txns, cutoff, false)
	assert.True(t, got.Equal(decimal.RequireFromString("900.00")), "got %s", got)
}

func TestBalanceUntil_ForecastIncludesScheduledPending(t *testing.T) {
	initial := decimal.RequireFromString("1000.00")
	cutoff := day(2025, time.June, 30)

	txns := []domain.Transaction{
		{
			Type:            domain.Expense,
			Status:          domain.StatusPending,
			OriginAccountID: strPtr(accA),
			Value:           decimal.RequireFromString("200.00"),
			Date:            day(2025, time.June, 20),
		},
		{
			Type:            domain.Expense,
			Status:          domain.StatusOverdue,
			OriginAccountID: strPtr(accA),
			Value:           decimal.RequireFromString("100.00"),
			Date:            day(2025, time.May, 1),
		},
		{
			// Scheduled beyond the cutoff: excluded even from the forecast.
			Type:                 domain.Income,
			Status:               domain.StatusPending,
			DestinationAccountID: strPtr(accA),
			Value:                decimal.RequireFromString("5000.00"),
			Date:                 day(2025, time.July, 15),
		},
	}

	got := accounting.BalanceUntil(initial, accA, txns, cutoff, true)
	assert.True(t, got.Equal(decimal.RequireFromString("700.00")), "got %s", got)
}

func TestBalanceUntil_ForecastIncludesCompletedEarly(t *testing.T) {
	initial := decimal.RequireFromString("0.00")
	cutoff := day(2025, time.June, 30)

	// Scheduled for July but paid in June: the forecast as of June 30 must
	// include it via its completion date.
	early := domain.Transaction{
		Type:                 domain.Income,
		Status:               domain.StatusCompleted,
		DestinationAccountID: strPtr(accA),
		Value:                decimal.RequireFromString("300.00"),
		Date:                 day(2025, time.July, 5),
		CompletionDate:       timePtr(day(2025, time.June, 25)),
	}

	got := accounting.BalanceUntil(initial, accA, []domain.Transaction{early}, cutoff, true)
	assert.True(t, got.Equal(decimal.RequireFromString("300.00")), "got %s", got)
}

func TestBalanceUntil_TransferUsesConvertedValueForDestination(t *testing.T) {
	completed := day(2025, time.March, 1)
	transfer := domain.Transaction{
		Type:                 domain.Transfer,
		Status:               domain.StatusCompleted,
		OriginAccountID:      strPtr(accA),
		DestinationAccountID: strPtr(accB),
		Value:                decimal.RequireFromString("1000.00"),
		ConvertedValue:       decPtr(decimal.RequireFromString("180.00")),
		Date:                 completed,
		CompletionDate:       timePtr(completed),
	}

	cutoff := day(2025, time.December, 31)
	origin := accounting.BalanceUntil(decimal.RequireFromString("1000.00"), accA, []domain.Transaction{transfer}, cutoff, false)
	dest := accounting.BalanceUntil(decimal.Zero, accB, []domain.Transaction{transfer}, cutoff, false)

	assert.True(t, origin.IsZero(), "origin got %s", origin)
	assert.True(t, dest.Equal(decimal.RequireFromString("180.00")), "dest got %s", dest)
}
