package accounting

import (
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerEffect returns the signed effect the transaction has on the given
// account's balance once completed: negative for a debit leg, positive for a
// credit leg, zero when the transaction does not touch the account.
// This is used in both services and repositories to keep the delta rules in
// one place.
func LedgerEffect(txn domain.Transaction, accountID string) decimal.Decimal {
	return txn.LedgerDeltas()[accountID]
}

// BalanceUntil replays a transaction history against one account and returns
// its balance as of the cutoff date.
//
// Real mode (isForecasted=false) counts only COMPLETED transactions by their
// completion date. Forecast mode additionally counts transactions scheduled
// on or before the cutoff regardless of status, plus completed-early rows
// whose completion date precedes the cutoff even if their scheduled date does
// not.
//
// The result must equal the account's live Balance field when cutoff is "now"
// and isForecasted is false; the live field is a materialized cache of this
// calculation.
func BalanceUntil(initialBalance decimal.Decimal, accountID string, txns []domain.Transaction, cutoff time.Time, isForecasted bool) decimal.Decimal {
	total := initialBalance
	for _, txn := range txns {
		if !countsTowardBalance(txn, cutoff, isForecasted) {
			continue
		}
		total = total.Add(LedgerEffect(txn, accountID))
	}
	return total
}

func countsTowardBalance(txn domain.Transaction, cutoff time.Time, isForecasted bool) bool {
	completedByCutoff := txn.Status == domain.StatusCompleted &&
		txn.CompletionDate != nil && !txn.CompletionDate.After(cutoff)

	if !isForecasted {
		return completedByCutoff
	}
	return !txn.Date.After(cutoff) || completedByCutoff
}
