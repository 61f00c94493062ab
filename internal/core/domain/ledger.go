package domain

import "github.com/shopspring/decimal"

// LedgerOpKind classifies the ledger effect of persisting a transaction
// change, derived from diffing the previously persisted row against the new
// one.
type LedgerOpKind string

const (
	// LedgerNoOp: no balance mutation (e.g. PENDING -> OVERDUE, or a
	// COMPLETED row whose monetary fields did not change).
	LedgerNoOp LedgerOpKind = "NO_OP"
	// LedgerCompletion: the transaction became COMPLETED; apply its deltas.
	LedgerCompletion LedgerOpKind = "COMPLETION"
	// LedgerReversal: the transaction left COMPLETED; undo the deltas of the
	// old snapshot (not the new one, in case accounts/value also changed).
	LedgerReversal LedgerOpKind = "REVERSAL"
	// LedgerReapplication: the transaction stayed COMPLETED but its value or
	// accounts changed; undo the old snapshot, apply the new one.
	LedgerReapplication LedgerOpKind = "REAPPLICATION"
)

// LedgerOp describes the balance mutation a transaction persist requires.
// Reverse holds the old snapshot whose effect must be undone; Apply holds the
// new snapshot whose effect must be applied. Either may be nil depending on
// Kind.
type LedgerOp struct {
	Kind    LedgerOpKind
	Reverse *Transaction
	Apply   *Transaction
}

// ResolveLedgerOp diffs the previously persisted transaction (nil when the
// row is new) against the state about to be persisted and decides which
// ledger mutation, if any, the persist must carry.
func ResolveLedgerOp(old *Transaction, updated Transaction) LedgerOp {
	wasCompleted := old != nil && old.Status == StatusCompleted
	isCompleted := updated.Status == StatusCompleted

	switch {
	case !wasCompleted && isCompleted:
		next := updated
		return LedgerOp{Kind: LedgerCompletion, Apply: &next}
	case wasCompleted && !isCompleted:
		return LedgerOp{Kind: LedgerReversal, Reverse: old}
	case wasCompleted && isCompleted && monetaryFieldsChanged(*old, updated):
		next := updated
		return LedgerOp{Kind: LedgerReapplication, Reverse: old, Apply: &next}
	default:
		return LedgerOp{Kind: LedgerNoOp}
	}
}

// ResolveDeleteOp decides the ledger mutation required before removing a
// transaction row: a COMPLETED row has its own effect reversed, anything else
// is ledger-inert.
func ResolveDeleteOp(txn Transaction) LedgerOp {
	if txn.Status == StatusCompleted {
		prev := txn
		return LedgerOp{Kind: LedgerReversal, Reverse: &prev}
	}
	return LedgerOp{Kind: LedgerNoOp}
}

func monetaryFieldsChanged(old, updated Transaction) bool {
	if !old.Value.Equal(updated.Value) {
		return true
	}
	if !decimalPtrEqual(old.ConvertedValue, updated.ConvertedValue) {
		return true
	}
	if !stringPtrEqual(old.OriginAccountID, updated.OriginAccountID) {
		return true
	}
	if !stringPtrEqual(old.DestinationAccountID, updated.DestinationAccountID) {
		return true
	}
	return false
}

// LedgerDeltas returns the per-account balance deltas applied when this
// transaction completes:
//
//	EXPENSE:  origin -Value
//	INCOME:   destination +Value
//	TRANSFER: origin -Value, destination +ConvertedValue (or +Value)
//
// Legs whose account link was severed (SET NULL on account deletion) are
// skipped rather than failing; those rows keep history but no ledger link.
func (t Transaction) LedgerDeltas() map[string]decimal.Decimal {
	deltas := make(map[string]decimal.Decimal, 2)
	switch t.Type {
	case Expense:
		if t.OriginAccountID != nil {
			addDelta(deltas, *t.OriginAccountID, t.Value.Neg())
		}
	case Income:
		if t.DestinationAccountID != nil {
			addDelta(deltas, *t.DestinationAccountID, t.Value)
		}
	case Transfer:
		if t.OriginAccountID != nil {
			addDelta(deltas, *t.OriginAccountID, t.Value.Neg())
		}
		if t.DestinationAccountID != nil {
			addDelta(deltas, *t.DestinationAccountID, t.DestinationCredit())
		}
	}
	return deltas
}

// BalanceChanges nets the op's reversal and application deltas into a single
// per-account change set. Accounts whose net change is zero are dropped so a
// reapplication with no effective difference touches nothing.
func (op LedgerOp) BalanceChanges() map[string]decimal.Decimal {
	changes := make(map[string]decimal.Decimal, 2)
	if op.Reverse != nil {
		for accountID, delta := range op.Reverse.LedgerDeltas() {
			addDelta(changes, accountID, delta.Neg())
		}
	}
	if op.Apply != nil {
		for accountID, delta := range op.Apply.LedgerDeltas() {
			addDelta(changes, accountID, delta)
		}
	}
	for accountID, delta := range changes {
		if delta.IsZero() {
			delete(changes, accountID)
		}
	}
	return changes
}

func addDelta(deltas map[string]decimal.Decimal, accountID string, delta decimal.Decimal) {
	if current, ok := deltas[accountID]; ok {
		deltas[accountID] = current.Add(delta)
		return
	}
	deltas[accountID] = delta
}

func decimalPtrEqual(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
