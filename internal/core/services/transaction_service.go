package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/CesarBerbel/personal_finance_app/internal/core/ports/services"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
	"github.com/CesarBerbel/personal_finance_app/internal/utils/dates"
	"github.com/google/uuid"
	"log/slog"
)

// TransactionService is the write path of the ledger. Every persist goes
// through domain.ResolveLedgerOp so the row write and the account balance
// deltas it implies are handed to the repository as one unit.
type TransactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	categoryRepo    portsrepo.CategoryRepositoryFacade
	exchangeRateSvc portssvc.ExchangeRateSvcFacade
}

func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	exchangeRateSvc portssvc.ExchangeRateSvcFacade,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		exchangeRateSvc: exchangeRateSvc,
	}
}

func (s *TransactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		OwnerID:              ownerID,
		Type:                 req.Type,
		Status:               req.Status,
		OriginAccountID:      req.OriginAccountID,
		DestinationAccountID: req.DestinationAccountID,
		CategoryID:           req.CategoryID,
		Value:                req.Value,
		Date:                 req.Date,
		Description:          req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if txn.Status == domain.StatusCompleted {
		txn.CompletionDate = &now
	}

	if err := s.validateTransaction(ctx, &txn); err != nil {
		return nil, err
	}

	op := domain.ResolveLedgerOp(nil, txn)
	if err := s.transactionRepo.SaveTransaction(ctx, txn, op.BalanceChanges()); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.String("status", string(txn.Status)))
	return &txn, nil
}

func (s *TransactionService) CreateTransfer(ctx context.Context, ownerID string, req dto.CreateTransferRequest) (*domain.Transaction, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}
	if req.OriginAccountID == req.DestinationAccountID {
		return nil, fmt.Errorf("%w: origin and destination accounts must differ", apperrors.ErrValidation)
	}

	now := time.Now()
	origin := req.OriginAccountID
	destination := req.DestinationAccountID
	txn := domain.Transaction{
		TransactionID:        uuid.NewString(),
		OwnerID:              ownerID,
		Type:                 domain.Transfer,
		Status:               req.Status,
		OriginAccountID:      &origin,
		DestinationAccountID: &destination,
		Value:                req.Value,
		Date:                 req.Date,
		Description:          req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     ownerID,
			LastUpdatedAt: now,
			LastUpdatedBy: ownerID,
		},
	}
	if txn.Status == domain.StatusCompleted {
		txn.CompletionDate = &now
	}

	// validateTransaction resolves the conversion when currencies differ; a
	// transfer created COMPLETED fails outright if no rate is obtainable.
	if err := s.validateTransaction(ctx, &txn); err != nil {
		return nil, err
	}

	op := domain.ResolveLedgerOp(nil, txn)
	if err := s.transactionRepo.SaveTransaction(ctx, txn, op.BalanceChanges()); err != nil {
		s.LogError(ctx, err, "Failed to save transfer", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	s.LogInfo(ctx, "Transfer created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *TransactionService) GetTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if txn.OwnerID != ownerID {
		return nil, apperrors.NewNotFoundError("transaction not found")
	}
	return txn, nil
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, ownerID string, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	if err := dto.Validate(req); err != nil {
		return nil, err
	}

	old, err := s.GetTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}

	updated := *old
	if req.Status != nil {
		updated.Status = *req.Status
	}
	if req.OriginAccountID != nil {
		updated.OriginAccountID = req.OriginAccountID
	}
	if req.DestinationAccountID != nil {
		updated.DestinationAccountID = req.DestinationAccountID
	}
	if req.CategoryID != nil {
		updated.CategoryID = req.CategoryID
	}
	if req.Value != nil {
		updated.Value = *req.Value
	}
	if req.ExchangeRate != nil {
		updated.ExchangeRate = req.ExchangeRate
	}
	if req.Date != nil {
		updated.Date = *req.Date
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}

	// Completion date follows the status transition.
	now := time.Now()
	switch {
	case old.Status != domain.StatusCompleted && updated.Status == domain.StatusCompleted:
		updated.CompletionDate = &now
	case old.Status == domain.StatusCompleted && updated.Status != domain.StatusCompleted:
		updated.CompletionDate = nil
	}

	// Keep the converted amount in sync when the value or the rate of a
	// converted transfer changes.
	if updated.Type == domain.Transfer && updated.ExchangeRate != nil {
		converted := updated.Value.Mul(*updated.ExchangeRate).Round(2)
		updated.ConvertedValue = &converted
	}

	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = ownerID

	if err := s.validateTransaction(ctx, &updated); err != nil {
		return nil, err
	}
	if err := s.ensureConversionForCompletion(ctx, &updated); err != nil {
		return nil, err
	}

	op := domain.ResolveLedgerOp(old, updated)
	if err := s.transactionRepo.UpdateTransaction(ctx, updated, op.BalanceChanges()); err != nil {
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("transaction_id", transactionID),
		slog.String("ledger_op", string(op.Kind)))
	return &updated, nil
}

func (s *TransactionService) CompleteTransaction(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	old, err := s.GetTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return nil, err
	}
	if old.Status == domain.StatusCompleted {
		return nil, fmt.Errorf("%w: transaction is already completed", apperrors.ErrConflict)
	}

	now := time.Now()
	updated := *old
	updated.Status = domain.StatusCompleted
	updated.CompletionDate = &now
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = ownerID

	if err := s.ensureConversionForCompletion(ctx, &updated); err != nil {
		return nil, err
	}

	op := domain.ResolveLedgerOp(old, updated)
	if err := s.transactionRepo.UpdateTransaction(ctx, updated, op.BalanceChanges()); err != nil {
		s.LogError(ctx, err, "Failed to complete transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to complete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction completed", slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	txn, err := s.GetTransactionByID(ctx, ownerID, transactionID)
	if err != nil {
		return err
	}

	op := domain.ResolveDeleteOp(*txn)
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID, op.BalanceChanges(), ownerID, time.Now()); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("transaction_id", transactionID),
		slog.String("ledger_op", string(op.Kind)))
	return nil
}

// MarkOverdue flips every PENDING transaction dated before today to OVERDUE.
// The transition is ledger-inert and the underlying UPDATE is idempotent, so
// the sweep can run any number of times per day.
func (s *TransactionService) MarkOverdue(ctx context.Context) (int64, error) {
	now := time.Now()
	count, err := s.transactionRepo.MarkTransactionsOverdue(ctx, dates.Today(), now)
	if err != nil {
		s.LogError(ctx, err, "Failed to mark transactions overdue")
		return 0, fmt.Errorf("failed to mark transactions overdue: %w", err)
	}
	if count > 0 {
		s.LogInfo(ctx, "Marked transactions overdue", slog.Int64("count", count))
	}
	return count, nil
}

// validateTransaction enforces the structural rules of a transaction and, for
// transfers, resolves the currency conversion when one is needed and
// obtainable. The transaction is mutated in place (ExchangeRate,
// ConvertedValue).
func (s *TransactionService) validateTransaction(ctx context.Context, txn *domain.Transaction) error {
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, txn.Type)
	}
	if !txn.Status.Valid() {
		return fmt.Errorf("%w: invalid status %q", apperrors.ErrValidation, txn.Status)
	}
	if !txn.Value.IsPositive() {
		return fmt.Errorf("%w: value must be positive", apperrors.ErrValidation)
	}

	switch txn.Type {
	case domain.Expense:
		if txn.OriginAccountID == nil {
			return fmt.Errorf("%w: expense requires an origin account", apperrors.ErrValidation)
		}
		if txn.DestinationAccountID != nil {
			return fmt.Errorf("%w: expense cannot have a destination account", apperrors.ErrValidation)
		}
	case domain.Income:
		if txn.DestinationAccountID == nil {
			return fmt.Errorf("%w: income requires a destination account", apperrors.ErrValidation)
		}
		if txn.OriginAccountID != nil {
			return fmt.Errorf("%w: income cannot have an origin account", apperrors.ErrValidation)
		}
	case domain.Transfer:
		if txn.OriginAccountID == nil || txn.DestinationAccountID == nil {
			return fmt.Errorf("%w: transfer requires origin and destination accounts", apperrors.ErrValidation)
		}
		if *txn.OriginAccountID == *txn.DestinationAccountID {
			return fmt.Errorf("%w: origin and destination accounts must differ", apperrors.ErrValidation)
		}
	}

	accounts, err := s.loadAccounts(ctx, txn)
	if err != nil {
		return err
	}
	for _, account := range accounts {
		if account.OwnerID != txn.OwnerID {
			return apperrors.NewNotFoundError("account not found")
		}
		if !account.Active {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, account.AccountID)
		}
	}

	if txn.CategoryID != nil {
		category, err := s.categoryRepo.FindCategoryByID(ctx, *txn.CategoryID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: unknown category", apperrors.ErrValidation)
			}
			return fmt.Errorf("failed to resolve category: %w", err)
		}
		if category.OwnerID != txn.OwnerID {
			return fmt.Errorf("%w: unknown category", apperrors.ErrValidation)
		}
		if txn.Type != domain.Transfer && category.Type != txn.Type {
			return fmt.Errorf("%w: category type %s does not match transaction type %s", apperrors.ErrValidation, category.Type, txn.Type)
		}
	}

	if txn.Type == domain.Transfer {
		return s.resolveTransferConversion(ctx, txn, accounts)
	}
	return nil
}

// resolveTransferConversion fixes ExchangeRate and ConvertedValue on a
// cross-currency transfer. A same-currency transfer carries neither. A rate
// failure at creation is tolerated for non-completed transfers; the rate is
// then resolved at completion time.
func (s *TransactionService) resolveTransferConversion(ctx context.Context, txn *domain.Transaction, accounts map[string]domain.Account) error {
	origin, destination := accounts[*txn.OriginAccountID], accounts[*txn.DestinationAccountID]
	if origin.CurrencyCode == destination.CurrencyCode {
		txn.ExchangeRate = nil
		txn.ConvertedValue = nil
		return nil
	}

	if txn.ExchangeRate != nil {
		converted := txn.Value.Mul(*txn.ExchangeRate).Round(2)
		txn.ConvertedValue = &converted
		return nil
	}

	rate, err := s.exchangeRateSvc.GetConversionRate(ctx, origin.CurrencyCode, destination.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateUnavailable) && txn.Status != domain.StatusCompleted {
			s.LogInfo(ctx, "Rate unavailable at creation, deferring to completion",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("from", origin.CurrencyCode),
				slog.String("to", destination.CurrencyCode))
			return nil
		}
		return err
	}

	converted := txn.Value.Mul(rate).Round(2)
	txn.ExchangeRate = &rate
	txn.ConvertedValue = &converted
	return nil
}

// ensureConversionForCompletion guarantees a cross-currency transfer being
// completed carries a converted value, fetching the rate now if it is still
// missing. Failure aborts the completion; nothing is persisted.
func (s *TransactionService) ensureConversionForCompletion(ctx context.Context, txn *domain.Transaction) error {
	if txn.Status != domain.StatusCompleted || txn.Type != domain.Transfer || txn.ConvertedValue != nil {
		return nil
	}
	crossCurrency, err := s.isCrossCurrency(ctx, *txn)
	if err != nil {
		return err
	}
	if !crossCurrency {
		return nil
	}

	accounts, err := s.loadAccounts(ctx, txn)
	if err != nil {
		return err
	}
	origin, destination := accounts[*txn.OriginAccountID], accounts[*txn.DestinationAccountID]
	rate, err := s.exchangeRateSvc.GetConversionRate(ctx, origin.CurrencyCode, destination.CurrencyCode)
	if err != nil {
		return err
	}
	converted := txn.Value.Mul(rate).Round(2)
	txn.ExchangeRate = &rate
	txn.ConvertedValue = &converted
	return nil
}

func (s *TransactionService) isCrossCurrency(ctx context.Context, txn domain.Transaction) (bool, error) {
	if txn.Type != domain.Transfer || txn.OriginAccountID == nil || txn.DestinationAccountID == nil {
		return false, nil
	}
	accounts, err := s.loadAccounts(ctx, &txn)
	if err != nil {
		return false, err
	}
	origin, destination := accounts[*txn.OriginAccountID], accounts[*txn.DestinationAccountID]
	return origin.CurrencyCode != destination.CurrencyCode, nil
}

func (s *TransactionService) loadAccounts(ctx context.Context, txn *domain.Transaction) (map[string]domain.Account, error) {
	ids := make([]string, 0, 2)
	if txn.OriginAccountID != nil {
		ids = append(ids, *txn.OriginAccountID)
	}
	if txn.DestinationAccountID != nil {
		ids = append(ids, *txn.DestinationAccountID)
	}
	if len(ids) == 0 {
		return map[string]domain.Account{}, nil
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, id := range ids {
		if _, ok := accounts[id]; !ok {
			return nil, apperrors.NewNotFoundError("account not found")
		}
	}
	return accounts, nil
}
