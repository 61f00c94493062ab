package services

import (
	"context"
	"fmt"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
	"github.com/google/uuid"
	"log/slog"
)

// RecurringService expands installment templates into series of transactions.
// The series header is created once; the generated installments live their
// own lives afterwards and are never re-derived from the header.
type RecurringService struct {
	BaseService
	recurringRepo   portsrepo.RecurringRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
}

func NewRecurringService(
	recurringRepo portsrepo.RecurringRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
) *RecurringService {
	return &RecurringService{
		recurringRepo:   recurringRepo,
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// CreateInstallments creates the series header plus one transaction per
// installment from StartInstallment through TotalInstallments, dates stepped
// by the frequency from StartDate. Only the first installment carries the
// requested initial status; the rest are created PENDING, so at most one
// installment has a ledger effect at creation time.
func (s *RecurringService) CreateInstallments(ctx context.Context, ownerID string, req dto.CreateInstallmentsRequest) (*domain.RecurringTransaction, []domain.Transaction, error) {
	if err := dto.Validate(req); err != nil {
		return nil, nil, err
	}
	if req.StartInstallment > req.TotalInstallments {
		return nil, nil, fmt.Errorf("%w: start installment %d exceeds total %d", apperrors.ErrValidation, req.StartInstallment, req.TotalInstallments)
	}
	if !req.Value.IsPositive() {
		return nil, nil, fmt.Errorf("%w: value must be positive", apperrors.ErrValidation)
	}
	if err := s.validateLegs(ctx, ownerID, req); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     ownerID,
		LastUpdatedAt: now,
		LastUpdatedBy: ownerID,
	}

	recurring := domain.RecurringTransaction{
		RecurringID:          uuid.NewString(),
		OwnerID:              ownerID,
		StartDate:            req.StartDate,
		Frequency:            req.Frequency,
		InstallmentsTotal:    req.TotalInstallments,
		InstallmentsPaid:     req.StartInstallment,
		Value:                req.Value,
		Description:          req.Description,
		TransactionType:      req.TransactionType,
		OriginAccountID:      req.OriginAccountID,
		DestinationAccountID: req.DestinationAccountID,
		CategoryID:           req.CategoryID,
		IsActive:             true,
		AuditFields:          audit,
	}
	if err := s.recurringRepo.SaveRecurringTransaction(ctx, recurring); err != nil {
		s.LogError(ctx, err, "Failed to save recurring transaction", slog.String("recurring_id", recurring.RecurringID))
		return nil, nil, fmt.Errorf("failed to save recurring transaction: %w", err)
	}

	installments := make([]domain.Transaction, 0, req.TotalInstallments-req.StartInstallment+1)
	date := req.StartDate
	for i := req.StartInstallment; i <= req.TotalInstallments; i++ {
		number := i
		txn := domain.Transaction{
			TransactionID:        uuid.NewString(),
			OwnerID:              ownerID,
			Type:                 req.TransactionType,
			Status:               domain.StatusPending,
			OriginAccountID:      req.OriginAccountID,
			DestinationAccountID: req.DestinationAccountID,
			CategoryID:           req.CategoryID,
			Value:                req.Value,
			Date:                 date,
			Description:          fmt.Sprintf("%s [%d/%d]", req.Description, i, req.TotalInstallments),
			RecurringID:          &recurring.RecurringID,
			InstallmentNumber:    &number,
			AuditFields:          audit,
		}
		installments = append(installments, txn)
		date = req.Frequency.Advance(date)
	}

	// Only the first installment may carry the initial status; a COMPLETED
	// first installment applies its balance effect immediately.
	first := &installments[0]
	first.Status = req.InitialStatus
	if first.Status == domain.StatusCompleted {
		first.CompletionDate = &now
	}
	op := domain.ResolveLedgerOp(nil, *first)
	if err := s.transactionRepo.SaveTransaction(ctx, *first, op.BalanceChanges()); err != nil {
		s.LogError(ctx, err, "Failed to save first installment", slog.String("recurring_id", recurring.RecurringID))
		return nil, nil, fmt.Errorf("failed to save first installment: %w", err)
	}

	if len(installments) > 1 {
		if err := s.transactionRepo.SaveTransactionsBulk(ctx, installments[1:]); err != nil {
			s.LogError(ctx, err, "Failed to save installments", slog.String("recurring_id", recurring.RecurringID))
			return nil, nil, fmt.Errorf("failed to save installments: %w", err)
		}
	}

	s.LogInfo(ctx, "Installment series created",
		slog.String("recurring_id", recurring.RecurringID),
		slog.Int("installments", len(installments)))
	return &recurring, installments, nil
}

func (s *RecurringService) GetRecurringByID(ctx context.Context, ownerID string, recurringID string) (*domain.RecurringTransaction, error) {
	recurring, err := s.recurringRepo.FindRecurringTransactionByID(ctx, recurringID)
	if err != nil {
		return nil, err
	}
	if recurring.OwnerID != ownerID {
		return nil, apperrors.NewNotFoundError("recurring transaction not found")
	}
	return recurring, nil
}

func (s *RecurringService) ListRecurring(ctx context.Context, ownerID string) ([]domain.RecurringTransaction, error) {
	return s.recurringRepo.ListRecurringTransactions(ctx, ownerID)
}

func (s *RecurringService) validateLegs(ctx context.Context, ownerID string, req dto.CreateInstallmentsRequest) error {
	switch req.TransactionType {
	case domain.Expense:
		if req.OriginAccountID == nil {
			return fmt.Errorf("%w: expense requires an origin account", apperrors.ErrValidation)
		}
	case domain.Income:
		if req.DestinationAccountID == nil {
			return fmt.Errorf("%w: income requires a destination account", apperrors.ErrValidation)
		}
	case domain.Transfer:
		if req.OriginAccountID == nil || req.DestinationAccountID == nil {
			return fmt.Errorf("%w: transfer requires origin and destination accounts", apperrors.ErrValidation)
		}
	}

	ids := make([]string, 0, 2)
	if req.OriginAccountID != nil {
		ids = append(ids, *req.OriginAccountID)
	}
	if req.DestinationAccountID != nil {
		ids = append(ids, *req.DestinationAccountID)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	for _, id := range ids {
		account, ok := accounts[id]
		if !ok || account.OwnerID != ownerID {
			return apperrors.NewNotFoundError("account not found")
		}
		if !account.Active {
			return fmt.Errorf("%w: account %s is inactive", apperrors.ErrValidation, id)
		}
	}
	return nil
}
