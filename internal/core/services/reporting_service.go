package services

import (
	"context"
	"fmt"
	"time"

	"github.com/CesarBerbel/personal_finance_app/internal/apperrors"
	"github.com/CesarBerbel/personal_finance_app/internal/core/domain"
	portsrepo "github.com/CesarBerbel/personal_finance_app/internal/core/ports/repositories"
	portssvc "github.com/CesarBerbel/personal_finance_app/internal/core/ports/services"
	"github.com/CesarBerbel/personal_finance_app/internal/dto"
	"github.com/CesarBerbel/personal_finance_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"log/slog"
)

// ReportingService answers read-only questions by replaying transaction
// history. It never writes; the live Balance field is treated as a cache to
// be checked against, not a source of truth for these calculations.
type ReportingService struct {
	BaseService
	accountRepo     portsrepo.AccountRepositoryFacade
	transactionRepo portsrepo.TransactionRepositoryFacade
	exchangeRateSvc portssvc.ExchangeRateSvcFacade
}

func NewReportingService(
	accountRepo portsrepo.AccountRepositoryFacade,
	transactionRepo portsrepo.TransactionRepositoryFacade,
	exchangeRateSvc portssvc.ExchangeRateSvcFacade,
) *ReportingService {
	return &ReportingService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		exchangeRateSvc: exchangeRateSvc,
	}
}

func (s *ReportingService) GetBalanceAsOf(ctx context.Context, ownerID string, accountID string, cutoff time.Time, isForecasted bool) (*dto.AccountBalanceResponse, error) {
	account, err := s.ownedAccount(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}
	return s.balanceFor(ctx, account, cutoff, isForecasted)
}

func (s *ReportingService) GetAccountsOverview(ctx context.Context, ownerID string, cutoff time.Time, isForecasted bool) ([]dto.AccountBalanceResponse, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, ownerID, false)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	overview := make([]dto.AccountBalanceResponse, 0, len(accounts))
	for i := range accounts {
		balance, err := s.balanceFor(ctx, &accounts[i], cutoff, isForecasted)
		if err != nil {
			return nil, err
		}
		overview = append(overview, *balance)
	}
	return overview, nil
}

// AuditAccountBalance fully replays the account's COMPLETED history and
// compares the result against the live cached balance. Drift means a write
// skipped the ledger path.
func (s *ReportingService) AuditAccountBalance(ctx context.Context, ownerID string, accountID string) (*dto.BalanceAuditResponse, error) {
	account, err := s.ownedAccount(ctx, ownerID, accountID)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.FindLedgerTransactionsByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger transactions: %w", err)
	}

	replayed := account.InitialBalance
	for _, txn := range txns {
		if txn.Status != domain.StatusCompleted {
			continue
		}
		replayed = replayed.Add(accounting.LedgerEffect(txn, accountID))
	}

	drift := account.Balance.Sub(replayed)
	if !drift.IsZero() {
		s.GetLogger(ctx).Warn("Account balance drift detected",
			slog.String("account_id", accountID),
			slog.String("drift", drift.String()))
	}
	return &dto.BalanceAuditResponse{
		AccountID:       accountID,
		LiveBalance:     account.Balance,
		ReplayedBalance: replayed,
		Drift:           drift,
		Consistent:      drift.IsZero(),
	}, nil
}

// GetTypeSummary totals one transaction type over [from, until] in the
// preferred currency. Completed counts only COMPLETED rows; Forecasted counts
// every row in range. Rows whose currency cannot be converted are skipped
// rather than failing the whole summary.
func (s *ReportingService) GetTypeSummary(ctx context.Context, ownerID string, txnType domain.TransactionType, from, until time.Time, preferredCurrency string) (*dto.TypeSummaryResponse, error) {
	if !txnType.Valid() {
		return nil, fmt.Errorf("%w: invalid transaction type %q", apperrors.ErrValidation, txnType)
	}
	txns, err := s.transactionRepo.FindTransactionsByTypeInRange(ctx, ownerID, txnType, from, until)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	currencies, err := s.accountCurrencies(ctx, txns)
	if err != nil {
		return nil, err
	}

	completed := decimal.Zero
	forecasted := decimal.Zero
	for _, txn := range txns {
		currency, ok := currencies[valueAccountID(txn)]
		if !ok {
			continue // Severed account link; no currency to convert from
		}
		converted, err := s.exchangeRateSvc.Convert(ctx, txn.Value, currency, preferredCurrency)
		if err != nil {
			s.LogInfo(ctx, "Skipping unconvertible transaction in summary",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("currency", currency))
			continue
		}
		forecasted = forecasted.Add(converted)
		if txn.Status == domain.StatusCompleted {
			completed = completed.Add(converted)
		}
	}

	return &dto.TypeSummaryResponse{
		Type:         txnType,
		CurrencyCode: preferredCurrency,
		Completed:    completed,
		Forecasted:   forecasted,
	}, nil
}

func (s *ReportingService) balanceFor(ctx context.Context, account *domain.Account, cutoff time.Time, isForecasted bool) (*dto.AccountBalanceResponse, error) {
	txns, err := s.transactionRepo.FindLedgerTransactionsByAccount(ctx, account.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger transactions: %w", err)
	}
	calculated := accounting.BalanceUntil(account.InitialBalance, account.AccountID, txns, cutoff, isForecasted)
	return &dto.AccountBalanceResponse{
		AccountID:         account.AccountID,
		CurrencyCode:      account.CurrencyCode,
		Balance:           account.Balance,
		CalculatedBalance: calculated,
		AsOf:              cutoff,
		IsForecasted:      isForecasted,
	}, nil
}

func (s *ReportingService) ownedAccount(ctx context.Context, ownerID string, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.OwnerID != ownerID {
		return nil, apperrors.NewNotFoundError("account not found")
	}
	return account, nil
}

// valueAccountID picks the account whose currency Value is denominated in:
// origin for EXPENSE/TRANSFER, destination for INCOME.
func valueAccountID(txn domain.Transaction) string {
	switch txn.Type {
	case domain.Income:
		if txn.DestinationAccountID != nil {
			return *txn.DestinationAccountID
		}
	default:
		if txn.OriginAccountID != nil {
			return *txn.OriginAccountID
		}
	}
	return ""
}

func (s *ReportingService) accountCurrencies(ctx context.Context, txns []domain.Transaction) (map[string]string, error) {
	idSet := make(map[string]struct{})
	for _, txn := range txns {
		if id := valueAccountID(txn); id != "" {
			idSet[id] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return map[string]string{}, nil
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	currencies := make(map[string]string, len(accounts))
	for id, account := range accounts {
		currencies[id] = account.CurrencyCode
	}
	return currencies, nil
}
