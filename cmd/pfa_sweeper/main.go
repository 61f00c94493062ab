// pfa_sweeper runs the daily overdue sweep: every PENDING transaction dated
// before today is flipped to OVERDUE. The sweep is idempotent, so it is safe
// to schedule more often than daily.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"os"

	portssvc "github.com/CesarBerbel/personal_finance_app/internal/core/ports/services"
	"github.com/CesarBerbel/personal_finance_app/internal/core/services"
	"github.com/CesarBerbel/personal_finance_app/internal/gateways/exchangerate"
	"github.com/CesarBerbel/personal_finance_app/internal/platform/config"
	"github.com/CesarBerbel/personal_finance_app/internal/platform/logging"
	"github.com/CesarBerbel/personal_finance_app/internal/repositories/database/pgsql"
	"github.com/CesarBerbel/personal_finance_app/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := logging.IntoCtx(context.Background(), logger)

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		logger.Error("Migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The sweep itself never converts currencies, but the container wants a
	// provider; wire the gateway only when one is configured.
	var rateProvider portssvc.RateProviderSvc
	if cfg.RateGatewayBaseURL != "" {
		rateProvider = exchangerate.NewClient(cfg.RateGatewayBaseURL)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	container := services.NewServiceContainer(cfg, repos, rateProvider)

	count, err := container.TransactionSvc.MarkOverdue(ctx)
	if err != nil {
		logger.Error("Overdue sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Overdue sweep finished", slog.Int64("transactions_marked", count))
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	logger.Info("Database migrations applied")
	return nil
}
