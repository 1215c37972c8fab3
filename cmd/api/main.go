package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/kharcha-app/kharcha/internal/accounting"
	"github.com/kharcha-app/kharcha/internal/action"
	"github.com/kharcha-app/kharcha/internal/config"
	"github.com/kharcha-app/kharcha/internal/database"
	kharchaHttp "github.com/kharcha-app/kharcha/internal/http"
	budgetHandler "github.com/kharcha-app/kharcha/internal/http/budget"
	dashboardHandler "github.com/kharcha-app/kharcha/internal/http/dashboard"
	expenseHandler "github.com/kharcha-app/kharcha/internal/http/expense"
	profileHandler "github.com/kharcha-app/kharcha/internal/http/profile"
	"github.com/kharcha-app/kharcha/internal/ledger"
	ledgerStore "github.com/kharcha-app/kharcha/internal/ledger/store"
	"github.com/kharcha-app/kharcha/internal/metrics"
	"github.com/kharcha-app/kharcha/internal/profile"
	profileStore "github.com/kharcha-app/kharcha/internal/profile/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	metrics.Init()

	var (
		store             = ledgerStore.New(db)
		ledgerService     = ledger.NewService(store)
		accountingService = accounting.NewService(store)
		profileService    = profile.NewService(profileStore.New(db))
		actions           = action.NewFacade(ledgerService, accountingService, profileService)
	)

	var (
		expensesH  = expenseHandler.NewHandler(actions)
		budgetsH   = budgetHandler.NewHandler(actions)
		dashboardH = dashboardHandler.NewHandler(actions)
		profileH   = profileHandler.NewHandler(actions)
	)

	router := kharchaHttp.New(
		[]byte(cfg.Auth.JWTSecret),
		cfg.HTTP.AllowedOrigins,
		expensesH,
		budgetsH,
		dashboardH,
		profileH,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
