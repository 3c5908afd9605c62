package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/budgetron-org/budgetron-sub001/internal/bankaccount"
	bankAccountStore "github.com/budgetron-org/budgetron-sub001/internal/bankaccount/store"
	"github.com/budgetron-org/budgetron-sub001/internal/category"
	categoryStore "github.com/budgetron-org/budgetron-sub001/internal/category/store"
	"github.com/budgetron-org/budgetron-sub001/internal/categorizer"
	"github.com/budgetron-org/budgetron-sub001/internal/config"
	"github.com/budgetron-org/budgetron-sub001/internal/database"
	budgetronHttp "github.com/budgetron-org/budgetron-sub001/internal/http"
	bankAccountHandler "github.com/budgetron-org/budgetron-sub001/internal/http/bankaccount"
	categoryHandler "github.com/budgetron-org/budgetron-sub001/internal/http/category"
	importHandler "github.com/budgetron-org/budgetron-sub001/internal/http/importofx"
	reportHandler "github.com/budgetron-org/budgetron-sub001/internal/http/report"
	txHandler "github.com/budgetron-org/budgetron-sub001/internal/http/transaction"
	"github.com/budgetron-org/budgetron-sub001/internal/importer"
	"github.com/budgetron-org/budgetron-sub001/internal/report"
	reportStore "github.com/budgetron-org/budgetron-sub001/internal/report/store"
	"github.com/budgetron-org/budgetron-sub001/internal/statement"
	"github.com/budgetron-org/budgetron-sub001/internal/transaction"
	txStore "github.com/budgetron-org/budgetron-sub001/internal/transaction/store"
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

	matcher, err := newMatcher(cfg)
	if err != nil {
		slog.Error("failed to set up categorizer", "error", err)
		os.Exit(1)
	}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		categoryService    = category.NewService(categoryStore.New(db))
		bankAccountService = bankaccount.NewService(bankAccountStore.New(db))
		reportService      = report.NewService(reportStore.New(db))
		categorizerService = categorizer.NewService(matcher, cfg.Categorizer.Timeout)
		importService      = importer.NewService(statement.NewReader(), transaction.NewNormalizer(), categorizerService)
	)

	var (
		transactionH = txHandler.NewHandler(transactionService)
		importH      = importHandler.NewHandler(importService, transactionService, bankAccountService, categoryService, cfg.Upload.MaxBytes)
		categoryH    = categoryHandler.NewHandler(categoryService)
		bankAccountH = bankAccountHandler.NewHandler(bankAccountService)
		reportH      = reportHandler.NewHandler(reportService)
	)

	router := budgetronHttp.New(cfg.Auth.Secret, transactionH, importH, categoryH, bankAccountH, reportH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// newMatcher picks the AI matcher when a Gemini key is configured and
// falls back to local keyword matching otherwise.
func newMatcher(cfg *config.Config) (categorizer.Matcher, error) {
	if cfg.Categorizer.GeminiAPIKey == "" {
		slog.Info("no Gemini API key configured, using keyword matcher")
		return categorizer.NewKeywordMatcher(), nil
	}

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.Categorizer.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return categorizer.NewAIMatcher(client, cfg.Categorizer.Model), nil
}
