package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	bankAccountHandler "github.com/budgetron-org/budgetron-sub001/internal/http/bankaccount"
	categoryHandler "github.com/budgetron-org/budgetron-sub001/internal/http/category"
	importHandler "github.com/budgetron-org/budgetron-sub001/internal/http/importofx"
	"github.com/budgetron-org/budgetron-sub001/internal/http/middleware"
	reportHandler "github.com/budgetron-org/budgetron-sub001/internal/http/report"
	transactionHandler "github.com/budgetron-org/budgetron-sub001/internal/http/transaction"
)

func New(
	authSecret string,
	transactionsV1 *transactionHandler.Handler,
	importV1 *importHandler.Handler,
	categoriesV1 *categoryHandler.Handler,
	bankAccountsV1 *bankAccountHandler.Handler,
	reportsV1 *reportHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.Logger)
	router.Use(chimiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(authSecret))

		r.Route("/transactions", func(r chi.Router) {
			transactionsV1.Routes(r)
		})

		r.Route("/import", importV1.Routes)

		r.Route("/categories", func(r chi.Router) {
			categoriesV1.Routes(r)
		})

		r.Route("/bank-accounts", func(r chi.Router) {
			bankAccountsV1.Routes(r)
		})

		r.Route("/reports", func(r chi.Router) {
			reportsV1.Routes(r)
		})
	})

	return router
}
