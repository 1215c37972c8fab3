package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/kharcha-app/kharcha/internal/http/auth"
	"github.com/kharcha-app/kharcha/internal/http/budget"
	"github.com/kharcha-app/kharcha/internal/http/dashboard"
	"github.com/kharcha-app/kharcha/internal/http/expense"
	"github.com/kharcha-app/kharcha/internal/http/profile"
	"github.com/kharcha-app/kharcha/internal/metrics"
)

func New(
	jwtSecret []byte,
	allowedOrigins []string,
	expensesV1 *expense.Handler,
	budgetsV1 *budget.Handler,
	dashboardV1 *dashboard.Handler,
	profileV1 *profile.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Handle("/metrics", metrics.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware(jwtSecret))

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Route("/budgets", func(r chi.Router) {
			budgetsV1.Routes(r)
		})

		r.Route("/dashboard", dashboardV1.Routes)

		r.Route("/profile", func(r chi.Router) {
			profileV1.Routes(r)
		})
	})

	return router
}
