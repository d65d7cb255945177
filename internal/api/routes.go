package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes configures all API routes.
func SetupRoutes(h *Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check outside /api for load balancers
	r.Get("/health", h.HealthCheck)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthCheck)

		r.Get("/dashboard/overview", h.HandleDashboardOverview)

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.HandleListCustomers)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.HandleGetCustomer)
				r.Get("/insights", h.HandleCustomerInsights)
				r.Get("/recommendations", h.HandleCustomerRecommendations)
			})
		})

		r.Route("/upgrade", func(r chi.Router) {
			r.Get("/paths", h.HandleUpgradePaths)
			r.Get("/paths/{path}", h.HandleUpgradePath)
		})

		r.Post("/projection", h.HandleProjection)

		r.Route("/messages", func(r chi.Router) {
			r.Get("/", h.HandleListMessages)
			r.Post("/send", h.HandleSendMessages)
		})
	})

	return r
}
