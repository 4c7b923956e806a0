package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/api/middleware"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/config"
	"github.com/ndewijer/Personal-Finance-Tracker-Backend/internal/service"
)

// Services groups the services the router dispatches to.
type Services struct {
	System      *service.SystemService
	Transaction *service.TransactionService
	Report      *service.ReportService
	Calendar    *service.CalendarService
	Snapshot    *service.SnapshotService
}

// NewRouter creates and configures the HTTP router
func NewRouter(svc Services, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger(log))
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(svc.System)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/transactions", func(r chi.Router) {
			transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
			r.Get("/", transactionHandler.Transactions)
			r.Post("/", transactionHandler.CreateTransaction)
			r.Get("/export", transactionHandler.Export)

			r.Route("/{uuid}", func(r chi.Router) {
				r.Use(custommiddleware.ValidateUUIDMiddleware)
				r.Get("/", transactionHandler.GetTransaction)
				r.Delete("/", transactionHandler.DeleteTransaction)
			})
		})

		reportHandler := handlers.NewReportHandler(svc.Report)
		r.Get("/summary", reportHandler.Summary)
		r.Get("/monthly", reportHandler.Monthly)
		r.Get("/report", reportHandler.Report)
		r.Route("/goal", func(r chi.Router) {
			r.Get("/", reportHandler.GetGoal)
			r.Put("/", reportHandler.UpdateGoal)
		})

		r.Route("/calendar", func(r chi.Router) {
			calendarHandler := handlers.NewCalendarHandler(svc.Calendar)
			r.Get("/", calendarHandler.Month)
			r.With(custommiddleware.ValidateDateMiddleware).Get("/{date}", calendarHandler.Day)
		})

		r.Route("/snapshots", func(r chi.Router) {
			snapshotHandler := handlers.NewSnapshotHandler(svc.Snapshot)
			r.Get("/", snapshotHandler.Snapshots)
			r.Post("/", snapshotHandler.CreateSnapshot)
		})
	})

	return r
}
