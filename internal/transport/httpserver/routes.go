package httpserver

import (
	"net/http"
	"time"

	"chitfund-app-go/internal/config"
	"chitfund-app-go/internal/transport/httpserver/handler"
	appmw "chitfund-app-go/internal/transport/httpserver/middleware"
	"chitfund-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, staff appmw.StaffSaver, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(appmw.RequestLog(log))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(appmw.NewCORS(cfg.CORSOrigins))

	if cfg.MetricsEnabled {
		metrics := appmw.NewMetrics()
		r.Use(metrics.Middleware)
		r.Handle("/metrics", metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		auth := appmw.NewMockAuth(cfg.Auth, staff, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/user", handlers.AuthUser)
			r.Get("/dashboard/metrics", handlers.DashboardMetrics)

			r.Get("/ledger", handlers.ListLedgerEntries)
			r.Get("/ledger/summary", handlers.LedgerSummary)

			r.Get("/members", handlers.ListMembers)
			r.Post("/members", handlers.CreateMember)
			r.Get("/members/{id}", handlers.GetMember)
			r.Put("/members/{id}", handlers.UpdateMember)
			r.Delete("/members/{id}", handlers.DeleteMember)
			r.Get("/members/{id}/transactions", handlers.ListMemberTransactions)
			r.Get("/members/{id}/documents", handlers.ListMemberDocuments)

			r.Get("/chit-groups", handlers.ListGroups)
			r.Post("/chit-groups", handlers.CreateGroup)
			r.Get("/chit-groups/{id}", handlers.GetGroup)
			r.Put("/chit-groups/{id}", handlers.UpdateGroup)
			r.Delete("/chit-groups/{id}", handlers.DeleteGroup)
			r.Get("/chit-groups/{id}/members", handlers.ListGroupMembers)
			r.Post("/chit-groups/{id}/members", handlers.AddGroupMember)

			r.Get("/transactions", handlers.ListTransactions)
			r.Post("/transactions", handlers.CreateTransaction)
			r.Get("/transactions/{id}", handlers.GetTransaction)
			r.Put("/transactions/{id}", handlers.UpdateTransaction)
			r.Delete("/transactions/{id}", handlers.DeleteTransaction)

			r.Get("/auctions", handlers.ListAuctions)
			r.Post("/auctions", handlers.CreateAuction)
			r.Get("/auctions/upcoming", handlers.ListUpcomingAuctions)
			r.Get("/auctions/{id}", handlers.GetAuction)
			r.Put("/auctions/{id}", handlers.UpdateAuction)
			r.Delete("/auctions/{id}", handlers.DeleteAuction)

			r.Get("/documents", handlers.ListDocuments)
			r.Post("/documents", handlers.UploadDocument)
		})
	})

	return r
}
