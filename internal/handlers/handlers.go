package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/workmesh/workmesh/docs"
	analyticshandlers "github.com/workmesh/workmesh/internal/handlers/analytics"
	authhandlers "github.com/workmesh/workmesh/internal/handlers/auth"
	jobshandlers "github.com/workmesh/workmesh/internal/handlers/jobs"
	transactionshandlers "github.com/workmesh/workmesh/internal/handlers/transactions"
	"github.com/workmesh/workmesh/internal/service"
	"github.com/workmesh/workmesh/pkg/auth"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type JobHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type TransactionHandler interface {
	CreateTransaction(w http.ResponseWriter, r *http.Request)
	GetRevenue(w http.ResponseWriter, r *http.Request)
}

type AnalyticsHandler interface {
	GetAnalytics(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler        AuthHandler
	JobHandler         JobHandler
	TransactionHandler TransactionHandler
	AnalyticsHandler   AnalyticsHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:        authhandlers.New(s.AuthService),
		JobHandler:         jobshandlers.New(s.JobService, s.LedgerService),
		TransactionHandler: transactionshandlers.New(s.LedgerService),
		AnalyticsHandler:   analyticshandlers.New(s.AnalyticsService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
		})

		r.Get("/jobs", h.JobHandler.List)
		r.Get("/jobs/{jobID}", h.JobHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/jobs", h.JobHandler.Create)
			r.Patch("/jobs/{jobID}", h.JobHandler.Update)
			r.Delete("/jobs/{jobID}", h.JobHandler.Delete)

			r.Post("/transactions", h.TransactionHandler.CreateTransaction)
			r.Get("/revenue", h.TransactionHandler.GetRevenue)
			r.Get("/analytics", h.AnalyticsHandler.GetAnalytics)
		})
	})

	return r
}
