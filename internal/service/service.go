package service

import (
	"github.com/workmesh/workmesh/internal/config"
	"github.com/workmesh/workmesh/internal/handlers/analytics"
	"github.com/workmesh/workmesh/internal/handlers/auth"
	"github.com/workmesh/workmesh/internal/handlers/jobs"
	"github.com/workmesh/workmesh/internal/handlers/transactions"
	"github.com/workmesh/workmesh/internal/pg"
	"github.com/workmesh/workmesh/internal/repo"
	"github.com/workmesh/workmesh/internal/service/analyticsservice"
	"github.com/workmesh/workmesh/internal/service/authservice"
	"github.com/workmesh/workmesh/internal/service/jobservice"
	"github.com/workmesh/workmesh/internal/service/ledgerservice"
	pkgauth "github.com/workmesh/workmesh/pkg/auth"
)

type Services struct {
	AuthService      auth.Service
	JobService       jobs.Service
	LedgerService    transactions.Service
	AnalyticsService analytics.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	jobService := jobservice.New(repo.JobRepo)
	ledgerService := ledgerservice.New(repo.LedgerRepo, jobService, txManager, cfg.PostingFee, cfg.TakeRate)
	analyticsService := analyticsservice.New(repo.UserRepo, jobService, ledgerService)
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, &pkgauth.JWTService{})

	return &Services{
		AuthService:      authService,
		JobService:       jobService,
		LedgerService:    ledgerService,
		AnalyticsService: analyticsService,
	}
}
