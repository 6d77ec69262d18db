package repo

import (
	"github.com/workmesh/workmesh/internal/pg"
	jobrepo "github.com/workmesh/workmesh/internal/repo/job-repo"
	ledgerrepo "github.com/workmesh/workmesh/internal/repo/ledger-repo"
	userrepo "github.com/workmesh/workmesh/internal/repo/user-repo"
	"github.com/workmesh/workmesh/internal/service/jobservice"
	"github.com/workmesh/workmesh/internal/service/ledgerservice"
)

type Repositories struct {
	// UserRepo stays concrete: both the auth and analytics services consume
	// different slices of it.
	UserRepo   *userrepo.Repository
	JobRepo    jobservice.Repo
	LedgerRepo ledgerservice.LedgerRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	jobRepo := jobrepo.New(conn, txManager)
	ledgerRepo := ledgerrepo.New(conn)

	return &Repositories{
		UserRepo:   userRepo,
		JobRepo:    jobRepo,
		LedgerRepo: ledgerRepo,
	}
}
