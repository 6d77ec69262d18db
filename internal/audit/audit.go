// Package audit periodically re-projects the ledger and reports entries that
// violate its invariants: negative available balances and money movements
// referencing jobs that no longer exist. It only reads, never repairs.
package audit

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/workmesh/workmesh/internal/config"
	"github.com/workmesh/workmesh/internal/domain"
	"github.com/workmesh/workmesh/internal/service/jobservice"
	"github.com/workmesh/workmesh/internal/service/ledgerservice"
)

type LedgerRepo interface {
	FindAll(ctx context.Context) ([]domain.Transaction, error)
}

type JobRegistry interface {
	GetByID(ctx context.Context, id int) (*domain.Job, error)
}

type Service struct {
	ledgerRepo LedgerRepo
	jobs       JobRegistry
	workerPool WorkerPoolI
	interval   time.Duration
}

const minInterval = time.Second

func New(cfg *config.Config, ledgerRepo LedgerRepo, jobs JobRegistry) *Service {
	interval := time.Duration(cfg.AuditInterval) * time.Second
	// time.NewTicker panics on a non-positive interval.
	if interval < minInterval {
		interval = minInterval
	}
	return &Service{
		ledgerRepo: ledgerRepo,
		jobs:       jobs,
		workerPool: NewWorkerPool(10),
		interval:   interval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Ledger audit started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping ledger audit")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	transactions, err := s.ledgerRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("Failed to fetch transactions for audit", zap.Error(err))
		return
	}

	users := make(map[int]struct{})
	jobRefs := make(map[int]struct{})
	for _, t := range transactions {
		users[t.UserID] = struct{}{}
		if t.JobID != nil && t.Kind == ledgerservice.KindJobPayment {
			jobRefs[*t.JobID] = struct{}{}
		}
	}

	var g errgroup.Group
	for userID := range users {
		userID := userID
		g.Go(func() error {
			return s.workerPool.Submit(ctx, func() error {
				if available := ledgerservice.AvailableFor(userID, transactions); available < 0 {
					zap.L().Warn("Negative available balance detected",
						zap.Int("user_id", userID), zap.Float64("available", available))
				}
				return nil
			})
		})
	}
	for jobID := range jobRefs {
		jobID := jobID
		g.Go(func() error {
			return s.workerPool.Submit(ctx, func() error {
				return s.checkJobRef(ctx, jobID)
			})
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error running ledger audit sweep", zap.Error(err))
	}
}

func (s *Service) checkJobRef(ctx context.Context, jobID int) error {
	_, err := s.jobs.GetByID(ctx, jobID)
	if errors.Is(err, jobservice.ErrNotFound) {
		// Hard-deleted jobs leave their payment entries behind.
		zap.L().Warn("Ledger entry references a missing job", zap.Int("job_id", jobID))
		return nil
	}
	return err
}
