package analyticsservice

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/workmesh/workmesh/internal/domain"
	"github.com/workmesh/workmesh/internal/service/ledgerservice"
)

// UserRepo is the read-only slice of the external user store this service
// needs: counts only, never mutated.
type UserRepo interface {
	Count(ctx context.Context) (int, error)
	CountActive(ctx context.Context) (int, error)
}

type JobService interface {
	Count(ctx context.Context) (int, error)
	CountOpen(ctx context.Context) (int, error)
}

type LedgerService interface {
	Revenue(ctx context.Context) (ledgerservice.RevenueSummary, []domain.Transaction, error)
}

type Summary struct {
	TotalUsers  int
	ActiveUsers int
	TotalJobs   int
	OpenJobs    int
	Revenue     ledgerservice.RevenueSummary
}

type Service struct {
	userRepo UserRepo
	jobs     JobService
	ledger   LedgerService
}

func New(userRepo UserRepo, jobs JobService, ledger LedgerService) *Service {
	return &Service{
		userRepo: userRepo,
		jobs:     jobs,
		ledger:   ledger,
	}
}

// Summary gathers user, job and revenue figures concurrently.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	var summary Summary

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary.TotalUsers, err = s.userRepo.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.ActiveUsers, err = s.userRepo.CountActive(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.TotalJobs, err = s.jobs.Count(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.OpenJobs, err = s.jobs.CountOpen(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		summary.Revenue, _, err = s.ledger.Revenue(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		zap.L().Error("failed to gather analytics", zap.Error(err))
		return nil, err
	}
	return &summary, nil
}
