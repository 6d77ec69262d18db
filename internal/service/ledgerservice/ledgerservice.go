package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/workmesh/workmesh/internal/domain"
	"github.com/workmesh/workmesh/internal/pg"
	ledgerrepo "github.com/workmesh/workmesh/internal/repo/ledger-repo"
	"github.com/workmesh/workmesh/internal/service/jobservice"
)

type LedgerRepo interface {
	Append(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
	FindByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error)
	FindAll(ctx context.Context) ([]domain.Transaction, error)
}

// JobRegistry is the slice of the job service the processor coordinates with.
type JobRegistry interface {
	GetByID(ctx context.Context, id int) (*domain.Job, error)
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	SetStatus(ctx context.Context, id int, status string) error
}

type Service struct {
	ledgerRepo LedgerRepo
	jobs       JobRegistry
	txManager  pg.TXManager
	postingFee float64
	takeRate   float64

	mu        sync.Mutex
	userLocks map[int]*userLock
}

type userLock struct {
	mu   sync.Mutex
	refs int
}

func New(ledgerRepo LedgerRepo, jobs JobRegistry, txManager pg.TXManager, postingFee, takeRate float64) *Service {
	return &Service{
		ledgerRepo: ledgerRepo,
		jobs:       jobs,
		txManager:  txManager,
		postingFee: postingFee,
		takeRate:   takeRate,
		userLocks:  make(map[int]*userLock),
	}
}

var (
	ErrValidation        = errors.New("invalid transaction data")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// lockUser serializes all mutating transactions for one user. The withdrawal
// balance check and the subsequent append must not interleave with another
// mutation for the same user. Lock entries are refcounted and removed once
// the last waiter releases, so the map doesn't grow with every user id seen.
func (s *Service) lockUser(userID int) func() {
	s.mu.Lock()
	l, ok := s.userLocks[userID]
	if !ok {
		l = &userLock{}
		s.userLocks[userID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.userLocks, userID)
		}
		s.mu.Unlock()
	}
}

// Process validates and applies one transaction command as an atomic unit.
// A replay with an already used idempotency key returns the original entry.
func (s *Service) Process(ctx context.Context, cmd Command) (*domain.Transaction, error) {
	if cmd.key() == "" {
		return nil, fmt.Errorf("%w: idempotency key is required", ErrValidation)
	}

	unlock := s.lockUser(cmd.actor())
	defer unlock()

	existing, err := s.ledgerRepo.FindByIdempotencyKey(ctx, cmd.key())
	if err != nil {
		zap.L().Error("failed to check idempotency key", zap.Error(err))
		return nil, err
	}
	if existing != nil {
		zap.L().Info("duplicate transaction request, returning original",
			zap.String("idempotency_key", cmd.key()))
		return existing, nil
	}

	transaction, err := s.apply(ctx, cmd)
	if errors.Is(err, ledgerrepo.ErrDuplicateKey) {
		// The lock is per user, so a request from a different user sharing
		// this key can insert between our dedupe check and the append. The
		// unique constraint catches it; return the entry that won.
		existing, findErr := s.ledgerRepo.FindByIdempotencyKey(ctx, cmd.key())
		if findErr == nil && existing != nil {
			zap.L().Info("idempotency key raced, returning original",
				zap.String("idempotency_key", cmd.key()))
			return existing, nil
		}
		return nil, err
	}
	return transaction, err
}

func (s *Service) apply(ctx context.Context, cmd Command) (*domain.Transaction, error) {
	switch c := cmd.(type) {
	case JobPayment:
		return s.processJobPayment(ctx, c)
	case Withdrawal:
		return s.processWithdrawal(ctx, c)
	case JobPosting:
		return s.processJobPosting(ctx, c)
	default:
		return nil, fmt.Errorf("%w: unknown transaction kind", ErrValidation)
	}
}

func (s *Service) processJobPayment(ctx context.Context, c JobPayment) (*domain.Transaction, error) {
	if c.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	job, err := s.jobs.GetByID(ctx, c.JobID)
	if err != nil {
		return nil, err
	}

	transaction := &domain.Transaction{
		Kind:           KindJobPayment,
		UserID:         c.WorkerID,
		JobID:          &job.ID,
		Amount:         c.Amount,
		Description:    c.Description,
		Status:         CompletedStatus,
		IdempotencyKey: c.IdempotencyKey,
	}

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if transaction, err = s.ledgerRepo.Append(ctx, transaction); err != nil {
			return err
		}
		return s.jobs.SetStatus(ctx, job.ID, jobservice.FilledJobStatus)
	})
	if err != nil {
		zap.L().Error("job payment failed", zap.Error(err))
		return nil, err
	}

	zap.L().Info("job payment processed",
		zap.Int("worker_id", c.WorkerID), zap.Int("job_id", job.ID), zap.Float64("amount", c.Amount))
	return transaction, nil
}

func (s *Service) processWithdrawal(ctx context.Context, c Withdrawal) (*domain.Transaction, error) {
	if c.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	transactions, err := s.ledgerRepo.FindByUserID(ctx, c.UserID)
	if err != nil {
		zap.L().Error("failed to load user transactions", zap.Error(err))
		return nil, err
	}
	if available := AvailableFor(c.UserID, transactions); c.Amount > available {
		zap.L().Info("withdrawal rejected",
			zap.Int("user_id", c.UserID), zap.Float64("requested", c.Amount), zap.Float64("available", available))
		return nil, ErrInsufficientFunds
	}

	transaction := &domain.Transaction{
		Kind:           KindWithdrawal,
		UserID:         c.UserID,
		Amount:         -c.Amount,
		Method:         c.Method,
		Status:         CompletedStatus,
		IdempotencyKey: c.IdempotencyKey,
	}
	if transaction, err = s.ledgerRepo.Append(ctx, transaction); err != nil {
		zap.L().Error("withdrawal failed", zap.Error(err))
		return nil, err
	}

	zap.L().Info("withdrawal processed", zap.Int("user_id", c.UserID), zap.Float64("amount", c.Amount))
	return transaction, nil
}

// processJobPosting creates the job and charges the posting fee inside one
// database transaction: either both are visible afterwards or neither.
func (s *Service) processJobPosting(ctx context.Context, c JobPosting) (*domain.Transaction, error) {
	job := c.Job
	job.EmployerID = c.EmployerID

	var transaction *domain.Transaction
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		created, err := s.jobs.Create(ctx, &job)
		if err != nil {
			return err
		}

		transaction = &domain.Transaction{
			Kind:           KindJobPosting,
			UserID:         c.EmployerID,
			JobID:          &created.ID,
			Amount:         -s.postingFee,
			Description:    "posting fee: " + created.Title,
			Status:         CompletedStatus,
			IdempotencyKey: c.IdempotencyKey,
		}
		transaction, err = s.ledgerRepo.Append(ctx, transaction)
		return err
	})
	if err != nil {
		zap.L().Error("job posting failed", zap.Error(err))
		return nil, err
	}

	zap.L().Info("job posting processed",
		zap.Int("employer_id", c.EmployerID), zap.Int("job_id", *transaction.JobID))
	return transaction, nil
}

// Earnings returns the user's completed job payment total along with the
// entries it was derived from, read as one snapshot.
func (s *Service) Earnings(ctx context.Context, userID int) (float64, []domain.Transaction, error) {
	transactions, err := s.ledgerRepo.FindByUserID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to load user transactions", zap.Error(err))
		return 0, nil, err
	}
	return EarningsFor(userID, transactions), transactions, nil
}

// Revenue recomputes the platform revenue summary from the full ledger.
func (s *Service) Revenue(ctx context.Context) (RevenueSummary, []domain.Transaction, error) {
	transactions, err := s.ledgerRepo.FindAll(ctx)
	if err != nil {
		zap.L().Error("failed to load transactions", zap.Error(err))
		return RevenueSummary{}, nil, err
	}
	return PlatformRevenue(transactions, s.takeRate, time.Now()), transactions, nil
}
