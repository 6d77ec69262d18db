package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/workmesh/workmesh/internal/domain"
	"github.com/workmesh/workmesh/internal/pg"
	ledgerrepo "github.com/workmesh/workmesh/internal/repo/ledger-repo"
	"github.com/workmesh/workmesh/internal/service/jobservice"
)

func NewMock(t *testing.T) (*Service, *MockLedgerRepo, *MockJobRegistry, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	ledgerRepo := NewMockLedgerRepo(ctrl)
	jobs := NewMockJobRegistry(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	service := New(ledgerRepo, jobs, txManager, 9.99, 0.1)
	return service, ledgerRepo, jobs, txManager
}

func passthrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestProcessJobPayment(t *testing.T) {
	tests := []struct {
		name        string
		cmd         JobPayment
		prepareMock func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager)
		expectedErr error
		expectedID  int64
	}{
		{
			name: "Successful payment marks the job filled",
			cmd:  JobPayment{WorkerID: 3, JobID: 12, Amount: 50, IdempotencyKey: "key-1"},
			prepareMock: func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-1").Return(nil, nil)
				jobs.EXPECT().GetByID(gomock.Any(), 12).Return(&domain.Job{ID: 12, Title: "logo"}, nil)
				passthrough(txManager)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, KindJobPayment, tr.Kind)
						assert.Equal(t, 50.0, tr.Amount)
						assert.Equal(t, CompletedStatus, tr.Status)
						tr.ID = 7
						return tr, nil
					})
				jobs.EXPECT().SetStatus(gomock.Any(), 12, jobservice.FilledJobStatus).Return(nil)
			},
			expectedID: 7,
		},
		{
			name: "Missing idempotency key",
			cmd:  JobPayment{WorkerID: 3, JobID: 12, Amount: 50},
			prepareMock: func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager) {
			},
			expectedErr: ErrValidation,
		},
		{
			name: "Non-positive amount",
			cmd:  JobPayment{WorkerID: 3, JobID: 12, Amount: 0, IdempotencyKey: "key-2"},
			prepareMock: func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-2").Return(nil, nil)
			},
			expectedErr: ErrValidation,
		},
		{
			name: "Referenced job does not exist",
			cmd:  JobPayment{WorkerID: 3, JobID: 99, Amount: 50, IdempotencyKey: "key-3"},
			prepareMock: func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-3").Return(nil, nil)
				jobs.EXPECT().GetByID(gomock.Any(), 99).Return(nil, jobservice.ErrNotFound)
			},
			expectedErr: jobservice.ErrNotFound,
		},
		{
			name: "Duplicate key returns the original entry",
			cmd:  JobPayment{WorkerID: 3, JobID: 12, Amount: 50, IdempotencyKey: "key-4"},
			prepareMock: func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "key-4").
					Return(&domain.Transaction{ID: 42, Kind: KindJobPayment}, nil)
			},
			expectedID: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, ledgerRepo, jobs, txManager := NewMock(t)
			tt.prepareMock(ledgerRepo, jobs, txManager)

			transaction, err := service.Process(context.Background(), tt.cmd)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, transaction.ID)
			}
		})
	}
}

func TestProcessWithdrawal(t *testing.T) {
	tests := []struct {
		name        string
		cmd         Withdrawal
		prepareMock func(ledgerRepo *MockLedgerRepo)
		expectedErr error
	}{
		{
			name: "Successful withdrawal",
			cmd:  Withdrawal{UserID: 1, Amount: 50, Method: "2377225624", IdempotencyKey: "w-1"},
			prepareMock: func(ledgerRepo *MockLedgerRepo) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "w-1").Return(nil, nil)
				ledgerRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Transaction{
					{ID: 1, Kind: KindJobPayment, UserID: 1, Amount: 100, Status: CompletedStatus},
				}, nil)
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, KindWithdrawal, tr.Kind)
						assert.Equal(t, -50.0, tr.Amount)
						tr.ID = 2
						return tr, nil
					})
			},
		},
		{
			name: "Withdrawal exceeding available balance",
			cmd:  Withdrawal{UserID: 1, Amount: 150, Method: "2377225624", IdempotencyKey: "w-2"},
			prepareMock: func(ledgerRepo *MockLedgerRepo) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "w-2").Return(nil, nil)
				ledgerRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Transaction{
					{ID: 1, Kind: KindJobPayment, UserID: 1, Amount: 100, Status: CompletedStatus},
				}, nil)
			},
			expectedErr: ErrInsufficientFunds,
		},
		{
			name: "Prior withdrawals reduce the balance",
			cmd:  Withdrawal{UserID: 1, Amount: 70, Method: "2377225624", IdempotencyKey: "w-3"},
			prepareMock: func(ledgerRepo *MockLedgerRepo) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "w-3").Return(nil, nil)
				ledgerRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Transaction{
					{ID: 1, Kind: KindJobPayment, UserID: 1, Amount: 100, Status: CompletedStatus},
					{ID: 2, Kind: KindWithdrawal, UserID: 1, Amount: -40, Status: CompletedStatus},
				}, nil)
			},
			expectedErr: ErrInsufficientFunds,
		},
		{
			name: "Non-positive amount",
			cmd:  Withdrawal{UserID: 1, Amount: -5, Method: "2377225624", IdempotencyKey: "w-4"},
			prepareMock: func(ledgerRepo *MockLedgerRepo) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "w-4").Return(nil, nil)
			},
			expectedErr: ErrValidation,
		},
		{
			name: "Storage failure on balance read",
			cmd:  Withdrawal{UserID: 1, Amount: 10, Method: "2377225624", IdempotencyKey: "w-5"},
			prepareMock: func(ledgerRepo *MockLedgerRepo) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "w-5").Return(nil, nil)
				ledgerRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, ledgerRepo, _, _ := NewMock(t)
			tt.prepareMock(ledgerRepo)

			transaction, err := service.Process(context.Background(), tt.cmd)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				if errors.Is(tt.expectedErr, ErrInsufficientFunds) || errors.Is(tt.expectedErr, ErrValidation) {
					assert.ErrorIs(t, err, tt.expectedErr)
				}
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, KindWithdrawal, transaction.Kind)
			}
		})
	}
}

func TestProcessJobPosting(t *testing.T) {
	tests := []struct {
		name        string
		cmd         JobPosting
		prepareMock func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager)
		expectedErr error
	}{
		{
			name: "Job creation and fee debit succeed together",
			cmd: JobPosting{
				EmployerID:     7,
				Job:            domain.Job{Title: "Landing page copy", Description: "copy", Category: "writing", Difficulty: "medium", PayAmount: 50},
				IdempotencyKey: "p-1",
			},
			prepareMock: func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "p-1").Return(nil, nil)
				passthrough(txManager)
				jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, job *domain.Job) (*domain.Job, error) {
						assert.Equal(t, 7, job.EmployerID)
						job.ID = 5
						return job, nil
					})
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
						assert.Equal(t, KindJobPosting, tr.Kind)
						assert.Equal(t, -9.99, tr.Amount)
						assert.Equal(t, 5, *tr.JobID)
						tr.ID = 3
						return tr, nil
					})
			},
		},
		{
			name: "Invalid job data rolls the unit back",
			cmd: JobPosting{
				EmployerID:     7,
				Job:            domain.Job{Description: "no title"},
				IdempotencyKey: "p-2",
			},
			prepareMock: func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "p-2").Return(nil, nil)
				passthrough(txManager)
				jobs.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: title is required", jobservice.ErrValidation))
			},
			expectedErr: jobservice.ErrValidation,
		},
		{
			name: "Ledger append failure rolls the unit back",
			cmd: JobPosting{
				EmployerID:     7,
				Job:            domain.Job{Title: "t", Description: "d", Category: "design", Difficulty: "easy", PayAmount: 10},
				IdempotencyKey: "p-3",
			},
			prepareMock: func(ledgerRepo *MockLedgerRepo, jobs *MockJobRegistry, txManager *pg.MockTXManager) {
				ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "p-3").Return(nil, nil)
				passthrough(txManager)
				jobs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, job *domain.Job) (*domain.Job, error) {
						job.ID = 6
						return job, nil
					})
				ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, ledgerRepo, jobs, txManager := NewMock(t)
			tt.prepareMock(ledgerRepo, jobs, txManager)

			transaction, err := service.Process(context.Background(), tt.cmd)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Nil(t, transaction)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, KindJobPosting, transaction.Kind)
			}
		})
	}
}

// In-memory fakes used by the interleaving tests below; gomock call counts
// are awkward to express when goroutines race.

type fakeLedgerRepo struct {
	mu      sync.Mutex
	entries []domain.Transaction
	nextID  int64
}

func (f *fakeLedgerRepo) Append(_ context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t.ID = f.nextID
	t.CreatedAt = time.Now()
	f.entries = append(f.entries, *t)
	return t, nil
}

func (f *fakeLedgerRepo) FindByIdempotencyKey(_ context.Context, key string) (*domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].IdempotencyKey == key {
			t := f.entries[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeLedgerRepo) FindByUserID(_ context.Context, userID int) ([]domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Transaction
	for _, t := range f.entries {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeLedgerRepo) FindAll(_ context.Context) ([]domain.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.Transaction(nil), f.entries...), nil
}

type fakeRegistry struct {
	mu     sync.Mutex
	jobs   map[int]*domain.Job
	nextID int
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{jobs: make(map[int]*domain.Job)}
}

func (f *fakeRegistry) GetByID(_ context.Context, id int) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, jobservice.ErrNotFound
	}
	return job, nil
}

func (f *fakeRegistry) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	job.ID = f.nextID
	job.Status = jobservice.OpenJobStatus
	f.jobs[job.ID] = job
	return job, nil
}

func (f *fakeRegistry) Delete(_ context.Context, id int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.jobs[id]; !ok {
		return jobservice.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeRegistry) SetStatus(_ context.Context, id int, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return jobservice.ErrNotFound
	}
	job.Status = status
	return nil
}

type fakeTXManager struct{}

func (fakeTXManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Concurrent withdrawals for one user must never jointly overdraw the
// account, whatever the interleaving.
func TestConcurrentWithdrawalsNoOverdraft(t *testing.T) {
	ledger := &fakeLedgerRepo{}
	registry := newFakeRegistry()
	service := New(ledger, registry, fakeTXManager{}, 9.99, 0.1)
	ctx := context.Background()

	job, err := registry.Create(ctx, &domain.Job{Title: "t", Description: "d", Category: "writing", Difficulty: "easy", PayAmount: 100})
	assert.NoError(t, err)
	_, err = service.Process(ctx, JobPayment{WorkerID: 1, JobID: job.ID, Amount: 100, IdempotencyKey: "seed"})
	assert.NoError(t, err)

	const workers = 10
	var wg sync.WaitGroup
	var succeeded, rejected int64
	var mu sync.Mutex

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := service.Process(ctx, Withdrawal{
				UserID:         1,
				Amount:         30,
				Method:         "2377225624",
				IdempotencyKey: fmt.Sprintf("w-%d", i),
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else if errors.Is(err, ErrInsufficientFunds) {
				rejected++
			}
		}(i)
	}
	wg.Wait()

	// 100 available, 30 per withdrawal: exactly three can pass.
	assert.Equal(t, int64(3), succeeded)
	assert.Equal(t, int64(workers-3), rejected)

	transactions, err := ledger.FindByUserID(ctx, 1)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, AvailableFor(1, transactions), 0.0)
}

// Replaying the same withdrawal request must not double-spend.
func TestWithdrawalIdempotentReplay(t *testing.T) {
	ledger := &fakeLedgerRepo{}
	registry := newFakeRegistry()
	service := New(ledger, registry, fakeTXManager{}, 9.99, 0.1)
	ctx := context.Background()

	job, _ := registry.Create(ctx, &domain.Job{Title: "t", Description: "d", Category: "writing", Difficulty: "easy", PayAmount: 100})
	_, err := service.Process(ctx, JobPayment{WorkerID: 1, JobID: job.ID, Amount: 100, IdempotencyKey: "seed"})
	assert.NoError(t, err)

	first, err := service.Process(ctx, Withdrawal{UserID: 1, Amount: 60, Method: "2377225624", IdempotencyKey: "retry-me"})
	assert.NoError(t, err)
	second, err := service.Process(ctx, Withdrawal{UserID: 1, Amount: 60, Method: "2377225624", IdempotencyKey: "retry-me"})
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	transactions, _ := ledger.FindByUserID(ctx, 1)
	assert.Equal(t, 40.0, AvailableFor(1, transactions))
}

// The example flow: pay 50 for a job, overdraw once, then withdraw exactly
// the balance.
func TestPaymentWithdrawalFlow(t *testing.T) {
	ledger := &fakeLedgerRepo{}
	registry := newFakeRegistry()
	service := New(ledger, registry, fakeTXManager{}, 9.99, 0.1)
	ctx := context.Background()

	job, err := registry.Create(ctx, &domain.Job{Title: "Article", Description: "d", Category: "writing", Difficulty: "easy", PayAmount: 50})
	assert.NoError(t, err)

	_, err = service.Process(ctx, JobPayment{WorkerID: 9, JobID: job.ID, Amount: 50, IdempotencyKey: "pay-1"})
	assert.NoError(t, err)

	earnings, _, err := service.Earnings(ctx, 9)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, earnings)

	filled, _ := registry.GetByID(ctx, job.ID)
	assert.Equal(t, jobservice.FilledJobStatus, filled.Status)

	_, err = service.Process(ctx, Withdrawal{UserID: 9, Amount: 60, Method: "2377225624", IdempotencyKey: "wd-1"})
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = service.Process(ctx, Withdrawal{UserID: 9, Amount: 50, Method: "2377225624", IdempotencyKey: "wd-2"})
	assert.NoError(t, err)

	transactions, _ := ledger.FindByUserID(ctx, 9)
	assert.Equal(t, 0.0, AvailableFor(9, transactions))
	// Earnings stay at the credited total; withdrawals only reduce the
	// available balance.
	assert.Equal(t, 50.0, EarningsFor(9, transactions))
}

// Two users can share one idempotency key; the per-user lock doesn't cover
// that, so the loser of the insert race must still get the original entry.
func TestProcessSharedKeyRace(t *testing.T) {
	service, ledgerRepo, _, _ := NewMock(t)
	ctx := context.Background()

	original := &domain.Transaction{ID: 42, Kind: KindWithdrawal, UserID: 7, Amount: -30, IdempotencyKey: "shared"}
	gomock.InOrder(
		ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "shared").Return(nil, nil),
		ledgerRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Transaction{
			{Kind: KindJobPayment, UserID: 1, Amount: 100, Status: CompletedStatus},
		}, nil),
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, ledgerrepo.ErrDuplicateKey),
		ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "shared").Return(original, nil),
	)

	result, err := service.Process(ctx, Withdrawal{UserID: 1, Amount: 30, Method: "2377225624", IdempotencyKey: "shared"})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), result.ID)
}

func TestProcessSharedKeyRaceRereadFails(t *testing.T) {
	service, ledgerRepo, _, _ := NewMock(t)
	ctx := context.Background()

	gomock.InOrder(
		ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "shared").Return(nil, nil),
		ledgerRepo.EXPECT().FindByUserID(gomock.Any(), 1).Return([]domain.Transaction{
			{Kind: KindJobPayment, UserID: 1, Amount: 100, Status: CompletedStatus},
		}, nil),
		ledgerRepo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil, ledgerrepo.ErrDuplicateKey),
		ledgerRepo.EXPECT().FindByIdempotencyKey(gomock.Any(), "shared").Return(nil, errors.New("connection reset")),
	)

	_, err := service.Process(ctx, Withdrawal{UserID: 1, Amount: 30, Method: "2377225624", IdempotencyKey: "shared"})
	assert.ErrorIs(t, err, ledgerrepo.ErrDuplicateKey)
}

// Lock entries are removed when the last holder releases; distinct user ids
// must not accumulate in the map.
func TestUserLocksReleased(t *testing.T) {
	ledger := &fakeLedgerRepo{}
	registry := newFakeRegistry()
	service := New(ledger, registry, fakeTXManager{}, 9.99, 0.1)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = service.Process(ctx, Withdrawal{
				UserID:         i % 5,
				Amount:         10,
				Method:         "2377225624",
				IdempotencyKey: fmt.Sprintf("lk-%d", i),
			})
		}(i)
	}
	wg.Wait()

	service.mu.Lock()
	defer service.mu.Unlock()
	assert.Empty(t, service.userLocks)
}

// Hard-deleting a funded job must not touch the ledger: the posting fee and
// its idempotency key stay behind.
func TestDeleteFundedJobKeepsLedger(t *testing.T) {
	ledger := &fakeLedgerRepo{}
	registry := newFakeRegistry()
	service := New(ledger, registry, fakeTXManager{}, 9.99, 0.1)
	ctx := context.Background()

	posted, err := service.Process(ctx, JobPosting{
		EmployerID:     2,
		Job:            domain.Job{Title: "Logo", Description: "d", Category: "design", Difficulty: "easy", PayAmount: 80},
		IdempotencyKey: "post-1",
	})
	assert.NoError(t, err)
	assert.NotNil(t, posted.JobID)

	assert.NoError(t, registry.Delete(ctx, *posted.JobID))
	_, err = registry.GetByID(ctx, *posted.JobID)
	assert.ErrorIs(t, err, jobservice.ErrNotFound)

	summary, transactions, err := service.Revenue(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 9.99, summary.Total)
	assert.Len(t, transactions, 1)

	replay, err := service.Process(ctx, JobPosting{
		EmployerID:     2,
		Job:            domain.Job{Title: "Logo", Description: "d", Category: "design", Difficulty: "easy", PayAmount: 80},
		IdempotencyKey: "post-1",
	})
	assert.NoError(t, err)
	assert.Equal(t, posted.ID, replay.ID)
}
