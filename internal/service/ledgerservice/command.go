package ledgerservice

import "github.com/workmesh/workmesh/internal/domain"

const (
	// KindJobPayment credits a worker for a finished job;
	KindJobPayment string = "job_payment"
	// KindWithdrawal debits a user's earned balance;
	KindWithdrawal string = "withdrawal"
	// KindJobPosting debits an employer the posting fee for a new job.
	KindJobPosting string = "job_posting"
)

const (
	PendingStatus   string = "pending"
	CompletedStatus string = "completed"
	FailedStatus    string = "failed"
)

// Command is one transaction request. The set of implementations is closed:
// each kind carries exactly the fields it needs, so an invalid field
// combination cannot be constructed.
type Command interface {
	Kind() string
	actor() int
	key() string
}

// JobPayment credits WorkerID with Amount for the referenced job.
type JobPayment struct {
	WorkerID       int
	JobID          int
	Amount         float64
	Description    string
	IdempotencyKey string
}

func (JobPayment) Kind() string { return KindJobPayment }
func (c JobPayment) actor() int { return c.WorkerID }
func (c JobPayment) key() string { return c.IdempotencyKey }

// Withdrawal debits Amount from UserID's available balance. Method names
// the payout destination (card or account number).
type Withdrawal struct {
	UserID         int
	Amount         float64
	Method         string
	IdempotencyKey string
}

func (Withdrawal) Kind() string { return KindWithdrawal }
func (c Withdrawal) actor() int { return c.UserID }
func (c Withdrawal) key() string { return c.IdempotencyKey }

// JobPosting creates Job in the registry and charges EmployerID the posting
// fee as a single atomic unit.
type JobPosting struct {
	EmployerID     int
	Job            domain.Job
	IdempotencyKey string
}

func (JobPosting) Kind() string { return KindJobPosting }
func (c JobPosting) actor() int { return c.EmployerID }
func (c JobPosting) key() string { return c.IdempotencyKey }