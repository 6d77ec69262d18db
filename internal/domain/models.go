package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Active       bool      `db:"active"`
	Admin        bool      `db:"admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type Job struct {
	ID          int       `db:"id"`
	EmployerID  int       `db:"employer_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Category    string    `db:"category"`
	Difficulty  string    `db:"difficulty"`
	PayAmount   float64   `db:"pay_amount"`
	Tags        []string  `db:"tags"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// JobFilter narrows a job listing. Zero-value fields are ignored; set fields
// compose with AND.
type JobFilter struct {
	Category   string
	Search     string
	Difficulty string
}

// JobPatch is a partial update for a job. Nil fields are left untouched.
type JobPatch struct {
	Title       *string
	Description *string
	Category    *string
	Difficulty  *string
	PayAmount   *float64
	Tags        *[]string
	Status      *string
}

// Transaction is one immutable ledger entry. Amount is signed: positive
// credits the user, negative debits them. JobID is set for job_payment and
// job_posting entries.
type Transaction struct {
	ID             int64     `db:"id"`
	Kind           string    `db:"kind"`
	UserID         int       `db:"user_id"`
	JobID          *int      `db:"job_id"`
	Amount         float64   `db:"amount"`
	Description    string    `db:"description"`
	Method         string    `db:"method"`
	Status         string    `db:"status"`
	IdempotencyKey string    `db:"idempotency_key"`
	CreatedAt      time.Time `db:"created_at"`
}
