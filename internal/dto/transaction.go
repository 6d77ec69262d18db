package dto

import "time"

type TransactionRequestDTO struct {
	Type           string  `json:"type" example:"withdrawal"`
	IdempotencyKey string  `json:"idempotency_key" example:"6e9f2a40-1f5e-4f7c-9c30-8a4f7b9d2f11"`
	Amount         float64 `json:"amount,omitempty" example:"50"`
	Description    string  `json:"description,omitempty" example:"payment for job 12"`

	// job_payment fields.
	WorkerID int `json:"worker_id,omitempty" example:"3"`
	JobID    int `json:"job_id,omitempty" example:"12"`

	// withdrawal fields.
	Method string `json:"method,omitempty" example:"4561261212345467"`

	// job_posting fields.
	Job *CreateJobRequestDTO `json:"job,omitempty"`
}

type TransactionDTO struct {
	ID          int64     `json:"id" example:"42"`
	Kind        string    `json:"kind" example:"withdrawal"`
	UserID      int       `json:"user_id" example:"3"`
	JobID       *int      `json:"job_id,omitempty" example:"12"`
	Amount      float64   `json:"amount" example:"-50"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status" example:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

type TransactionResultDTO struct {
	Success     bool            `json:"success"`
	Transaction *TransactionDTO `json:"transaction,omitempty"`
	Error       string          `json:"error,omitempty"`
}
