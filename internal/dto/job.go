package dto

import "time"

type CreateJobRequestDTO struct {
	Title       string   `json:"title" example:"Landing page copy"`
	Description string   `json:"description" example:"Write copy for a product landing page"`
	Category    string   `json:"category" example:"writing"`
	Difficulty  string   `json:"difficulty" example:"medium"`
	PayAmount   float64  `json:"pay_amount" example:"50"`
	Tags        []string `json:"tags" example:"copywriting,remote"`
}

type UpdateJobRequestDTO struct {
	Title       *string   `json:"title,omitempty"`
	Description *string   `json:"description,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Difficulty  *string   `json:"difficulty,omitempty"`
	PayAmount   *float64  `json:"pay_amount,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Status      *string   `json:"status,omitempty"`
}

type JobResponseDTO struct {
	ID          int       `json:"id" example:"1"`
	EmployerID  int       `json:"employer_id" example:"7"`
	Title       string    `json:"title" example:"Landing page copy"`
	Description string    `json:"description" example:"Write copy for a product landing page"`
	Category    string    `json:"category" example:"writing"`
	Difficulty  string    `json:"difficulty" example:"medium"`
	PayAmount   float64   `json:"pay_amount" example:"50"`
	Tags        []string  `json:"tags"`
	Status      string    `json:"status" example:"open"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
