package jobservice

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/workmesh/workmesh/internal/domain"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Job, error)
	FindAll(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	Save(ctx context.Context, job *domain.Job) (*domain.Job, error)
	Update(ctx context.Context, job *domain.Job) (*domain.Job, error)
	Delete(ctx context.Context, id int) (bool, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

const (
	// OpenJobStatus: job accepts applications;
	OpenJobStatus string = "open"
	// FilledJobStatus: a worker was paid for the job;
	FilledJobStatus string = "filled"
	// ClosedJobStatus: job taken down by the employer.
	ClosedJobStatus string = "closed"
)

var (
	ErrNotFound   = errors.New("job not found")
	ErrValidation = errors.New("invalid job data")
)

func validate(job *domain.Job) error {
	switch {
	case job.Title == "":
		return fmt.Errorf("%w: title is required", ErrValidation)
	case job.Description == "":
		return fmt.Errorf("%w: description is required", ErrValidation)
	case job.Category == "":
		return fmt.Errorf("%w: category is required", ErrValidation)
	case job.Difficulty == "":
		return fmt.Errorf("%w: difficulty is required", ErrValidation)
	case job.PayAmount < 0:
		return fmt.Errorf("%w: pay amount must not be negative", ErrValidation)
	}
	return nil
}

// Create validates the posting and stores it with status open.
func (s *Service) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	if err := validate(job); err != nil {
		return nil, err
	}
	job.Status = OpenJobStatus

	created, err := s.repo.Save(ctx, job)
	if err != nil {
		zap.L().Error("can't save job: ", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id int) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get job", zap.Error(err))
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}
	return job, nil
}

func (s *Service) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	jobs, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		zap.L().Error("failed to list jobs", zap.Error(err))
		return nil, err
	}
	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

// Update merges the patch into the stored job and bumps updated_at. Identity
// fields (id, employer, created_at) cannot be overwritten.
func (s *Service) Update(ctx context.Context, id int, patch domain.JobPatch) (*domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get job for update", zap.Error(err))
		return nil, err
	}
	if job == nil {
		return nil, ErrNotFound
	}

	if patch.Title != nil {
		job.Title = *patch.Title
	}
	if patch.Description != nil {
		job.Description = *patch.Description
	}
	if patch.Category != nil {
		job.Category = *patch.Category
	}
	if patch.Difficulty != nil {
		job.Difficulty = *patch.Difficulty
	}
	if patch.PayAmount != nil {
		job.PayAmount = *patch.PayAmount
	}
	if patch.Tags != nil {
		job.Tags = *patch.Tags
	}
	if patch.Status != nil {
		job.Status = *patch.Status
	}

	if err := validate(job); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, job)
	if err != nil {
		zap.L().Error("failed to update job", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

// SetStatus moves a job to the given status without touching other fields.
func (s *Service) SetStatus(ctx context.Context, id int, status string) error {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("failed to get job for status change", zap.Error(err))
		return err
	}
	if job == nil {
		return ErrNotFound
	}
	job.Status = status
	if _, err := s.repo.Update(ctx, job); err != nil {
		zap.L().Error("failed to change job status", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		zap.L().Error("failed to delete job", zap.Error(err))
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) CountOpen(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, OpenJobStatus)
}
