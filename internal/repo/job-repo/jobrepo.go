package jobrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/workmesh/workmesh/internal/domain"
	"github.com/workmesh/workmesh/internal/pg"
)

const jobColumns = "id, employer_id, title, description, category, difficulty, pay_amount, tags, status, created_at, updated_at"

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	err := row.Scan(
		&job.ID, &job.EmployerID, &job.Title, &job.Description, &job.Category,
		&job.Difficulty, &job.PayAmount, &job.Tags, &job.Status, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Job, error) {
	query := `
        SELECT ` + jobColumns + `
        FROM jobs
        WHERE id = $1
    `
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find job", zap.Error(err))
		return nil, err
	}
	return job, nil
}

// FindAll narrows the job list with the given filter; empty filter fields are
// ignored and the remaining conditions compose with AND. The search term
// matches title, description and tags case-insensitively.
func (r *Repository) FindAll(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query := `
        SELECT ` + jobColumns + `
        FROM jobs
    `
	var conds []string
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Difficulty != "" {
		args = append(args, filter.Difficulty)
		conds = append(conds, fmt.Sprintf("difficulty = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(title ILIKE $%d OR description ILIKE $%d OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE $%d))", n, n, n))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get jobs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			zap.L().Error("can't scan job row", zap.Error(err))
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (r *Repository) Save(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	query := `
        INSERT INTO jobs (employer_id, title, description, category, difficulty, pay_amount, tags, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			job.EmployerID, job.Title, job.Description, job.Category,
			job.Difficulty, job.PayAmount, job.Tags, job.Status,
		)
		if err := row.Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt); err != nil {
			zap.L().Error("can't save job", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) Update(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	query := `
        UPDATE jobs
        SET title = $1, description = $2, category = $3, difficulty = $4,
            pay_amount = $5, tags = $6, status = $7, updated_at = now()
        WHERE id = $8
        RETURNING updated_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		row := r.db.QueryRow(ctx, query,
			job.Title, job.Description, job.Category, job.Difficulty,
			job.PayAmount, job.Tags, job.Status, job.ID,
		)
		if err := row.Scan(&job.UpdatedAt); err != nil {
			zap.L().Error("can't update job", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete job", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count)
	if err != nil {
		zap.L().Error("can't count jobs", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) CountByStatus(ctx context.Context, status string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM jobs WHERE status = $1", status).Scan(&count)
	if err != nil {
		zap.L().Error("can't count jobs by status", zap.Error(err))
		return 0, err
	}
	return count, nil
}
