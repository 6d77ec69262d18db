package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/workmesh/workmesh/internal/domain"
	"github.com/workmesh/workmesh/internal/pg"
)

const txColumns = "id, kind, user_id, job_id, amount, description, method, status, idempotency_key, created_at"

// ErrDuplicateKey reports an append whose idempotency key is already stored.
var ErrDuplicateKey = errors.New("idempotency key already used")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Append stores one ledger entry and assigns its id and timestamp. Entries
// are never updated or deleted afterwards.
func (r *Repository) Append(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (kind, user_id, job_id, amount, description, method, status, idempotency_key)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		t.Kind, t.UserID, t.JobID, t.Amount, t.Description, t.Method, t.Status, t.IdempotencyKey,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrDuplicateKey
		}
		zap.L().Error("can't append transaction", zap.Error(err))
		return nil, err
	}
	return t, nil
}

func (r *Repository) FindByIdempotencyKey(ctx context.Context, key string) (*domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE idempotency_key = $1
    `
	row := r.db.QueryRow(ctx, query, key)
	t, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find transaction by idempotency key", zap.Error(err))
		return nil, err
	}
	return t, nil
}

// FindByUserID returns all entries where the user is the actor, oldest first.
func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        WHERE user_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get user transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *Repository) FindAll(ctx context.Context) ([]domain.Transaction, error) {
	query := `
        SELECT ` + txColumns + `
        FROM transactions
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.Kind, &t.UserID, &t.JobID, &t.Amount,
		&t.Description, &t.Method, &t.Status, &t.IdempotencyKey, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTransactions(rows pgx.Rows) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *t)
	}
	return transactions, nil
}
