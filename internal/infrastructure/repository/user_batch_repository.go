package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/rosterhub/excelsync/internal/domain/roster"
)

// UserBatchRepository opens one pgx transaction per import run. All
// staged rows land on Commit or not at all.
type UserBatchRepository struct {
	pool *pgxpool.Pool
}

func NewUserBatchRepository(pool *pgxpool.Pool) *UserBatchRepository {
	return &UserBatchRepository{pool: pool}
}

func (r *UserBatchRepository) Begin(ctx context.Context) (domain.UserBatch, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin import batch: %w", err)
	}
	return &userBatch{tx: tx}, nil
}

type userBatch struct {
	tx pgx.Tx
}

func (b *userBatch) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User

	err := b.tx.QueryRow(ctx, `
SELECT id, name, email, group_id, created_by, created_date, modified_by, modified_date, is_deleted
FROM users
WHERE email = $1
`, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.GroupID,
		&user.CreatedBy,
		&user.CreatedDate,
		&user.ModifiedBy,
		&user.ModifiedDate,
		&user.IsDeleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}

	return &user, nil
}

func (b *userBatch) Create(ctx context.Context, u domain.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}

	_, err := b.tx.Exec(ctx, `
INSERT INTO users (id, name, email, group_id, created_by, created_date, modified_by, modified_date, is_deleted)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, u.ID, u.Name, u.Email, u.GroupID, u.CreatedBy, u.CreatedDate, u.ModifiedBy, u.ModifiedDate, u.IsDeleted)
	if err != nil {
		return fmt.Errorf("create user %s: %w", u.Email, err)
	}

	return nil
}

func (b *userBatch) Update(ctx context.Context, u domain.User) error {
	_, err := b.tx.Exec(ctx, `
UPDATE users
SET name = $2,
    group_id = $3,
    created_by = $4,
    created_date = $5,
    modified_by = $6,
    modified_date = $7
WHERE id = $1
`, u.ID, u.Name, u.GroupID, u.CreatedBy, u.CreatedDate, u.ModifiedBy, u.ModifiedDate)
	if err != nil {
		return fmt.Errorf("update user %s: %w", u.Email, err)
	}

	return nil
}

func (b *userBatch) Commit(ctx context.Context) error {
	if err := b.tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit import batch: %w", err)
	}
	return nil
}

func (b *userBatch) Rollback(ctx context.Context) error {
	return b.tx.Rollback(ctx)
}
