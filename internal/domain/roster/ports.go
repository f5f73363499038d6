package roster

import "context"

// UserBatch stages all inserts and updates of a single import run
// inside one storage transaction. Either Commit lands every staged
// row or nothing is written.
type UserBatch interface {
	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, u User) error
	Update(ctx context.Context, u User) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// UserBatchStore opens a new batch per import run.
type UserBatchStore interface {
	Begin(ctx context.Context) (UserBatch, error)
}
