package ports

import (
	"context"

	"github.com/notewise/notes-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// FindByEmail returns domain.ErrUserNotFound when no user matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert persists a new user. A unique-index violation on the email
	// field is reported as domain.ErrUserExists.
	Insert(ctx context.Context, user *domain.User) error
	EnsureIndexes(ctx context.Context) error
}
