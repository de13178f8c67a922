package ports

import (
	"context"

	"github.com/getready/ats-system/internal/core/domain"
)

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// List returns users, optionally filtered by role code (empty = all).
	List(ctx context.Context, role string) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	SetLocked(ctx context.Context, id string, locked bool) (*domain.User, error)
	SetPassword(ctx context.Context, id string, passwordHash string) error
	RecordLogin(ctx context.Context, id string) error
}

// SessionRepository is the remote session registry keyed by token.
type SessionRepository interface {
	Put(ctx context.Context, token string, identity domain.Identity) error
	Get(ctx context.Context, token string) (*domain.Identity, error)
	Delete(ctx context.Context, token string) error
}
