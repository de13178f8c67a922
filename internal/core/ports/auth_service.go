package ports

import (
	"context"

	"github.com/getready/ats-system/internal/core/domain"
)

// Credentials is the login exchange input.
type Credentials struct {
	Email    string
	Password string
}

// AuthService performs the credential exchange against the user store.
type AuthService interface {
	// Login verifies credentials, records the login time, and returns the
	// authenticated identity carrying a signed token.
	Login(ctx context.Context, creds Credentials) (*domain.Identity, error)
}

// SessionStore owns the authenticated identity for the lifetime of a
// session. No other component writes session state.
type SessionStore interface {
	// Establish exchanges credentials for an identity and persists the
	// session in both the local cache and the remote registry.
	Establish(ctx context.Context, creds Credentials) (*domain.Identity, error)
	// Current returns the identity for a token without a remote call when
	// the local cache holds it, falling back to the remote registry.
	Current(ctx context.Context, token string) (*domain.Identity, error)
	// Clear removes the local session unconditionally; the remote
	// invalidation is best effort and never fails the call.
	Clear(ctx context.Context, token string)
}
