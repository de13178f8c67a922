package ports

import (
	"context"
	"time"
)

// UserDetail is the admin-facing account view.
type UserDetail struct {
	ID          string
	UUID        string
	Username    string
	Email       string
	Role        string
	Locked      bool
	CreatedAt   time.Time
	LastLoginAt *time.Time
}

// CreateUserInput carries the fields for admin account creation. The
// password is always the configured default; users reset it on first login.
type CreateUserInput struct {
	Username string
	Email    string
	Role     string
}

// StatsSection is one independently fetched slice of the dashboard. A
// failed fetch leaves Available false without affecting the other sections.
type StatsSection struct {
	Available bool
	Counts    map[string]int64
}

// DashboardStats is the aggregation view over users, jobs, and applications.
type DashboardStats struct {
	Users        StatsSection
	Jobs         StatsSection
	Applications StatsSection
}

// AdminService defines account administration and the dashboard aggregation.
type AdminService interface {
	ListUsers(ctx context.Context, role string, actor Actor) ([]UserDetail, error)
	GetUser(ctx context.Context, id string, actor Actor) (*UserDetail, error)
	CreateUser(ctx context.Context, in CreateUserInput, actor Actor) (*UserDetail, error)
	// CreateRecruiter is CreateUser with the role fixed to REC.
	CreateRecruiter(ctx context.Context, username, email string, actor Actor) (*UserDetail, error)
	ToggleLock(ctx context.Context, id string, actor Actor) (*UserDetail, error)
	ResetPassword(ctx context.Context, id string, actor Actor) error
	Stats(ctx context.Context, actor Actor) (*DashboardStats, error)
}
