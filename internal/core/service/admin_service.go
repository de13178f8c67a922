package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

type AdminService struct {
	users           ports.UserRepository
	jobs            ports.JobRepository
	apps            ports.ApplicationRepository
	defaultPassword string
	logger          zerolog.Logger
}

func NewAdminService(
	users ports.UserRepository,
	jobs ports.JobRepository,
	apps ports.ApplicationRepository,
	defaultPassword string,
	logger zerolog.Logger,
) *AdminService {
	return &AdminService{
		users:           users,
		jobs:            jobs,
		apps:            apps,
		defaultPassword: defaultPassword,
		logger:          logger,
	}
}

func (s *AdminService) ListUsers(ctx context.Context, role string, actor ports.Actor) ([]ports.UserDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if role != "" && !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	users, err := s.users.List(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]ports.UserDetail, len(users))
	for i, u := range users {
		out[i] = toUserDetail(u)
	}
	return out, nil
}

func (s *AdminService) GetUser(ctx context.Context, id string, actor ports.Actor) (*ports.UserDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	detail := toUserDetail(user)
	return &detail, nil
}

// CreateUser provisions an account with the configured default password.
// An empty role defaults to candidate.
func (s *AdminService) CreateUser(ctx context.Context, in ports.CreateUserInput, actor ports.Actor) (*ports.UserDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if in.Username == "" || in.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := in.Role
	if role == "" {
		role = domain.RoleCandidate
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	user := &domain.User{
		UUID:         uuid.NewString(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", created.ID).Str("role", role).Str("actor_id", actor.UserID).Msg("user created")

	detail := toUserDetail(created)
	return &detail, nil
}

func (s *AdminService) CreateRecruiter(ctx context.Context, username, email string, actor ports.Actor) (*ports.UserDetail, error) {
	return s.CreateUser(ctx, ports.CreateUserInput{
		Username: username,
		Email:    email,
		Role:     domain.RoleRecruiter,
	}, actor)
}

func (s *AdminService) ToggleLock(ctx context.Context, id string, actor ports.Actor) (*ports.UserDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle lock: %w", err)
	}

	updated, err := s.users.SetLocked(ctx, id, !user.Locked)
	if err != nil {
		return nil, fmt.Errorf("toggle lock: %w", err)
	}

	s.logger.Info().Str("user_id", id).Bool("locked", updated.Locked).Str("actor_id", actor.UserID).Msg("user lock toggled")

	detail := toUserDetail(updated)
	return &detail, nil
}

func (s *AdminService) ResetPassword(ctx context.Context, id string, actor ports.Actor) error {
	if !domain.Admit(actor.Role, domain.RoleAdmin) {
		return domain.ErrForbidden
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	if err := s.users.SetPassword(ctx, id, string(hash)); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	s.logger.Info().Str("user_id", id).Str("actor_id", actor.UserID).Msg("password reset to default")
	return nil
}

// Stats is the dashboard aggregation: three independent fetches run
// concurrently, each filling its own section. A failed fetch marks only
// its section unavailable; counts always derive from the collections
// actually returned, never from a cached counter.
func (s *AdminService) Stats(ctx context.Context, actor ports.Actor) (*ports.DashboardStats, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	stats := &ports.DashboardStats{}
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		users, err := s.users.List(ctx, "")
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard: user fetch failed")
			return
		}
		counts := map[string]int64{"total": int64(len(users))}
		for _, u := range users {
			switch u.Role {
			case domain.RoleRecruiter:
				counts["recruiters"]++
			case domain.RoleCandidate:
				counts["candidates"]++
			}
		}
		stats.Users = ports.StatsSection{Available: true, Counts: counts}
	}()

	go func() {
		defer wg.Done()
		jobs, err := s.jobs.List(ctx, false)
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard: job fetch failed")
			return
		}
		counts := map[string]int64{"total": int64(len(jobs))}
		for _, j := range jobs {
			if j.Active {
				counts["active"]++
			}
		}
		stats.Jobs = ports.StatsSection{Available: true, Counts: counts}
	}()

	go func() {
		defer wg.Done()
		apps, err := s.apps.List(ctx, ports.ApplicationFilter{})
		if err != nil {
			s.logger.Warn().Err(err).Msg("dashboard: application fetch failed")
			return
		}
		counts := map[string]int64{"total": int64(len(apps))}
		for _, a := range apps {
			counts[string(a.Status)]++
		}
		stats.Applications = ports.StatsSection{Available: true, Counts: counts}
	}()

	wg.Wait()
	return stats, nil
}

func toUserDetail(u *domain.User) ports.UserDetail {
	return ports.UserDetail{
		ID:          u.ID,
		UUID:        u.UUID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		Locked:      u.Locked,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
