package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

func admin() ports.Actor {
	return ports.Actor{UserID: "adm-1", Username: "root", Role: domain.RoleAdmin}
}

func newAdminFixture() (*AdminService, *stubUserRepo, *stubJobRepo, *stubAppRepo) {
	users := newStubUserRepo()
	jobs := newStubJobRepo()
	apps := newStubAppRepo()
	svc := NewAdminService(users, jobs, apps, "changeme123", discardLogger)
	return svc, users, jobs, apps
}

func TestAdminService_CreateUser_DefaultPasswordAndRole(t *testing.T) {
	svc, users, _, _ := newAdminFixture()

	detail, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "carol",
		Email:    "carol@example.com",
	}, admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Role != domain.RoleCandidate {
		t.Errorf("empty role must default to candidate, got %q", detail.Role)
	}
	if detail.UUID == "" {
		t.Error("uuid must be assigned")
	}

	stored, _ := users.FindByID(context.Background(), detail.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("changeme123")); err != nil {
		t.Error("account must carry the default password")
	}
}

func TestAdminService_ListUsers_InvalidRoleFilter(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	if _, err := svc.ListUsers(context.Background(), "GUEST", admin()); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole for an unknown filter, got %v", err)
	}
}

func TestAdminService_CreateUser_InvalidRole(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "carol", Email: "carol@example.com", Role: "GUEST",
	}, admin())
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAdminService_CreateUser_NonAdminForbidden(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	_, err := svc.CreateUser(context.Background(), ports.CreateUserInput{
		Username: "carol", Email: "carol@example.com",
	}, ports.Actor{UserID: "rec-1", Role: domain.RoleRecruiter})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestAdminService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	in := ports.CreateUserInput{Username: "carol", Email: "carol@example.com"}
	if _, err := svc.CreateUser(context.Background(), in, admin()); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.CreateUser(context.Background(), in, admin()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAdminService_CreateRecruiter_FixedRole(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	detail, err := svc.CreateRecruiter(context.Background(), "bob", "bob@example.com", admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Role != domain.RoleRecruiter {
		t.Errorf("expected recruiter role, got %q", detail.Role)
	}
}

func TestAdminService_ToggleLock(t *testing.T) {
	svc, users, _, _ := newAdminFixture()
	u, _ := users.Create(context.Background(), &domain.User{Username: "carol", Email: "c@example.com", Role: domain.RoleCandidate})

	detail, err := svc.ToggleLock(context.Background(), u.ID, admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !detail.Locked {
		t.Error("first toggle must lock")
	}

	detail, err = svc.ToggleLock(context.Background(), u.ID, admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Locked {
		t.Error("second toggle must unlock")
	}
}

func TestAdminService_ResetPassword(t *testing.T) {
	svc, users, _, _ := newAdminFixture()
	u, _ := users.Create(context.Background(), &domain.User{Username: "carol", Email: "c@example.com", PasswordHash: "old", Role: domain.RoleCandidate})

	if err := svc.ResetPassword(context.Background(), u.ID, admin()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := users.FindByID(context.Background(), u.ID)
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("changeme123")); err != nil {
		t.Error("password must be reset to the default")
	}
}

func TestAdminService_Stats_CountsSections(t *testing.T) {
	svc, users, jobs, apps := newAdminFixture()

	_, _ = users.Create(context.Background(), &domain.User{Username: "a", Email: "a@x.c", Role: domain.RoleCandidate})
	_, _ = users.Create(context.Background(), &domain.User{Username: "b", Email: "b@x.c", Role: domain.RoleRecruiter})
	_, _ = users.Create(context.Background(), &domain.User{Username: "c", Email: "c@x.c", Role: domain.RoleAdmin})
	_, _ = jobs.Create(context.Background(), &domain.JobPosting{Title: "J1", Active: true})
	_, _ = jobs.Create(context.Background(), &domain.JobPosting{Title: "J2", Active: false})
	_, _ = apps.Create(context.Background(), &domain.Application{CandidateID: "a", JobID: "j", Status: domain.StatusSubmitted})

	stats, err := svc.Stats(context.Background(), admin())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !stats.Users.Available || stats.Users.Counts["total"] != 3 || stats.Users.Counts["recruiters"] != 1 {
		t.Errorf("users section wrong: %+v", stats.Users)
	}
	if !stats.Jobs.Available || stats.Jobs.Counts["total"] != 2 || stats.Jobs.Counts["active"] != 1 {
		t.Errorf("jobs section wrong: %+v", stats.Jobs)
	}
	if !stats.Applications.Available || stats.Applications.Counts["total"] != 1 {
		t.Errorf("applications section wrong: %+v", stats.Applications)
	}
}

func TestAdminService_Stats_PartialFailureKeepsOtherSections(t *testing.T) {
	svc, users, jobs, apps := newAdminFixture()

	_, _ = jobs.Create(context.Background(), &domain.JobPosting{Title: "J1", Active: true})
	_, _ = apps.Create(context.Background(), &domain.Application{CandidateID: "a", JobID: "j", Status: domain.StatusSubmitted})
	users.listErr = errors.New("db unavailable")

	stats, err := svc.Stats(context.Background(), admin())
	if err != nil {
		t.Fatalf("a failed section must not fail the call: %v", err)
	}

	if stats.Users.Available {
		t.Error("users section must be unavailable")
	}
	if !stats.Jobs.Available || !stats.Applications.Available {
		t.Error("healthy sections must still be available")
	}
}

func TestAdminService_Stats_RecruiterAllowedCandidateForbidden(t *testing.T) {
	svc, _, _, _ := newAdminFixture()

	if _, err := svc.Stats(context.Background(), ports.Actor{UserID: "r", Role: domain.RoleRecruiter}); err != nil {
		t.Fatalf("recruiter must read stats: %v", err)
	}
	if _, err := svc.Stats(context.Background(), ports.Actor{UserID: "c", Role: domain.RoleCandidate}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for candidate, got %v", err)
	}
}
