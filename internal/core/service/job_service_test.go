package service

import (
	"context"
	"errors"
	"testing"

	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

func newJobFixture() (*JobService, *stubJobRepo, *stubAppRepo) {
	jobs := newStubJobRepo()
	apps := newStubAppRepo()
	return NewJobService(jobs, apps, discardLogger), jobs, apps
}

func TestJobService_ListActive_ExcludesInactive(t *testing.T) {
	svc, jobs, _ := newJobFixture()
	_, _ = jobs.Create(context.Background(), &domain.JobPosting{Title: "Open", Active: true})
	_, _ = jobs.Create(context.Background(), &domain.JobPosting{Title: "Closed", Active: false})

	list, err := svc.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Open" {
		t.Fatalf("expected only the active posting, got %+v", list)
	}
}

func TestJobService_ListAll_RecruiterOnly(t *testing.T) {
	svc, jobs, _ := newJobFixture()
	_, _ = jobs.Create(context.Background(), &domain.JobPosting{Title: "Open", Active: true})
	_, _ = jobs.Create(context.Background(), &domain.JobPosting{Title: "Closed", Active: false})

	list, err := svc.ListAll(context.Background(), recruiter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected both postings, got %d", len(list))
	}

	if _, err := svc.ListAll(context.Background(), candidate()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for candidate, got %v", err)
	}
}

func TestJobService_Create_StartsActive(t *testing.T) {
	svc, _, _ := newJobFixture()

	detail, err := svc.Create(context.Background(), ports.JobInput{
		Title:          "Backend Engineer",
		Description:    "Build services",
		RequiredSkills: []string{"go", "mongodb"},
		JobType:        "full_time",
		Deadline:       "2026-12-31",
	}, recruiter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !detail.Active {
		t.Error("new postings must start active")
	}
	if detail.Deadline == nil || detail.Deadline.Format("2006-01-02") != "2026-12-31" {
		t.Errorf("deadline not parsed: %v", detail.Deadline)
	}
	if detail.PostedByName != "bob" || detail.PostedByEmail != "bob@example.com" {
		t.Errorf("poster identity not recorded: %q %q", detail.PostedByName, detail.PostedByEmail)
	}

	if _, err := svc.Create(context.Background(), ports.JobInput{Title: "X"}, candidate()); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for candidate, got %v", err)
	}
}

func TestJobService_Update_KeepsDeadlineOnBadInput(t *testing.T) {
	svc, _, _ := newJobFixture()

	created, err := svc.Create(context.Background(), ports.JobInput{
		Title:    "Backend Engineer",
		Deadline: "2026-12-31",
	}, recruiter())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ports.JobInput{
		Title:    "Senior Backend Engineer",
		Deadline: "not-a-date",
	}, recruiter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "Senior Backend Engineer" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.Deadline == nil || updated.Deadline.Format("2006-01-02") != "2026-12-31" {
		t.Errorf("unparseable deadline must leave the stored one intact, got %v", updated.Deadline)
	}
}

func TestJobService_ToggleActive(t *testing.T) {
	svc, _, _ := newJobFixture()

	created, err := svc.Create(context.Background(), ports.JobInput{Title: "Backend Engineer"}, recruiter())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	toggled, err := svc.ToggleActive(context.Background(), created.ID, recruiter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toggled.Active {
		t.Error("first toggle must deactivate")
	}

	toggled, err = svc.ToggleActive(context.Background(), created.ID, recruiter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.Active {
		t.Error("second toggle must reactivate")
	}
}

func TestJobService_Get_ReportsApplicationCount(t *testing.T) {
	svc, _, apps := newJobFixture()

	created, err := svc.Create(context.Background(), ports.JobInput{Title: "Backend Engineer"}, recruiter())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	_, _ = apps.Create(context.Background(), &domain.Application{CandidateID: "c1", JobID: created.ID, Status: domain.StatusSubmitted})
	_, _ = apps.Create(context.Background(), &domain.Application{CandidateID: "c2", JobID: created.ID, Status: domain.StatusSubmitted})

	detail, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.ApplicationCount != 2 {
		t.Errorf("expected application count 2, got %d", detail.ApplicationCount)
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, domain.ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
