package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

type JobService struct {
	jobs   ports.JobRepository
	apps   ports.ApplicationRepository
	logger zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, apps ports.ApplicationRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, apps: apps, logger: logger}
}

// ListActive is the candidate-facing listing: inactive postings are excluded.
func (s *JobService) ListActive(ctx context.Context) ([]ports.JobDetail, error) {
	return s.list(ctx, true)
}

// ListAll returns every posting, including deactivated ones.
func (s *JobService) ListAll(ctx context.Context, actor ports.Actor) ([]ports.JobDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	return s.list(ctx, false)
}

func (s *JobService) list(ctx context.Context, activeOnly bool) ([]ports.JobDetail, error) {
	jobs, err := s.jobs.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	out := make([]ports.JobDetail, len(jobs))
	for i, job := range jobs {
		count, err := s.apps.CountByJob(ctx, job.ID)
		if err != nil {
			// A missing count should not hide the posting itself.
			s.logger.Warn().Err(err).Str("job_id", job.ID).Msg("application count unavailable")
			count = 0
		}
		out[i] = toJobDetail(job, count)
	}
	return out, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*ports.JobDetail, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get job: %w", err)
	}
	count, err := s.apps.CountByJob(ctx, id)
	if err != nil {
		count = 0
	}
	detail := toJobDetail(job, count)
	return &detail, nil
}

func (s *JobService) Create(ctx context.Context, in ports.JobInput, actor ports.Actor) (*ports.JobDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	job := &domain.JobPosting{
		Title:          in.Title,
		Description:    in.Description,
		RequiredSkills: in.RequiredSkills,
		Experience:     in.Experience,
		Location:       in.Location,
		JobType:        in.JobType,
		PostedAt:       time.Now().UTC(),
		Deadline:       parseDeadline(in.Deadline),
		Active:         true,
		PostedByID:     actor.UserID,
		PostedByName:   actor.Username,
		PostedByEmail:  actor.Email,
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}

	s.logger.Info().Str("job_id", created.ID).Str("title", created.Title).Str("actor_id", actor.UserID).Msg("job created")

	detail := toJobDetail(created, 0)
	return &detail, nil
}

func (s *JobService) Update(ctx context.Context, id string, in ports.JobInput, actor ports.Actor) (*ports.JobDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	job.Title = in.Title
	job.Description = in.Description
	job.RequiredSkills = in.RequiredSkills
	job.Experience = in.Experience
	job.Location = in.Location
	job.JobType = in.JobType
	if d := parseDeadline(in.Deadline); d != nil {
		job.Deadline = d
	}

	updated, err := s.jobs.Update(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("update job: %w", err)
	}

	count, _ := s.apps.CountByJob(ctx, id)
	detail := toJobDetail(updated, count)
	return &detail, nil
}

// ToggleActive flips the active flag. Deactivation hides the posting from
// candidates without touching received applications.
func (s *JobService) ToggleActive(ctx context.Context, id string, actor ports.Actor) (*ports.JobDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle job: %w", err)
	}

	job.Active = !job.Active
	updated, err := s.jobs.Update(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("toggle job: %w", err)
	}

	s.logger.Info().Str("job_id", id).Bool("active", updated.Active).Str("actor_id", actor.UserID).Msg("job active flag toggled")

	count, _ := s.apps.CountByJob(ctx, id)
	detail := toJobDetail(updated, count)
	return &detail, nil
}

// parseDeadline accepts yyyy-mm-dd; anything else is ignored.
func parseDeadline(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	return &t
}

func toJobDetail(job *domain.JobPosting, applicationCount int64) ports.JobDetail {
	return ports.JobDetail{
		ID:               job.ID,
		Title:            job.Title,
		Description:      job.Description,
		RequiredSkills:   job.RequiredSkills,
		Experience:       job.Experience,
		Location:         job.Location,
		JobType:          job.JobType,
		PostedAt:         job.PostedAt,
		Deadline:         job.Deadline,
		Active:           job.Active,
		PostedByName:     job.PostedByName,
		PostedByEmail:    job.PostedByEmail,
		ApplicationCount: applicationCount,
	}
}
