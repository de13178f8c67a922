package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/getready/ats-system/internal/api/metrics"
	"github.com/getready/ats-system/internal/core/domain"
	"github.com/getready/ats-system/internal/core/ports"
)

// ActivityRecorder abstracts the async audit trail (queue dispatcher).
// Recording never blocks or fails a lifecycle operation.
type ActivityRecorder interface {
	Record(event domain.ActivityEvent)
}

// TextExtractor pulls plain text out of an uploaded resume for scoring.
type TextExtractor interface {
	Extract(filename string, data []byte) (string, error)
}

const defaultScoreTimeout = 10 * time.Second

type ApplicationService struct {
	apps         ports.ApplicationRepository
	jobs         ports.JobRepository
	users        ports.UserRepository
	files        ports.FileService
	scorer       ports.ResumeScorer
	extractor    TextExtractor
	recorder     ActivityRecorder
	history      ports.AuditRepository
	scoreTimeout time.Duration
	logger       zerolog.Logger
}

func NewApplicationService(
	apps ports.ApplicationRepository,
	jobs ports.JobRepository,
	users ports.UserRepository,
	files ports.FileService,
	scorer ports.ResumeScorer,
	extractor TextExtractor,
	recorder ActivityRecorder,
	history ports.AuditRepository,
	scoreTimeout time.Duration,
	logger zerolog.Logger,
) *ApplicationService {
	if scoreTimeout <= 0 {
		scoreTimeout = defaultScoreTimeout
	}
	return &ApplicationService{
		apps:         apps,
		jobs:         jobs,
		users:        users,
		files:        files,
		scorer:       scorer,
		extractor:    extractor,
		recorder:     recorder,
		history:      history,
		scoreTimeout: scoreTimeout,
		logger:       logger,
	}
}

// Submit creates the application in status Submitted. Guards: the job must
// be active, the resume must be present and acceptable, and the candidate
// must not have applied to this job before. Scoring runs synchronously
// inside the call but its failure never fails the submission.
func (s *ApplicationService) Submit(ctx context.Context, in ports.SubmitApplicationInput) (*ports.ApplicationDetail, error) {
	if in.Actor.Role != domain.RoleCandidate {
		return nil, domain.ErrForbidden
	}

	job, err := s.jobs.FindByID(ctx, in.JobID)
	if err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	if !job.Active {
		return nil, domain.ErrJobInactive
	}

	if in.Resume.Content == nil || in.Resume.Filename == "" {
		return nil, domain.ErrResumeRequired
	}
	if !domain.AllowedResumeExt(in.Resume.Filename) {
		return nil, domain.ErrResumeFormat
	}
	if in.Resume.Size > domain.MaxResumeSize {
		return nil, domain.ErrResumeTooLarge
	}

	// A repeat submission is a conflict, never a silent overwrite.
	if existing, err := s.apps.FindByCandidateAndJob(ctx, in.Actor.UserID, in.JobID); err == nil && existing != nil {
		return nil, domain.ErrDuplicateApplication
	}

	candidate, err := s.users.FindByID(ctx, in.Actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}

	data, err := io.ReadAll(io.LimitReader(in.Resume.Content, domain.MaxResumeSize+1))
	if err != nil {
		return nil, fmt.Errorf("submit: read resume: %w", err)
	}
	if int64(len(data)) > domain.MaxResumeSize {
		return nil, domain.ErrResumeTooLarge
	}
	if len(data) == 0 {
		return nil, domain.ErrResumeRequired
	}

	stored, err := s.files.Store(ctx, ports.ResumeUpload{
		Filename: in.Resume.Filename,
		Size:     int64(len(data)),
		Content:  bytes.NewReader(data),
	}, in.Actor.UserID)
	if err != nil {
		return nil, fmt.Errorf("submit: store resume: %w", err)
	}

	score, keywords := s.scoreResume(ctx, data, in.Resume.Filename, job)

	app := &domain.Application{
		JobID:          job.ID,
		CandidateID:    candidate.ID,
		ResumeFileID:   stored.ID,
		Notes:          in.Notes,
		AIScore:        score,
		AIKeywords:     keywords,
		Status:         domain.StatusSubmitted,
		AppliedAt:      time.Now().UTC(),
		JobTitle:       job.Title,
		CandidateName:  candidate.Username,
		CandidateEmail: candidate.Email,
		ResumeFileName: stored.OriginalName,
	}

	created, err := s.apps.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}

	scored := "false"
	if created.AIScore != nil {
		scored = "true"
	}
	metrics.ApplicationsSubmittedTotal.WithLabelValues(scored).Inc()

	s.recorder.Record(domain.ActivityEvent{
		ApplicationID: created.ID,
		Kind:          domain.EventSubmitted,
		ActorID:       in.Actor.UserID,
		ActorRole:     in.Actor.Role,
		Detail:        job.Title,
		Timestamp:     created.AppliedAt,
	})

	s.logger.Info().
		Str("application_id", created.ID).
		Str("job_id", job.ID).
		Str("candidate_id", candidate.ID).
		Bool("scored", created.AIScore != nil).
		Msg("application submitted")

	return toDetail(created), nil
}

// scoreResume invokes the scoring collaborator with a bounded wait and
// absorbs every failure mode into a nil score.
func (s *ApplicationService) scoreResume(ctx context.Context, data []byte, filename string, job *domain.JobPosting) (*float64, []string) {
	text, err := s.extractor.Extract(filename, data)
	if err != nil {
		s.logger.Warn().Err(err).Str("filename", filename).Msg("resume text extraction failed, submitting unscored")
		metrics.ScoringFailuresTotal.WithLabelValues("extract").Inc()
		return nil, nil
	}

	scoreCtx, cancel := context.WithTimeout(ctx, s.scoreTimeout)
	defer cancel()

	start := time.Now()
	result, err := s.scorer.Score(scoreCtx, ports.ScoreRequest{
		ResumeText:     text,
		JobTitle:       job.Title,
		RequiredSkills: job.RequiredSkills,
	})
	metrics.ScoringDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		s.logger.Warn().Err(err).Str("job_id", job.ID).Msg("scoring unavailable, submitting unscored")
		metrics.ScoringFailuresTotal.WithLabelValues("call").Inc()
		return nil, nil
	}
	if result.Score < 0 || result.Score > 100 {
		s.logger.Warn().Float64("score", result.Score).Msg("scorer returned out-of-range score, discarding")
		metrics.ScoringFailuresTotal.WithLabelValues("range").Inc()
		return nil, nil
	}

	score := result.Score
	return &score, result.Keywords
}

// List returns applications visible to the actor. Candidates are always
// scoped to their own submissions, whatever filters they pass.
func (s *ApplicationService) List(ctx context.Context, in ports.ListApplicationsInput) ([]ports.ApplicationDetail, error) {
	filter := ports.ApplicationFilter{JobID: in.JobID, Status: in.Status}
	if in.Actor.Role == domain.RoleCandidate {
		filter.CandidateID = in.Actor.UserID
	} else if !domain.Admit(in.Actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	if in.Status != "" && !domain.ApplicationStatus(in.Status).Valid() {
		return nil, domain.ErrInvalidStatus
	}

	apps, err := s.apps.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	out := make([]ports.ApplicationDetail, len(apps))
	for i, app := range apps {
		out[i] = *toDetail(app)
	}
	return out, nil
}

// Get returns one application. Candidates can only read their own record.
func (s *ApplicationService) Get(ctx context.Context, id string, actor ports.Actor) (*ports.ApplicationDetail, error) {
	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	switch {
	case actor.Role == domain.RoleCandidate:
		if app.CandidateID != actor.UserID {
			return nil, domain.ErrForbidden
		}
	case domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin):
	default:
		return nil, domain.ErrForbidden
	}
	return toDetail(app), nil
}

// UpdateStatus moves the application along the state machine. Only
// recruiters and admins may transition; the target must be inside the
// closed enumeration and reachable from the current status. A rejected
// update leaves the stored status untouched.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status string, actor ports.Actor) (*ports.ApplicationDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	next := domain.ApplicationStatus(status)
	if !next.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if !app.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("update status: %w (from %s to %s)", domain.ErrInvalidTransition, app.Status, next)
	}

	updated, err := s.apps.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	metrics.StatusTransitionsTotal.WithLabelValues(string(app.Status), string(next)).Inc()
	s.recorder.Record(domain.ActivityEvent{
		ApplicationID: id,
		Kind:          domain.EventStatusChanged,
		ActorID:       actor.UserID,
		ActorRole:     actor.Role,
		Detail:        string(app.Status) + " to " + string(next),
		Timestamp:     time.Now().UTC(),
	})

	s.logger.Info().
		Str("application_id", id).
		Str("from", string(app.Status)).
		Str("to", string(next)).
		Str("actor_id", actor.UserID).
		Msg("application status updated")

	return toDetail(updated), nil
}

// ScheduleInterview attaches the interview sub-record. Scheduling is
// independent of the status machine: it does not move the application to
// StatusInterview. A second schedule call is a conflict; use update.
func (s *ApplicationService) ScheduleInterview(ctx context.Context, id string, in ports.InterviewInput, actor ports.Actor) (*ports.ApplicationDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if err := validateInterview(in); err != nil {
		return nil, err
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("schedule interview: %w", err)
	}
	if app.Interview != nil {
		return nil, domain.ErrInterviewExists
	}

	updated, err := s.apps.SetInterview(ctx, id, &domain.Interview{
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Interviewer: in.Interviewer,
		ScheduledAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("schedule interview: %w", err)
	}

	metrics.InterviewActionsTotal.WithLabelValues("schedule").Inc()
	s.recorder.Record(domain.ActivityEvent{
		ApplicationID: id,
		Kind:          domain.EventInterviewScheduled,
		ActorID:       actor.UserID,
		ActorRole:     actor.Role,
		Detail:        in.Date + " " + in.Time + " at " + in.Location,
		Timestamp:     time.Now().UTC(),
	})

	return toDetail(updated), nil
}

// UpdateInterview replaces an existing interview record; it fails when
// none has been scheduled. The original ScheduledAt is preserved.
func (s *ApplicationService) UpdateInterview(ctx context.Context, id string, in ports.InterviewInput, actor ports.Actor) (*ports.ApplicationDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if err := validateInterview(in); err != nil {
		return nil, err
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update interview: %w", err)
	}
	if app.Interview == nil {
		return nil, domain.ErrNoInterview
	}

	updated, err := s.apps.SetInterview(ctx, id, &domain.Interview{
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Interviewer: in.Interviewer,
		ScheduledAt: app.Interview.ScheduledAt,
	})
	if err != nil {
		return nil, fmt.Errorf("update interview: %w", err)
	}

	metrics.InterviewActionsTotal.WithLabelValues("update").Inc()
	s.recorder.Record(domain.ActivityEvent{
		ApplicationID: id,
		Kind:          domain.EventInterviewUpdated,
		ActorID:       actor.UserID,
		ActorRole:     actor.Role,
		Detail:        in.Date + " " + in.Time + " at " + in.Location,
		Timestamp:     time.Now().UTC(),
	})

	return toDetail(updated), nil
}

// CancelInterview removes the interview record. Cancelling when none
// exists succeeds, so retries are harmless. The status is left alone.
func (s *ApplicationService) CancelInterview(ctx context.Context, id string, actor ports.Actor) (*ports.ApplicationDetail, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}

	app, err := s.apps.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel interview: %w", err)
	}
	if app.Interview == nil {
		return toDetail(app), nil
	}

	updated, err := s.apps.SetInterview(ctx, id, nil)
	if err != nil {
		return nil, fmt.Errorf("cancel interview: %w", err)
	}

	metrics.InterviewActionsTotal.WithLabelValues("cancel").Inc()
	s.recorder.Record(domain.ActivityEvent{
		ApplicationID: id,
		Kind:          domain.EventInterviewCancelled,
		ActorID:       actor.UserID,
		ActorRole:     actor.Role,
		Timestamp:     time.Now().UTC(),
	})

	return toDetail(updated), nil
}

// History returns the activity trail. Recruiter/admin only.
func (s *ApplicationService) History(ctx context.Context, id string, actor ports.Actor) ([]domain.ActivityEvent, error) {
	if !domain.Admit(actor.Role, domain.RoleRecruiter, domain.RoleAdmin) {
		return nil, domain.ErrForbidden
	}
	if _, err := s.apps.FindByID(ctx, id); err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return s.history.ListByApplication(ctx, id)
}

func validateInterview(in ports.InterviewInput) error {
	if _, err := time.Parse("2006-01-02", in.Date); err != nil {
		return fmt.Errorf("%w: date must be yyyy-mm-dd", domain.ErrInvalidInterview)
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return fmt.Errorf("%w: time must be hh:mm", domain.ErrInvalidInterview)
	}
	if in.Location == "" {
		return fmt.Errorf("%w: location is required", domain.ErrInvalidInterview)
	}
	return nil
}

func toDetail(app *domain.Application) *ports.ApplicationDetail {
	return &ports.ApplicationDetail{
		ID:             app.ID,
		JobID:          app.JobID,
		JobTitle:       app.JobTitle,
		CandidateID:    app.CandidateID,
		CandidateName:  app.CandidateName,
		CandidateEmail: app.CandidateEmail,
		ResumeFileID:   app.ResumeFileID,
		ResumeFileName: app.ResumeFileName,
		Notes:          app.Notes,
		AIScore:        app.AIScore,
		AIKeywords:     app.AIKeywords,
		Status:         string(app.Status),
		AppliedAt:      app.AppliedAt,
		Interview:      app.Interview,
	}
}
