package ports

import (
	"context"
	"io"
	"time"

	"github.com/getready/ats-system/internal/core/domain"
)

// ResumeUpload is the uploaded resume file as received by the transport layer.
type ResumeUpload struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// SubmitApplicationInput carries everything needed to submit an application.
type SubmitApplicationInput struct {
	JobID  string
	Actor  Actor
	Resume ResumeUpload
	Notes  string
}

// ListApplicationsInput carries the optional filters for the list endpoint.
// Candidate actors are always scoped to their own applications.
type ListApplicationsInput struct {
	Actor  Actor
	JobID  string
	Status string
}

// InterviewInput carries the interview scheduling fields.
type InterviewInput struct {
	Date        string
	Time        string
	Location    string
	Interviewer string
}

// ApplicationDetail is the application view returned by the service.
// AIScore is nil when the scoring collaborator was unavailable at
// submission time; that is the only unscored case.
type ApplicationDetail struct {
	ID             string
	JobID          string
	JobTitle       string
	CandidateID    string
	CandidateName  string
	CandidateEmail string
	ResumeFileID   string
	ResumeFileName string
	Notes          string
	AIScore        *float64
	AIKeywords     []string
	Status         string
	AppliedAt      time.Time
	Interview      *domain.Interview
}

// ApplicationService defines the lifecycle operations for applications.
type ApplicationService interface {
	Submit(ctx context.Context, in SubmitApplicationInput) (*ApplicationDetail, error)
	List(ctx context.Context, in ListApplicationsInput) ([]ApplicationDetail, error)
	Get(ctx context.Context, id string, actor Actor) (*ApplicationDetail, error)
	UpdateStatus(ctx context.Context, id string, status string, actor Actor) (*ApplicationDetail, error)
	ScheduleInterview(ctx context.Context, id string, in InterviewInput, actor Actor) (*ApplicationDetail, error)
	UpdateInterview(ctx context.Context, id string, in InterviewInput, actor Actor) (*ApplicationDetail, error)
	// CancelInterview removes the interview record; succeeds when none exists.
	CancelInterview(ctx context.Context, id string, actor Actor) (*ApplicationDetail, error)
	History(ctx context.Context, id string, actor Actor) ([]domain.ActivityEvent, error)
}

// ApplicationFilter carries repository-level list filters. CandidateID is
// set by the service when the caller is a candidate.
type ApplicationFilter struct {
	CandidateID string
	JobID       string
	Status      string
}

// ApplicationRepository defines persistence operations for applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id string) (*domain.Application, error)
	FindByCandidateAndJob(ctx context.Context, candidateID, jobID string) (*domain.Application, error)
	List(ctx context.Context, filter ApplicationFilter) ([]*domain.Application, error)
	// UpdateStatus persists a status change only; it never touches the
	// score or the interview record.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	// SetInterview writes (or clears, with nil) the interview sub-record.
	SetInterview(ctx context.Context, id string, interview *domain.Interview) (*domain.Application, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}
