package ports

import (
	"context"
	"time"

	"github.com/getready/ats-system/internal/core/domain"
)

// Actor identifies the authenticated caller of a service operation.
// Services re-validate role guards here; transport-level checks are
// advisory only.
type Actor struct {
	UserID   string
	Username string
	Email    string
	Role     string
}

// JobInput carries the fields a recruiter or admin sets on a posting.
type JobInput struct {
	Title          string
	Description    string
	RequiredSkills []string
	Experience     string
	Location       string
	JobType        string
	// Deadline is yyyy-mm-dd; unparseable values are ignored.
	Deadline string
}

// JobDetail is the job view returned by the service, including the number
// of applications received.
type JobDetail struct {
	ID               string
	Title            string
	Description      string
	RequiredSkills   []string
	Experience       string
	Location         string
	JobType          string
	PostedAt         time.Time
	Deadline         *time.Time
	Active           bool
	PostedByName     string
	PostedByEmail    string
	ApplicationCount int64
}

// JobService defines use-case operations for job postings.
type JobService interface {
	// ListActive returns only active postings (the candidate-facing list).
	ListActive(ctx context.Context) ([]JobDetail, error)
	// ListAll returns every posting, active or not. Recruiter/admin only.
	ListAll(ctx context.Context, actor Actor) ([]JobDetail, error)
	Get(ctx context.Context, id string) (*JobDetail, error)
	Create(ctx context.Context, in JobInput, actor Actor) (*JobDetail, error)
	Update(ctx context.Context, id string, in JobInput, actor Actor) (*JobDetail, error)
	// ToggleActive flips the active flag. Postings are never deleted.
	ToggleActive(ctx context.Context, id string, actor Actor) (*JobDetail, error)
}

// JobRepository defines persistence operations for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error)
	FindByID(ctx context.Context, id string) (*domain.JobPosting, error)
	// List returns postings; activeOnly restricts to postings accepting applications.
	List(ctx context.Context, activeOnly bool) ([]*domain.JobPosting, error)
	Update(ctx context.Context, job *domain.JobPosting) (*domain.JobPosting, error)
	Count(ctx context.Context) (int64, error)
}
