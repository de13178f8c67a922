package domain

import (
	"errors"
	"strings"
	"time"
)

// ApplicationStatus is the lifecycle state of an application.
type ApplicationStatus string

const (
	StatusSubmitted ApplicationStatus = "Submitted"
	StatusInterview ApplicationStatus = "Interview"
	StatusHired     ApplicationStatus = "Hired"
	StatusRejected  ApplicationStatus = "Rejected"
)

// validTransitions defines the allowed state machine transitions.
// Hired and Rejected are terminal.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusSubmitted: {StatusInterview, StatusRejected},
	StatusInterview: {StatusHired, StatusRejected},
}

var ErrApplicationNotFound = errors.New("application not found")
var ErrDuplicateApplication = errors.New("application already submitted for this job")
var ErrInvalidStatus = errors.New("unknown application status")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrInterviewExists = errors.New("interview already scheduled")
var ErrNoInterview = errors.New("no interview scheduled")
var ErrForbidden = errors.New("access forbidden")
var ErrResumeRequired = errors.New("resume file is required")
var ErrResumeFormat = errors.New("unsupported resume format")
var ErrResumeTooLarge = errors.New("resume exceeds the maximum size")
var ErrInvalidInterview = errors.New("invalid interview data")

// Valid reports whether s is inside the closed status enumeration.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusSubmitted, StatusInterview, StatusHired, StatusRejected:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// MaxResumeSize is the largest accepted resume upload, in bytes.
const MaxResumeSize = 3 << 20

// allowedResumeExts are the accepted resume file extensions, lowercase with dot.
var allowedResumeExts = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
	".txt":  {},
}

// AllowedResumeExt reports whether the filename carries an accepted resume extension.
func AllowedResumeExt(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	_, ok := allowedResumeExts[strings.ToLower(filename[idx:])]
	return ok
}

// Interview is the optional sub-record embedded in an application. Its
// existence is independent of the application status: scheduling never
// implies a transition to StatusInterview.
type Interview struct {
	Date        string    `json:"date" bson:"date"`
	Time        string    `json:"time" bson:"time"`
	Location    string    `json:"location" bson:"location"`
	Interviewer string    `json:"interviewer" bson:"interviewer"`
	ScheduledAt time.Time `json:"scheduled_at" bson:"scheduled_at"`
}

// Application is the core aggregate: one candidate's submission to one job.
// AIScore is set at most once, at submission time, and never overwritten;
// nil means the scoring collaborator was unavailable.
type Application struct {
	ID            string            `json:"id" bson:"_id,omitempty"`
	JobID         string            `json:"job_id" bson:"job_id"`
	CandidateID   string            `json:"candidate_id" bson:"candidate_id"`
	ResumeFileID  string            `json:"resume_file_id" bson:"resume_file_id"`
	Notes         string            `json:"notes,omitempty" bson:"notes,omitempty"`
	AIScore       *float64          `json:"ai_score" bson:"ai_score"`
	AIKeywords    []string          `json:"ai_keywords,omitempty" bson:"ai_keywords,omitempty"`
	Status        ApplicationStatus `json:"status" bson:"status"`
	AppliedAt     time.Time         `json:"applied_at" bson:"applied_at"`
	Interview     *Interview        `json:"interview,omitempty" bson:"interview,omitempty"`

	// Denormalized display fields, fixed at submission time.
	JobTitle       string `json:"job_title" bson:"job_title"`
	CandidateName  string `json:"candidate_name" bson:"candidate_name"`
	CandidateEmail string `json:"candidate_email" bson:"candidate_email"`
	ResumeFileName string `json:"resume_file_name" bson:"resume_file_name"`
}
