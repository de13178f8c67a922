package handler

import (
	"time"

	"github.com/getready/ats-system/internal/core/domain"
)

// --- Request / Response types ---

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Submitted Interview Hired Rejected"`
}

type interviewRequest struct {
	Date        string `json:"date"        validate:"required,datetime=2006-01-02"`
	Time        string `json:"time"        validate:"required"`
	Location    string `json:"location"    validate:"required"`
	Interviewer string `json:"interviewer"`
}

type interviewResponse struct {
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Interviewer string    `json:"interviewer,omitempty"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// applicationResponse is the full application view. AIScore is null when
// the submission was stored unscored.
type applicationResponse struct {
	ID             string             `json:"id"`
	JobID          string             `json:"job_id"`
	JobTitle       string             `json:"job_title"`
	CandidateID    string             `json:"candidate_id"`
	CandidateName  string             `json:"candidate_name"`
	CandidateEmail string             `json:"candidate_email"`
	ResumeFileID   string             `json:"resume_file_id"`
	ResumeFileName string             `json:"resume_file_name"`
	Notes          string             `json:"notes,omitempty"`
	AIScore        *float64           `json:"ai_score"`
	AIKeywords     []string           `json:"ai_keywords,omitempty"`
	Status         string             `json:"status"`
	AppliedAt      time.Time          `json:"applied_at"`
	Interview      *interviewResponse `json:"interview,omitempty"`
}

type activityEventResponse struct {
	Kind      string    `json:"kind"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func toActivityEventResponses(events []domain.ActivityEvent) []activityEventResponse {
	out := make([]activityEventResponse, len(events))
	for i, e := range events {
		out[i] = activityEventResponse{
			Kind:      e.Kind,
			ActorID:   e.ActorID,
			ActorRole: e.ActorRole,
			Detail:    e.Detail,
			Timestamp: e.Timestamp,
		}
	}
	return out
}
