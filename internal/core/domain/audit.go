package domain

import "time"

// Activity event kinds recorded on the application trail.
const (
	EventSubmitted          = "submitted"
	EventStatusChanged      = "status_changed"
	EventInterviewScheduled = "interview_scheduled"
	EventInterviewUpdated   = "interview_updated"
	EventInterviewCancelled = "interview_cancelled"
)

// ActivityEvent is one entry in an application's activity trail.
type ActivityEvent struct {
	ApplicationID string    `json:"application_id"`
	Kind          string    `json:"kind"`
	ActorID       string    `json:"actor_id"`
	ActorRole     string    `json:"actor_role"`
	Detail        string    `json:"detail,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
