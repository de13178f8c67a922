package domain

import (
	"errors"
	"time"
)

var ErrJobNotFound = errors.New("job not found")
var ErrJobInactive = errors.New("job is not accepting applications")

// JobPosting is a position candidates apply to. Postings are never deleted,
// only deactivated; inactive postings stay visible to recruiters and admins.
type JobPosting struct {
	ID             string     `json:"id" bson:"_id,omitempty"`
	Title          string     `json:"title" bson:"title"`
	Description    string     `json:"description" bson:"description"`
	RequiredSkills []string   `json:"required_skills" bson:"required_skills"`
	Experience     string     `json:"experience,omitempty" bson:"experience,omitempty"`
	Location       string     `json:"location" bson:"location"`
	JobType        string     `json:"job_type" bson:"job_type"`
	PostedAt       time.Time  `json:"posted_at" bson:"posted_at"`
	Deadline       *time.Time `json:"deadline,omitempty" bson:"deadline,omitempty"`
	Active         bool       `json:"active" bson:"active"`
	PostedByID     string     `json:"posted_by_id" bson:"posted_by_id"`
	PostedByName   string     `json:"posted_by_name" bson:"posted_by_name"`
	PostedByEmail  string     `json:"posted_by_email" bson:"posted_by_email"`
}
